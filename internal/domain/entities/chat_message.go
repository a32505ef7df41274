package entities

import (
	"time"
)

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage represents one persisted turn of a conversation. The
// transcript is append-only and ordered by CreatedAt.
type ChatMessage struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Role      ChatRole  `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	Language  string    `json:"language" db:"language"`
	Intent    string    `json:"intent,omitempty" db:"intent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChatTurn is the reduced view of a message forwarded to the generative
// backend as conversational context.
type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
