package repositories

import (
	"context"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// ChatMessageRepository defines the interface for transcript persistence.
// The transcript is append-only; messages are never edited.
type ChatMessageRepository interface {
	// Create appends a message to the user's transcript
	Create(ctx context.Context, message *entities.ChatMessage) error

	// ListByUser returns the most recent limit messages in chronological order
	ListByUser(ctx context.Context, userID string, limit int) ([]*entities.ChatMessage, error)

	// DeleteByUser removes the user's entire transcript
	DeleteByUser(ctx context.Context, userID string) error
}
