package providers

import (
	"context"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// GenerativeProvider defines the interface for generative-language backends.
// Implementations are transport only: they send the prompts and prior turns
// and return the backend's raw text reply. Prompt assembly, reply parsing
// and fallback policy belong to the caller.
type GenerativeProvider interface {
	// Name identifies the backend in logs and metrics
	Name() string

	// Chat sends a system prompt, a user prompt and bounded prior history,
	// returning the raw text of the model's reply
	Chat(ctx context.Context, systemPrompt, userPrompt string, history []entities.ChatTurn) (string, error)
}
