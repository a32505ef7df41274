package generative

import (
	"context"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
)

// mockReply is a well-formed assistant reply so development runs exercise the
// same parsing path as a real provider.
const mockReply = `{
  "response": "Rest, stay hydrated, and monitor your symptoms. If they persist for more than a few days or get worse, please consult a doctor.",
  "suggestions": ["Drink plenty of fluids", "Get adequate rest", "Consult a doctor if symptoms persist"],
  "emergency": false,
  "followUp": "How long have you been feeling this way?",
  "confidence": 0.8
}`

// MockGenerativeProvider returns a fixed reply for development and testing.
type MockGenerativeProvider struct{}

// NewMockGenerativeProvider creates a new mock generative provider.
func NewMockGenerativeProvider() providers.GenerativeProvider {
	return &MockGenerativeProvider{}
}

// Name identifies the provider in logs and metrics.
func (m *MockGenerativeProvider) Name() string {
	return "mock"
}

// Chat returns the canned reply regardless of input.
func (m *MockGenerativeProvider) Chat(_ context.Context, _, _ string, _ []entities.ChatTurn) (string, error) {
	return mockReply, nil
}
