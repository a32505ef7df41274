package translation

import (
	"context"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
)

// MockTranslationProvider is a pass-through provider for development and
// testing. It returns the input text unchanged, which keeps the pipeline
// functional in a single language when no real provider is configured.
type MockTranslationProvider struct{}

// NewMockTranslationProvider creates a new mock translation provider.
func NewMockTranslationProvider() providers.TranslationProvider {
	return &MockTranslationProvider{}
}

// Translate returns the text unchanged.
func (m *MockTranslationProvider) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}
