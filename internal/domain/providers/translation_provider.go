package providers

import (
	"context"
)

// TranslationProvider defines the interface for text translation services.
// Implementations translate a single string between two language codes;
// callers own the fallback policy when a provider fails.
type TranslationProvider interface {
	// Translate converts text from the source language to the target language
	Translate(ctx context.Context, text, source, target string) (string, error)
}
