package generative

import (
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/clients/gemini"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/config"
)

// NewGenerativeProvider creates a generative provider from configuration.
// Returns nil when no provider is configured, in which case callers fall back
// to templated responses.
func NewGenerativeProvider(cfg *config.Config) providers.GenerativeProvider {
	logger := observability.GetLogger()

	switch cfg.Generative.Provider {
	case "":
		return nil
	case "gemini":
		client, err := gemini.NewClient(&cfg.Gemini)
		if err != nil {
			logger.Warn().Err(err).Msg("Gemini not configured, using mock generative provider")
			return NewMockGenerativeProvider()
		}
		return client
	case "openai":
		provider, err := NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		if err != nil {
			logger.Warn().Err(err).Msg("OpenAI not configured, using mock generative provider")
			return NewMockGenerativeProvider()
		}
		return provider
	case "mock":
		return NewMockGenerativeProvider()
	default:
		logger.Warn().Str("provider", cfg.Generative.Provider).Msg("Unknown generative provider, using mock")
		return NewMockGenerativeProvider()
	}
}
