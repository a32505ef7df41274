package translation

import (
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/config"
)

// NewTranslationProvider creates a translation provider from configuration.
// When caching is available, the provider is wrapped with a cache-aside layer.
func NewTranslationProvider(cfg config.TranslationConfig, cache providers.CacheProvider, metrics *observability.Metrics) providers.TranslationProvider {
	var provider providers.TranslationProvider

	switch cfg.Provider {
	case "google":
		if cfg.APIKey == "" {
			// No real provider configured; use mock provider for dev.
			observability.GetLogger().Warn().Msg("TRANSLATION_API_KEY not set, using mock translation provider")
			provider = NewMockTranslationProvider()
		} else {
			provider = NewGoogleTranslationProvider(cfg.APIKey, cfg.BaseURL)
		}
	default:
		provider = NewMockTranslationProvider()
	}

	if cache != nil {
		provider = NewCachedTranslationProvider(provider, cache, metrics)
	}

	return provider
}
