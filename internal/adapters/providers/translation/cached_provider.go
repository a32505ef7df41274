package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
)

// Translations are immutable for a given input, so the TTL is generous.
const translationCacheTTL = 86400

// CachedTranslationProvider wraps a TranslationProvider with a cache-aside
// layer. Cache failures are ignored so the underlying provider still serves
// the request.
type CachedTranslationProvider struct {
	provider providers.TranslationProvider
	cache    providers.CacheProvider
	metrics  *observability.Metrics
}

// NewCachedTranslationProvider creates a caching wrapper around a translation provider.
func NewCachedTranslationProvider(provider providers.TranslationProvider, cache providers.CacheProvider, metrics *observability.Metrics) providers.TranslationProvider {
	return &CachedTranslationProvider{
		provider: provider,
		cache:    cache,
		metrics:  metrics,
	}
}

// Translate returns a cached translation when available and delegates to the
// wrapped provider on a miss.
func (c *CachedTranslationProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	key := translationCacheKey(text, source, target)

	if cached, err := c.cache.Get(ctx, key); err == nil && len(cached) > 0 {
		observability.RecordCacheHit(ctx, c.metrics, "translation")
		return string(cached), nil
	}
	observability.RecordCacheMiss(ctx, c.metrics, "translation")

	translated, err := c.provider.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	go func() {
		c.cache.Set(context.Background(), key, []byte(translated), translationCacheTTL)
	}()

	return translated, nil
}

func translationCacheKey(text, source, target string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("translation:%s:%s:%s", source, target, hex.EncodeToString(sum[:]))
}
