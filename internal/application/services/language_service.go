package services

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/language"
)

// scriptRanges maps Unicode script blocks to language codes. Detection tests
// the ranges in this order; mixed-script text resolves to the first range
// that matches.
var scriptRanges = []struct {
	table *unicode.RangeTable
	code  string
}{
	{unicode.Devanagari, "hi"},
	{unicode.Tamil, "ta"},
	{unicode.Telugu, "te"},
	{unicode.Kannada, "kn"},
	{unicode.Malayalam, "ml"},
}

// LanguageService detects the language of free text and translates between
// the supported languages through a pluggable provider.
type LanguageService struct {
	translator providers.TranslationProvider
	metrics    *observability.Metrics
}

// NewLanguageService creates a new language service.
func NewLanguageService(translator providers.TranslationProvider, metrics *observability.Metrics) *LanguageService {
	return &LanguageService{
		translator: translator,
		metrics:    metrics,
	}
}

// DetectLanguage classifies text by Unicode script membership. Latin and any
// unrecognized script fall through to the default language.
func (s *LanguageService) DetectLanguage(text string) string {
	for _, script := range scriptRanges {
		for _, r := range text {
			if unicode.Is(script.table, r) {
				return script.code
			}
		}
	}
	return language.Default
}

// Translate converts text between languages. It never fails: identical
// source and target, blank text, a missing provider, or a provider error all
// return the original text unchanged. Callers must not assume translation
// succeeded.
func (s *LanguageService) Translate(ctx context.Context, text, source, target string) string {
	if strings.TrimSpace(text) == "" || source == target {
		return text
	}
	if s.translator == nil {
		return text
	}

	start := time.Now()
	translated, err := s.translator.Translate(ctx, text, source, target)
	observability.RecordProviderMetric(ctx, s.metrics, "translation", "translate", err, time.Since(start))
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("source", source).
			Str("target", target).
			Msg("Translation failed, returning original text")
		return text
	}

	return translated
}
