package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/language"
)

const (
	defaultGenerativeTimeout = 20 * time.Second

	// maxHistoryTurns bounds the conversational context forwarded to the backend.
	maxHistoryTurns = 6
)

// llmReply mirrors the JSON contract the backend is instructed to return.
// Confidence is a pointer so an absent key can get its own default.
type llmReply struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
	Emergency   bool     `json:"emergency"`
	FollowUp    string   `json:"followUp"`
	Confidence  *float64 `json:"confidence"`
}

// GenerationService produces replies through a generative backend. Failures
// never escape this service: a provider error, a timeout, or an empty reply
// all degrade to the localized fallback payload.
type GenerationService struct {
	provider providers.GenerativeProvider
	timeout  time.Duration
	metrics  *observability.Metrics
}

// NewGenerationService creates a new generation service. A nil provider is
// valid and marks the service as disabled.
func NewGenerationService(provider providers.GenerativeProvider, timeoutSeconds int, metrics *observability.Metrics) *GenerationService {
	timeout := defaultGenerativeTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return &GenerationService{
		provider: provider,
		timeout:  timeout,
		metrics:  metrics,
	}
}

// Enabled reports whether a generative backend is configured.
func (s *GenerationService) Enabled() bool {
	return s != nil && s.provider != nil
}

// GenerateResponse asks the backend for a reply in the requested language and
// enforces the structured response contract on whatever comes back.
func (s *GenerationService) GenerateResponse(ctx context.Context, message string, intent entities.Intent, entityList, userConditions []string, lang string, history []entities.ChatTurn) *entities.GeneratedResponse {
	lang = language.Normalize(lang)
	if !s.Enabled() {
		return s.FallbackResponse(lang)
	}

	systemPrompt := buildSystemPrompt(userConditions, lang)
	userPrompt := buildUserPrompt(message, intent, entityList)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.provider.Chat(ctx, systemPrompt, userPrompt, boundHistory(history))
	observability.RecordProviderMetric(ctx, s.metrics, "generative", s.provider.Name(), err, time.Since(start))
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("provider", s.provider.Name()).
			Msg("Generative backend failed, using fallback response")
		return s.FallbackResponse(lang)
	}
	if strings.TrimSpace(raw) == "" {
		return s.FallbackResponse(lang)
	}

	return parseReply(raw)
}

// FallbackResponse returns the fixed localized apology payload. Unrecognized
// language codes resolve to English.
func (s *GenerationService) FallbackResponse(lang string) *entities.GeneratedResponse {
	tpl, ok := fallbackTemplates[lang]
	if !ok {
		tpl = fallbackTemplates[language.Default]
	}
	return &entities.GeneratedResponse{
		Response:    tpl.Response,
		Suggestions: append([]string{}, tpl.Suggestions...),
		Emergency:   false,
		Confidence:  0.1,
	}
}

func boundHistory(history []entities.ChatTurn) []entities.ChatTurn {
	if len(history) <= maxHistoryTurns {
		return history
	}
	return history[len(history)-maxHistoryTurns:]
}

// parseReply enforces the response contract permissively. A parseable JSON
// object gets per-field defaults; anything else becomes the response text at
// reduced confidence. Malformed backend output is down-weighted, never dropped.
func parseReply(raw string) *entities.GeneratedResponse {
	text := stripCodeFences(raw)

	if span, ok := extractJSONObject(text); ok {
		var reply llmReply
		if err := json.Unmarshal([]byte(span), &reply); err == nil {
			response := strings.TrimSpace(reply.Response)
			if response == "" {
				response = text
			}
			suggestions := reply.Suggestions
			if suggestions == nil {
				suggestions = []string{}
			}
			confidence := 0.8
			if reply.Confidence != nil {
				confidence = clamp01(*reply.Confidence)
			}
			return &entities.GeneratedResponse{
				Response:    response,
				Suggestions: suggestions,
				Emergency:   reply.Emergency,
				FollowUp:    strings.TrimSpace(reply.FollowUp),
				Confidence:  confidence,
			}
		}
	}

	return &entities.GeneratedResponse{
		Response:    text,
		Suggestions: []string{},
		Emergency:   false,
		Confidence:  0.7,
	}
}

// stripCodeFences unwraps a reply the backend wrapped in a Markdown code
// fence despite instructions.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	// Drop a language tag such as the json in ```json
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		first := strings.TrimSpace(trimmed[:idx])
		if first != "" && !strings.ContainsAny(first, "{}") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}

// extractJSONObject returns the span from the first '{' to the last '}'.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
