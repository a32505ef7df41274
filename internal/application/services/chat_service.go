package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/repositories"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/errors"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/language"
)

const defaultHistoryFetch = 50

// ChatService runs the full message pipeline: detect the language, translate
// to English for understanding, classify intent and extract entities, produce
// a reply, localize it, and append both turns to the transcript.
type ChatService struct {
	languageService   *LanguageService
	intentService     *IntentService
	responseService   *ResponseService
	generationService *GenerationService
	chatRepo          repositories.ChatMessageRepository
	historyLimit      int
	metrics           *observability.Metrics
}

// NewChatService creates a new chat service.
func NewChatService(
	languageService *LanguageService,
	intentService *IntentService,
	responseService *ResponseService,
	generationService *GenerationService,
	chatRepo repositories.ChatMessageRepository,
	historyLimit int,
	metrics *observability.Metrics,
) *ChatService {
	if historyLimit <= 0 {
		historyLimit = maxHistoryTurns
	}
	return &ChatService{
		languageService:   languageService,
		intentService:     intentService,
		responseService:   responseService,
		generationService: generationService,
		chatRepo:          chatRepo,
		historyLimit:      historyLimit,
		metrics:           metrics,
	}
}

// ProcessMessage handles one user message end to end and returns the payload
// for the HTTP layer. Replies are produced in the user's preferred language
// when one is set, otherwise in the detected language of the message.
func (s *ChatService) ProcessMessage(ctx context.Context, user *entities.User, message string) (*entities.ChatResult, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return nil, errors.NewValidationError("message is required")
	}

	start := time.Now()
	detected := s.languageService.DetectLanguage(trimmed)
	observability.RecordStageMetric(ctx, s.metrics, "detect_language", time.Since(start))

	replyLang := detected
	if user.PreferredLanguage != "" {
		replyLang = language.Normalize(user.PreferredLanguage)
	}

	// Understanding always runs on English text.
	working := trimmed
	if detected != language.Default {
		start = time.Now()
		working = s.languageService.Translate(ctx, trimmed, detected, language.Default)
		observability.RecordStageMetric(ctx, s.metrics, "translate_input", time.Since(start))
	}

	start = time.Now()
	intentResult := s.intentService.DetectIntent(working)
	observability.RecordStageMetric(ctx, s.metrics, "detect_intent", time.Since(start))

	start = time.Now()
	generated := s.produceResponse(ctx, user, working, intentResult, replyLang)
	observability.RecordStageMetric(ctx, s.metrics, "generate_response", time.Since(start))

	result := &entities.ChatResult{
		Response:         generated.Response,
		Suggestions:      generated.Suggestions,
		Emergency:        generated.Emergency,
		FollowUp:         generated.FollowUp,
		Intent:           intentResult.Intent,
		Confidence:       intentResult.Confidence,
		Entities:         intentResult.Entities,
		DetectedLanguage: detected,
	}

	start = time.Now()
	s.persistTurns(ctx, user, trimmed, detected, replyLang, result)
	observability.RecordStageMetric(ctx, s.metrics, "persist", time.Since(start))

	observability.LoggerFromContext(ctx).Info().
		Str("user_id", user.ID).
		Str("intent", string(result.Intent)).
		Str("detected_language", detected).
		Str("reply_language", replyLang).
		Bool("emergency", result.Emergency).
		Msg("Chat message processed")

	return result, nil
}

// produceResponse picks the generative path when a backend is configured and
// the canned knowledge-base path otherwise. Generative replies are requested
// directly in the reply language; canned replies are translated onward when
// the templates cannot produce it natively.
func (s *ChatService) produceResponse(ctx context.Context, user *entities.User, working string, intentResult *entities.IntentResult, replyLang string) *entities.GeneratedResponse {
	if s.generationService.Enabled() {
		return s.generationService.GenerateResponse(
			ctx, working, intentResult.Intent, intentResult.Entities,
			user.Conditions, replyLang, s.loadHistory(ctx, user.ID),
		)
	}

	generated := s.responseService.GetMedicalResponse(intentResult.Intent, intentResult.Entities, user.Conditions, replyLang)
	if from := TemplateLanguage(replyLang); from != replyLang {
		start := time.Now()
		generated = s.localizeResponse(ctx, generated, from, replyLang)
		observability.RecordStageMetric(ctx, s.metrics, "translate_response", time.Since(start))
	}
	return generated
}

// localizeResponse translates every textual field of a canned reply. The
// suggestions are independent, so they are translated concurrently with
// order preserved.
func (s *ChatService) localizeResponse(ctx context.Context, generated *entities.GeneratedResponse, from, to string) *entities.GeneratedResponse {
	out := &entities.GeneratedResponse{
		Response:   s.languageService.Translate(ctx, generated.Response, from, to),
		Emergency:  generated.Emergency,
		Confidence: generated.Confidence,
	}
	if generated.FollowUp != "" {
		out.FollowUp = s.languageService.Translate(ctx, generated.FollowUp, from, to)
	}

	out.Suggestions = make([]string, len(generated.Suggestions))
	var wg sync.WaitGroup
	for i, suggestion := range generated.Suggestions {
		wg.Add(1)
		go func(i int, suggestion string) {
			defer wg.Done()
			out.Suggestions[i] = s.languageService.Translate(ctx, suggestion, from, to)
		}(i, suggestion)
	}
	wg.Wait()

	return out
}

func (s *ChatService) loadHistory(ctx context.Context, userID string) []entities.ChatTurn {
	messages, err := s.chatRepo.ListByUser(ctx, userID, s.historyLimit)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Failed to load chat history for context")
		return nil
	}

	turns := make([]entities.ChatTurn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, entities.ChatTurn{Role: m.Role, Content: m.Content})
	}
	return turns
}

// persistTurns appends the user and assistant turns. Persistence failure
// after a successful pipeline run is logged, not surfaced: the user already
// has their answer.
func (s *ChatService) persistTurns(ctx context.Context, user *entities.User, message, detected, replyLang string, result *entities.ChatResult) {
	logger := observability.LoggerFromContext(ctx)
	now := time.Now().UTC()

	userTurn := &entities.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Role:      entities.ChatRoleUser,
		Content:   message,
		Language:  detected,
		Intent:    string(result.Intent),
		CreatedAt: now,
	}
	if err := s.chatRepo.Create(ctx, userTurn); err != nil {
		logger.Warn().Err(err).Str("user_id", user.ID).Msg("Failed to persist user turn")
	}

	// The assistant turn sorts strictly after the user turn it answers.
	assistantTurn := &entities.ChatMessage{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Role:      entities.ChatRoleAssistant,
		Content:   result.Response,
		Language:  replyLang,
		CreatedAt: now.Add(time.Millisecond),
	}
	if err := s.chatRepo.Create(ctx, assistantTurn); err != nil {
		logger.Warn().Err(err).Str("user_id", user.ID).Msg("Failed to persist assistant turn")
	}
}

// GetHistory returns the most recent transcript entries in chronological order.
func (s *ChatService) GetHistory(ctx context.Context, userID string, limit int) ([]*entities.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultHistoryFetch
	}
	return s.chatRepo.ListByUser(ctx, userID, limit)
}

// ClearHistory removes the user's entire transcript.
func (s *ChatService) ClearHistory(ctx context.Context, userID string) error {
	return s.chatRepo.DeleteByUser(ctx, userID)
}
