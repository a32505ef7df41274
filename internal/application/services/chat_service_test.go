package services

import (
	"context"
	stderrors "errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/providers"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/repositories"
	apperrors "github.com/GowthamPulluri/Healthcare-chatbot/pkg/errors"
)

// fakeChatRepo is an in-memory transcript store.
type fakeChatRepo struct {
	mu        sync.Mutex
	messages  []*entities.ChatMessage
	createErr error
	listErr   error
}

func (f *fakeChatRepo) Create(_ context.Context, message *entities.ChatMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeChatRepo) ListByUser(_ context.Context, userID string, limit int) ([]*entities.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var forUser []*entities.ChatMessage
	for _, m := range f.messages {
		if m.UserID == userID {
			forUser = append(forUser, m)
		}
	}
	if len(forUser) > limit {
		forUser = forUser[len(forUser)-limit:]
	}
	return forUser, nil
}

func (f *fakeChatRepo) DeleteByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*entities.ChatMessage
	for _, m := range f.messages {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	f.messages = kept
	return nil
}

func (f *fakeChatRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func newTestChatService(t *testing.T, translator providers.TranslationProvider, gen providers.GenerativeProvider, repo repositories.ChatMessageRepository) *ChatService {
	t.Helper()
	return NewChatService(
		NewLanguageService(translator, nil),
		newTestIntentService(t),
		NewResponseService(newTestKnowledgeBase(t)),
		NewGenerationService(gen, 0, nil),
		repo,
		6,
		nil,
	)
}

func testUser(preferred string, conditions ...string) *entities.User {
	return &entities.User{
		ID:                "user-1",
		Name:              "Asha",
		PreferredLanguage: preferred,
		Conditions:        conditions,
	}
}

func TestProcessMessage_CannedPath(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := newTestChatService(t, &fakeTranslator{}, nil, repo)

	result, err := svc.ProcessMessage(context.Background(), testUser("en"), "I have a fever")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}

	if result.Intent != entities.IntentSymptomInquiry {
		t.Errorf("intent = %q, want symptom_inquiry", result.Intent)
	}
	if !strings.Contains(result.Response, "Fever") {
		t.Errorf("response = %q, want the knowledge base summary", result.Response)
	}
	if result.DetectedLanguage != "en" {
		t.Errorf("detectedLanguage = %q, want en", result.DetectedLanguage)
	}
	if !contains(result.Entities, "fever") {
		t.Errorf("entities = %v, want fever included", result.Entities)
	}
	if result.Suggestions == nil {
		t.Error("suggestions must never be nil")
	}

	if repo.count() != 2 {
		t.Fatalf("persisted %d messages, want 2", repo.count())
	}
	userTurn, assistantTurn := repo.messages[0], repo.messages[1]
	if userTurn.Role != entities.ChatRoleUser || assistantTurn.Role != entities.ChatRoleAssistant {
		t.Errorf("persisted roles = %q, %q", userTurn.Role, assistantTurn.Role)
	}
	if userTurn.Intent != string(entities.IntentSymptomInquiry) {
		t.Errorf("user turn intent = %q", userTurn.Intent)
	}
	if userTurn.Content != "I have a fever" {
		t.Errorf("user turn content = %q", userTurn.Content)
	}
	if assistantTurn.Content != result.Response {
		t.Error("assistant turn must store the final response")
	}
	if !assistantTurn.CreatedAt.After(userTurn.CreatedAt) {
		t.Error("assistant turn must sort after the user turn")
	}
}

func TestProcessMessage_EmptyMessage(t *testing.T) {
	svc := newTestChatService(t, &fakeTranslator{}, nil, &fakeChatRepo{})

	_, err := svc.ProcessMessage(context.Background(), testUser("en"), "   ")
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *apperrors.AppError
	if !stderrors.As(err, &appErr) || appErr.Type != apperrors.ErrorTypeValidation {
		t.Errorf("error = %v, want a validation AppError", err)
	}
}

func TestProcessMessage_HindiDetection(t *testing.T) {
	translator := &fakeTranslator{fn: func(text, source, target string) (string, error) {
		if source == "hi" && target == "en" {
			return "I have a fever", nil
		}
		return text, nil
	}}
	repo := &fakeChatRepo{}
	svc := newTestChatService(t, translator, nil, repo)

	result, err := svc.ProcessMessage(context.Background(), testUser(""), "मुझे बुखार है")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}

	if result.DetectedLanguage != "hi" {
		t.Errorf("detectedLanguage = %q, want hi", result.DetectedLanguage)
	}
	if result.Intent != entities.IntentSymptomInquiry {
		t.Errorf("intent = %q, want symptom_inquiry from the translated text", result.Intent)
	}
	// Hindi has native templates, so only the inbound translation runs.
	if translator.calls != 1 {
		t.Errorf("translator called %d times, want 1", translator.calls)
	}
	if !strings.Contains(result.Response, "Fever") {
		t.Errorf("response = %q, want the Hindi condition summary", result.Response)
	}
	if repo.messages[0].Language != "hi" {
		t.Errorf("user turn language = %q, want hi", repo.messages[0].Language)
	}
}

func TestProcessMessage_TranslatesCannedReplyForTamil(t *testing.T) {
	translator := &fakeTranslator{fn: func(text, source, target string) (string, error) {
		return target + "|" + text, nil
	}}
	svc := newTestChatService(t, translator, nil, &fakeChatRepo{})

	result, err := svc.ProcessMessage(context.Background(), testUser("ta"), "I have a fever")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}

	if !strings.HasPrefix(result.Response, "ta|") {
		t.Errorf("response = %q, want text translated to Tamil", result.Response)
	}
	if !strings.HasPrefix(result.FollowUp, "ta|") {
		t.Errorf("followUp = %q, want text translated to Tamil", result.FollowUp)
	}
	for i, suggestion := range result.Suggestions {
		if !strings.HasPrefix(suggestion, "ta|") {
			t.Errorf("suggestion[%d] = %q, want text translated to Tamil", i, suggestion)
		}
	}
	// Order preserved: the first suggestion is the first fever treatment.
	if result.Suggestions[0] != "ta|Rest and drink plenty of fluids" {
		t.Errorf("first suggestion = %q", result.Suggestions[0])
	}
}

func TestProcessMessage_PreferredLanguageOverridesDetected(t *testing.T) {
	translator := &fakeTranslator{fn: func(text, source, target string) (string, error) {
		if source == "hi" && target == "en" {
			return "I have a fever", nil
		}
		return text, nil
	}}
	svc := newTestChatService(t, translator, nil, &fakeChatRepo{})

	result, err := svc.ProcessMessage(context.Background(), testUser("en"), "मुझे बुखार है")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}

	if result.DetectedLanguage != "hi" {
		t.Errorf("detectedLanguage = %q, want hi", result.DetectedLanguage)
	}
	// The reply language follows the profile, so the English template is used.
	if !strings.Contains(result.Response, "Here is what I know about Fever") {
		t.Errorf("response = %q, want the English condition summary", result.Response)
	}
}

func TestProcessMessage_GenerativePath(t *testing.T) {
	repo := &fakeChatRepo{}
	repo.messages = []*entities.ChatMessage{
		{ID: "m1", UserID: "user-1", Role: entities.ChatRoleUser, Content: "hello", Language: "en", CreatedAt: time.Now().Add(-time.Minute)},
		{ID: "m2", UserID: "user-1", Role: entities.ChatRoleAssistant, Content: "hi, how can I help?", Language: "en", CreatedAt: time.Now().Add(-time.Minute + time.Millisecond)},
	}
	provider := &fakeGenerative{reply: `{"response":"Rest and hydrate.","suggestions":["Sleep"],"emergency":false,"confidence":0.9}`}
	svc := newTestChatService(t, &fakeTranslator{}, provider, repo)

	result, err := svc.ProcessMessage(context.Background(), testUser("en", "diabetes"), "I have a fever")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}

	if result.Response != "Rest and hydrate." {
		t.Errorf("response = %q, want the generative reply", result.Response)
	}
	if len(provider.lastHistory) != 2 {
		t.Errorf("forwarded %d history turns, want 2", len(provider.lastHistory))
	}
	if !strings.Contains(provider.lastSystem, "diabetes") {
		t.Error("system prompt must carry the user's conditions")
	}
	if repo.count() != 4 {
		t.Errorf("persisted %d messages, want the prior 2 plus 2 new", repo.count())
	}
}

func TestProcessMessage_PersistFailureStillSucceeds(t *testing.T) {
	repo := &fakeChatRepo{createErr: stderrors.New("connection refused")}
	svc := newTestChatService(t, &fakeTranslator{}, nil, repo)

	result, err := svc.ProcessMessage(context.Background(), testUser("en"), "I have a fever")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v, want success despite persistence failure", err)
	}
	if result.Response == "" {
		t.Error("expected a response even when the transcript write fails")
	}
}

func TestGetHistory_DefaultLimit(t *testing.T) {
	repo := &fakeChatRepo{}
	for i := 0; i < 60; i++ {
		repo.messages = append(repo.messages, &entities.ChatMessage{
			ID:     "m" + strconv.Itoa(i),
			UserID: "user-1",
			Role:   entities.ChatRoleUser,
		})
	}
	svc := newTestChatService(t, &fakeTranslator{}, nil, repo)

	messages, err := svc.GetHistory(context.Background(), "user-1", 0)
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(messages) != defaultHistoryFetch {
		t.Errorf("returned %d messages, want the %d default", len(messages), defaultHistoryFetch)
	}
}

func TestClearHistory(t *testing.T) {
	repo := &fakeChatRepo{}
	repo.messages = []*entities.ChatMessage{
		{ID: "m1", UserID: "user-1"},
		{ID: "m2", UserID: "user-2"},
	}
	svc := newTestChatService(t, &fakeTranslator{}, nil, repo)

	if err := svc.ClearHistory(context.Background(), "user-1"); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}
	if repo.count() != 1 {
		t.Errorf("remaining messages = %d, want only the other user's", repo.count())
	}
}
