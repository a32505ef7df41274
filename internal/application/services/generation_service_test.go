package services

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// fakeGenerative captures the prompts it was asked with and returns a
// programmable reply.
type fakeGenerative struct {
	reply       string
	err         error
	lastSystem  string
	lastUser    string
	lastHistory []entities.ChatTurn
	lastCtx     context.Context
}

func (f *fakeGenerative) Name() string {
	return "fake"
}

func (f *fakeGenerative) Chat(ctx context.Context, systemPrompt, userPrompt string, history []entities.ChatTurn) (string, error) {
	f.lastCtx = ctx
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	f.lastHistory = history
	return f.reply, f.err
}

func TestGenerateResponse_ParsesJSON(t *testing.T) {
	provider := &fakeGenerative{reply: `{"response":"Drink water and rest.","suggestions":["Rest well","Stay hydrated"],"emergency":false,"followUp":"How long has this lasted?","confidence":0.9}`}
	svc := NewGenerationService(provider, 0, nil)

	resp := svc.GenerateResponse(context.Background(), "I have a fever", entities.IntentSymptomInquiry, []string{"fever"}, nil, "en", nil)

	if resp.Response != "Drink water and rest." {
		t.Errorf("response = %q", resp.Response)
	}
	if len(resp.Suggestions) != 2 {
		t.Errorf("suggestions = %v, want 2 entries", resp.Suggestions)
	}
	if resp.FollowUp != "How long has this lasted?" {
		t.Errorf("followUp = %q", resp.FollowUp)
	}
	if resp.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", resp.Confidence)
	}
}

func TestGenerateResponse_FencedJSONEqualsBare(t *testing.T) {
	payload := `{"response":"Rest today.","suggestions":["Sleep"],"emergency":false,"confidence":0.85}`

	bare := NewGenerationService(&fakeGenerative{reply: payload}, 0, nil).
		GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "en", nil)
	fenced := NewGenerationService(&fakeGenerative{reply: "```json\n" + payload + "\n```"}, 0, nil).
		GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "en", nil)

	if !reflect.DeepEqual(bare, fenced) {
		t.Errorf("fenced reply parsed differently: %+v vs %+v", bare, fenced)
	}
}

func TestGenerateResponse_FieldDefaults(t *testing.T) {
	provider := &fakeGenerative{reply: `{"response":"Take it easy."}`}
	svc := NewGenerationService(provider, 0, nil)

	resp := svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "en", nil)

	if resp.Response != "Take it easy." {
		t.Errorf("response = %q", resp.Response)
	}
	if resp.Suggestions == nil || len(resp.Suggestions) != 0 {
		t.Errorf("suggestions = %#v, want empty non-nil", resp.Suggestions)
	}
	if resp.Emergency {
		t.Error("emergency must default to false")
	}
	if resp.FollowUp != "" {
		t.Errorf("followUp = %q, want empty", resp.FollowUp)
	}
	if resp.Confidence != 0.8 {
		t.Errorf("confidence = %v, want the 0.8 parsed default", resp.Confidence)
	}
}

func TestGenerateResponse_RawTextDegrade(t *testing.T) {
	provider := &fakeGenerative{reply: "Drink plenty of fluids and rest."}
	svc := NewGenerationService(provider, 0, nil)

	resp := svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "en", nil)

	if resp.Response != "Drink plenty of fluids and rest." {
		t.Errorf("response = %q, want the raw text", resp.Response)
	}
	if len(resp.Suggestions) != 0 {
		t.Errorf("suggestions = %v, want empty", resp.Suggestions)
	}
	if resp.Confidence != 0.7 {
		t.Errorf("confidence = %v, want the 0.7 raw-text default", resp.Confidence)
	}
}

func TestGenerateResponse_SurroundingProse(t *testing.T) {
	provider := &fakeGenerative{reply: `Here you go: {"response":"ok","confidence":0.6} hope that helps`}
	svc := NewGenerationService(provider, 0, nil)

	resp := svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "en", nil)
	if resp.Response != "ok" || resp.Confidence != 0.6 {
		t.Errorf("got %+v, want the embedded JSON object parsed", resp)
	}
}

func TestGenerateResponse_ConfidenceClamped(t *testing.T) {
	provider := &fakeGenerative{reply: `{"response":"ok","confidence":1.5}`}
	svc := NewGenerationService(provider, 0, nil)

	resp := svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "en", nil)
	if resp.Confidence != 1.0 {
		t.Errorf("confidence = %v, want clamped to 1.0", resp.Confidence)
	}
}

func TestGenerateResponse_ProviderErrorFallsBack(t *testing.T) {
	for _, lang := range []string{"en", "hi", "te", "ta", "kn", "ml"} {
		provider := &fakeGenerative{err: errors.New("backend down")}
		svc := NewGenerationService(provider, 0, nil)

		resp := svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, lang, nil)

		if resp.Confidence != 0.1 {
			t.Errorf("lang %s: confidence = %v, want 0.1", lang, resp.Confidence)
		}
		if resp.Emergency {
			t.Errorf("lang %s: fallback must not set emergency", lang)
		}
		if resp.Response != fallbackTemplates[lang].Response {
			t.Errorf("lang %s: response = %q, want the localized apology", lang, resp.Response)
		}
	}
}

func TestGenerateResponse_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	provider := &fakeGenerative{err: errors.New("backend down")}
	svc := NewGenerationService(provider, 0, nil)

	resp := svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "fr", nil)
	if resp.Response != fallbackTemplates["en"].Response {
		t.Errorf("response = %q, want the English apology", resp.Response)
	}
}

func TestGenerateResponse_EmptyReplyFallsBack(t *testing.T) {
	provider := &fakeGenerative{reply: "   "}
	svc := NewGenerationService(provider, 0, nil)

	resp := svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "en", nil)
	if resp.Confidence != 0.1 {
		t.Errorf("confidence = %v, want the fallback payload", resp.Confidence)
	}
}

func TestGenerateResponse_PromptContents(t *testing.T) {
	provider := &fakeGenerative{reply: `{"response":"ok"}`}
	svc := NewGenerationService(provider, 0, nil)

	svc.GenerateResponse(context.Background(), "I feel dizzy", entities.IntentSymptomInquiry, []string{"dizziness"}, []string{"diabetes"}, "hi", nil)

	if !strings.Contains(provider.lastSystem, "diabetes") {
		t.Error("system prompt must list the user's recorded conditions")
	}
	if !strings.Contains(provider.lastSystem, languageDirectives["hi"]) {
		t.Error("system prompt must carry the reply-language directive")
	}
	if !strings.Contains(provider.lastUser, "I feel dizzy") {
		t.Error("user prompt must embed the message")
	}
	if !strings.Contains(provider.lastUser, string(entities.IntentSymptomInquiry)) {
		t.Error("user prompt must embed the detected intent")
	}
	if !strings.Contains(provider.lastUser, "dizziness") {
		t.Error("user prompt must embed the extracted terms")
	}
}

func TestGenerateResponse_NoConditionsNote(t *testing.T) {
	provider := &fakeGenerative{reply: `{"response":"ok"}`}
	svc := NewGenerationService(provider, 0, nil)

	svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "en", nil)

	if strings.Contains(provider.lastSystem, "known conditions") {
		t.Error("system prompt must omit the conditions note when there are none")
	}
}

func TestGenerateResponse_HistoryBounded(t *testing.T) {
	provider := &fakeGenerative{reply: `{"response":"ok"}`}
	svc := NewGenerationService(provider, 0, nil)

	history := make([]entities.ChatTurn, 10)
	for i := range history {
		history[i] = entities.ChatTurn{Role: entities.ChatRoleUser, Content: "turn " + strconv.Itoa(i)}
	}

	svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "en", history)

	if len(provider.lastHistory) != maxHistoryTurns {
		t.Fatalf("history length = %d, want %d", len(provider.lastHistory), maxHistoryTurns)
	}
	if provider.lastHistory[0].Content != "turn 4" {
		t.Errorf("first forwarded turn = %q, want the oldest of the last six", provider.lastHistory[0].Content)
	}
}

func TestGenerateResponse_DeadlineApplied(t *testing.T) {
	provider := &fakeGenerative{reply: `{"response":"ok"}`}
	svc := NewGenerationService(provider, 5, nil)

	before := time.Now()
	svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "en", nil)

	deadline, ok := provider.lastCtx.Deadline()
	if !ok {
		t.Fatal("provider context must carry a deadline")
	}
	if deadline.After(before.Add(6 * time.Second)) {
		t.Errorf("deadline %v too far out for a 5s timeout", deadline)
	}
}

func TestGenerationService_Disabled(t *testing.T) {
	svc := NewGenerationService(nil, 0, nil)

	if svc.Enabled() {
		t.Error("service without a provider must report disabled")
	}
	resp := svc.GenerateResponse(context.Background(), "m", entities.IntentGeneralHealth, nil, nil, "te", nil)
	if resp.Response != fallbackTemplates["te"].Response {
		t.Errorf("response = %q, want the localized fallback", resp.Response)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"```{\"a\":1}```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  plain text  ", "plain text"},
	}

	for _, tt := range tests {
		if got := stripCodeFences(tt.in); got != tt.want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
