package services

import (
	"math"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

func testConfigDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "config")
}

func newTestIntentService(t *testing.T) *IntentService {
	t.Helper()
	configDir := testConfigDir()
	svc, err := NewIntentService(
		filepath.Join(configDir, "intent_patterns.json"),
		filepath.Join(configDir, "entity_vocabulary.json"),
	)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

// --- Intent detection tests ---

func TestDetectIntent_AlwaysValid(t *testing.T) {
	svc := newTestIntentService(t)

	inputs := []string{
		"I have a headache",
		"what is diabetes",
		"can i take paracetamol",
		"emergency please help",
		"health tips for winter",
		"asdf qwerty zxcv",
		"तेज बुखार",
	}

	for _, input := range inputs {
		result := svc.DetectIntent(input)
		if !result.Intent.IsValid() {
			t.Errorf("DetectIntent(%q) returned unknown intent %q", input, result.Intent)
		}
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Errorf("DetectIntent(%q) confidence %v out of range", input, result.Confidence)
		}
		if result.Entities == nil {
			t.Errorf("DetectIntent(%q) returned nil entities", input)
		}
	}
}

func TestDetectIntent_EmptyText(t *testing.T) {
	svc := newTestIntentService(t)

	for _, input := range []string{"", "   ", "\n\t"} {
		result := svc.DetectIntent(input)
		if result.Intent != entities.IntentGeneralHealth {
			t.Errorf("DetectIntent(%q) intent = %q, want general_health", input, result.Intent)
		}
		if result.Confidence != 0.1 {
			t.Errorf("DetectIntent(%q) confidence = %v, want 0.1", input, result.Confidence)
		}
		if len(result.Entities) != 0 {
			t.Errorf("DetectIntent(%q) entities = %v, want empty", input, result.Entities)
		}
	}
}

func TestDetectIntent_NoMatchDefaults(t *testing.T) {
	svc := newTestIntentService(t)

	result := svc.DetectIntent("qwerty asdf zxcvb")
	if result.Intent != entities.IntentGeneralHealth {
		t.Errorf("intent = %q, want general_health", result.Intent)
	}
	if result.Confidence != 0.1 {
		t.Errorf("confidence = %v, want the 0.1 floor", result.Confidence)
	}
}

func TestDetectIntent_LongestPhraseWins(t *testing.T) {
	svc := newTestIntentService(t)

	// Matches both "i am having" (symptom_inquiry) and the longer
	// "heart attack" (emergency); the higher score must win.
	result := svc.DetectIntent("I think I am having a heart attack")
	if result.Intent != entities.IntentEmergency {
		t.Errorf("intent = %q, want emergency", result.Intent)
	}
}

func TestDetectIntent_ScoreAndEntityBoost(t *testing.T) {
	svc := newTestIntentService(t)

	// "what is" scores 7/16; the single entity "diabetes" adds 0.1.
	result := svc.DetectIntent("what is diabetes")
	if result.Intent != entities.IntentDiseaseInfo {
		t.Fatalf("intent = %q, want disease_info", result.Intent)
	}
	want := 7.0/16.0 + 0.1
	if math.Abs(result.Confidence-want) > 1e-9 {
		t.Errorf("confidence = %v, want %v", result.Confidence, want)
	}
	if len(result.Entities) != 1 || result.Entities[0] != "diabetes" {
		t.Errorf("entities = %v, want [diabetes]", result.Entities)
	}
}

func TestDetectIntent_ConfidenceCapped(t *testing.T) {
	svc := newTestIntentService(t)

	result := svc.DetectIntent("emergency chest pain heart attack stroke fever cough headache nausea dizziness vomiting")
	if result.Confidence > 1.0 {
		t.Errorf("confidence = %v, want at most 1.0", result.Confidence)
	}
	if result.Confidence != 1.0 {
		t.Errorf("confidence = %v, want capped at exactly 1.0", result.Confidence)
	}
}

func TestDetectIntent_TieKeepsEarlierPattern(t *testing.T) {
	svc := newTestIntentService(t)

	// "feeling" (symptom_inquiry) and "what is" (disease_info) are both
	// 7 characters; symptom_inquiry is listed first.
	result := svc.DetectIntent("what is he feeling")
	if result.Intent != entities.IntentSymptomInquiry {
		t.Errorf("intent = %q, want symptom_inquiry to win the tie", result.Intent)
	}
}

// --- Entity extraction tests ---

func TestExtractEntities_Categories(t *testing.T) {
	svc := newTestIntentService(t)

	extraction := svc.ExtractEntities("I have chest pain and a headache")

	if !contains(extraction.Symptoms, "chest pain") {
		t.Errorf("symptoms = %v, want chest pain included", extraction.Symptoms)
	}
	if !contains(extraction.Symptoms, "headache") {
		t.Errorf("symptoms = %v, want headache included", extraction.Symptoms)
	}
	// "chest" and "head" are body-part keywords and substring matching
	// finds them inside "chest pain" and "headache".
	if !contains(extraction.BodyParts, "chest") {
		t.Errorf("bodyParts = %v, want chest included", extraction.BodyParts)
	}
	if len(extraction.Diseases) != 0 {
		t.Errorf("diseases = %v, want empty", extraction.Diseases)
	}
	if len(extraction.Medications) != 0 {
		t.Errorf("medications = %v, want empty", extraction.Medications)
	}
}

func TestExtractEntities_NoMatches(t *testing.T) {
	svc := newTestIntentService(t)

	extraction := svc.ExtractEntities("hello there")
	if len(extraction.Symptoms)+len(extraction.Diseases)+len(extraction.Medications)+len(extraction.BodyParts) != 0 {
		t.Errorf("expected no entities, got %+v", extraction)
	}
	if extraction.Symptoms == nil || extraction.Diseases == nil || extraction.Medications == nil || extraction.BodyParts == nil {
		t.Error("category slices must be empty, not nil")
	}
}

func TestExtractEntities_AllDeduplicates(t *testing.T) {
	svc := newTestIntentService(t)

	// "heart attack" appears in the disease vocabulary and "heart" in the
	// body-part vocabulary; the union keeps each value once.
	all := svc.ExtractEntities("heart attack heart attack").All()

	seen := map[string]int{}
	for _, entity := range all {
		seen[entity]++
	}
	for entity, count := range seen {
		if count > 1 {
			t.Errorf("entity %q appears %d times in union", entity, count)
		}
	}
	if !contains(all, "heart attack") || !contains(all, "heart") {
		t.Errorf("union = %v, want heart attack and heart", all)
	}
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
