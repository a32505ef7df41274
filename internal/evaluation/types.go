package evaluation

import (
	"time"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// GoldenCase is one labeled user message with its expected pipeline outcome.
type GoldenCase struct {
	ID               string          `json:"id"`
	Message          string          `json:"message"`
	Intent           entities.Intent `json:"intent"`
	RequiredEntities []string        `json:"required_entities"`
	Emergency        bool            `json:"emergency"`
	Difficulty       string          `json:"difficulty"` // easy, medium, hard
}

// CaseResult holds the evaluation outcome for a single case.
type CaseResult struct {
	CaseID       string
	Message      string
	Expected     entities.Intent
	Predicted    entities.Intent
	IntentMatch  bool
	EntityRecall float64
	Confidence   float64
	Violations   []string
	Latency      time.Duration
}

// IntentSummary holds accuracy grouped by expected intent.
type IntentSummary struct {
	Cases    int
	Correct  int
	Accuracy float64
}

// CalibrationBucket counts cases whose confidence fell inside
// [Lower, Upper) and how often the predicted intent was right for them.
// A well-calibrated classifier has accuracy rising with the bucket.
type CalibrationBucket struct {
	Lower    float64
	Upper    float64
	Cases    int
	Correct  int
	Accuracy float64
}

// Summary holds aggregate metrics across all golden cases.
type Summary struct {
	TotalCases      int
	CorrectIntents  int
	IntentAccuracy  float64 // correct / total
	MacroAccuracy   float64 // mean of per-intent accuracies
	AvgEntityRecall float64
	AvgLatency      time.Duration
	ByIntent        map[entities.Intent]*IntentSummary
	Calibration     []CalibrationBucket
	Violations      []string
}
