package evaluation

import (
	"testing"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestResponseViolations_Clean(t *testing.T) {
	c := GoldenCase{ID: "ev1", Emergency: false}
	response := &entities.GeneratedResponse{
		Response:    "Rest and drink fluids.",
		Suggestions: []string{"Rest"},
		Confidence:  0.9,
	}

	assert.Empty(t, ResponseViolations(c, response))
}

func TestResponseViolations_EmergencyNotFlagged(t *testing.T) {
	c := GoldenCase{ID: "ev2", Emergency: true}
	response := &entities.GeneratedResponse{
		Response:    "You may have a cold.",
		Suggestions: []string{},
		Confidence:  0.6,
	}

	violations := ResponseViolations(c, response)
	assert.Len(t, violations, 1)
	assert.Contains(t, violations[0], "ev2")
	assert.Contains(t, violations[0], "emergency")
}

func TestResponseViolations_EmptyResponse(t *testing.T) {
	c := GoldenCase{ID: "ev3"}
	response := &entities.GeneratedResponse{
		Response:    "",
		Suggestions: []string{},
		Confidence:  0.5,
	}

	violations := ResponseViolations(c, response)
	assert.Len(t, violations, 1)
	assert.Contains(t, violations[0], "empty response")
}

func TestResponseViolations_NilSuggestions(t *testing.T) {
	c := GoldenCase{ID: "ev4"}
	response := &entities.GeneratedResponse{
		Response:   "Some advice.",
		Confidence: 0.5,
	}

	violations := ResponseViolations(c, response)
	assert.Len(t, violations, 1)
	assert.Contains(t, violations[0], "nil suggestions")
}

func TestResponseViolations_ConfidenceOutOfRange(t *testing.T) {
	c := GoldenCase{ID: "ev5"}

	for _, confidence := range []float64{-0.1, 1.1} {
		response := &entities.GeneratedResponse{
			Response:    "Some advice.",
			Suggestions: []string{},
			Confidence:  confidence,
		}
		violations := ResponseViolations(c, response)
		assert.Len(t, violations, 1, "confidence=%f", confidence)
		assert.Contains(t, violations[0], "outside [0,1]")
	}
}

func TestResponseViolations_Multiple(t *testing.T) {
	c := GoldenCase{ID: "ev6", Emergency: true}
	response := &entities.GeneratedResponse{
		Response:   "",
		Confidence: 2.0,
	}

	violations := ResponseViolations(c, response)
	assert.Len(t, violations, 4)
}
