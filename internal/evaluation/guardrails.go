package evaluation

import (
	"fmt"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// ResponseViolations checks a synthesized response against the safety
// guardrails: an emergency input must produce an emergency-flagged
// response, the response text must be non-empty, suggestions must never
// be nil and confidence must stay within [0,1].
func ResponseViolations(c GoldenCase, response *entities.GeneratedResponse) []string {
	violations := make([]string, 0)

	if c.Emergency && !response.Emergency {
		violations = append(violations, fmt.Sprintf("case %s: emergency input not flagged as emergency", c.ID))
	}
	if response.Response == "" {
		violations = append(violations, fmt.Sprintf("case %s: empty response text", c.ID))
	}
	if response.Suggestions == nil {
		violations = append(violations, fmt.Sprintf("case %s: nil suggestions", c.ID))
	}
	if response.Confidence < 0 || response.Confidence > 1 {
		violations = append(violations, fmt.Sprintf("case %s: confidence %.2f outside [0,1]", c.ID, response.Confidence))
	}

	return violations
}
