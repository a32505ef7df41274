package evaluation

import (
	"time"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// IntentDetector is the slice of the intent service the runner drives.
type IntentDetector interface {
	DetectIntent(text string) *entities.IntentResult
}

// ResponseSynthesizer is the slice of the response service the runner drives.
type ResponseSynthesizer interface {
	GetMedicalResponse(intent entities.Intent, entityList []string, userConditions []string, lang string) *entities.GeneratedResponse
}

// Runner grades the understanding pipeline against a golden transcript set.
type Runner struct {
	intents   IntentDetector
	responses ResponseSynthesizer
}

func NewRunner(intents IntentDetector, responses ResponseSynthesizer) *Runner {
	return &Runner{intents: intents, responses: responses}
}

// Run evaluates every golden case and aggregates the outcome. Responses are
// synthesized from the predicted intent, the way the live pipeline would.
func (r *Runner) Run(cases []GoldenCase) *Summary {
	summary := &Summary{
		TotalCases:  len(cases),
		ByIntent:    make(map[entities.Intent]*IntentSummary),
		Calibration: newCalibration(),
		Violations:  make([]string, 0),
	}

	for _, c := range cases {
		start := time.Now()
		detected := r.intents.DetectIntent(c.Message)
		latency := time.Since(start)

		result := CaseResult{
			CaseID:       c.ID,
			Message:      c.Message,
			Expected:     c.Intent,
			Predicted:    detected.Intent,
			IntentMatch:  detected.Intent == c.Intent,
			EntityRecall: EntityRecall(c.RequiredEntities, detected.Entities),
			Confidence:   detected.Confidence,
			Latency:      latency,
		}

		response := r.responses.GetMedicalResponse(detected.Intent, detected.Entities, nil, "en")
		result.Violations = ResponseViolations(c, response)

		r.updateSummary(summary, result)
	}

	r.finalizeSummary(summary)
	return summary
}

func (r *Runner) updateSummary(s *Summary, res CaseResult) {
	if res.IntentMatch {
		s.CorrectIntents++
	}
	s.AvgEntityRecall += res.EntityRecall
	s.AvgLatency += res.Latency
	s.Violations = append(s.Violations, res.Violations...)

	if _, ok := s.ByIntent[res.Expected]; !ok {
		s.ByIntent[res.Expected] = &IntentSummary{}
	}
	is := s.ByIntent[res.Expected]
	is.Cases++
	if res.IntentMatch {
		is.Correct++
	}

	bucket := &s.Calibration[bucketIndex(res.Confidence)]
	bucket.Cases++
	if res.IntentMatch {
		bucket.Correct++
	}
}

func (r *Runner) finalizeSummary(s *Summary) {
	if s.TotalCases > 0 {
		n := float64(s.TotalCases)
		s.IntentAccuracy = float64(s.CorrectIntents) / n
		s.AvgEntityRecall /= n
		s.AvgLatency /= time.Duration(s.TotalCases)
	}

	var macroSum float64
	for _, is := range s.ByIntent {
		if is.Cases > 0 {
			is.Accuracy = float64(is.Correct) / float64(is.Cases)
		}
		macroSum += is.Accuracy
	}
	if len(s.ByIntent) > 0 {
		s.MacroAccuracy = macroSum / float64(len(s.ByIntent))
	}

	for i := range s.Calibration {
		b := &s.Calibration[i]
		if b.Cases > 0 {
			b.Accuracy = float64(b.Correct) / float64(b.Cases)
		}
	}
}
