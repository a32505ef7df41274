package entities

// IntentResult is the outcome of intent detection for a single message.
// Confidence is always within [0,1] and Entities is never nil.
type IntentResult struct {
	Intent     Intent   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Entities   []string `json:"entities"`
}

// EntityExtraction groups the medical terms found in a message by
// category. Slices are never nil.
type EntityExtraction struct {
	Symptoms    []string `json:"symptoms"`
	Diseases    []string `json:"diseases"`
	Medications []string `json:"medications"`
	BodyParts   []string `json:"bodyParts"`
}

// All returns the duplicate-free union of every category, in category
// then extraction order.
func (e EntityExtraction) All() []string {
	seen := make(map[string]bool)
	all := make([]string, 0, len(e.Symptoms)+len(e.Diseases)+len(e.Medications)+len(e.BodyParts))
	for _, group := range [][]string{e.Symptoms, e.Diseases, e.Medications, e.BodyParts} {
		for _, entity := range group {
			if !seen[entity] {
				seen[entity] = true
				all = append(all, entity)
			}
		}
	}
	return all
}

// GeneratedResponse is the single shape every response-producing path
// emits, whether the text came from the knowledge base or a generative
// backend. Suggestions is never nil; an empty FollowUp means none.
type GeneratedResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
	Emergency   bool     `json:"emergency"`
	FollowUp    string   `json:"followUp,omitempty"`
	Confidence  float64  `json:"confidence"`
}

// ChatResult is the full pipeline output handed to the HTTP layer.
type ChatResult struct {
	Response         string   `json:"response"`
	Suggestions      []string `json:"suggestions"`
	Emergency        bool     `json:"emergency"`
	FollowUp         string   `json:"followUp,omitempty"`
	Intent           Intent   `json:"intent"`
	Confidence       float64  `json:"confidence"`
	Entities         []string `json:"entities"`
	DetectedLanguage string   `json:"detectedLanguage"`
}
