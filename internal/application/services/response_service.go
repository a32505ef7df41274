package services

import (
	"fmt"
	"strings"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// emergencyTriggers are entity values that force the emergency response
// regardless of the detected intent.
var emergencyTriggers = map[string]struct{}{
	"chest pain":      {},
	"heart attack":    {},
	"stroke":          {},
	"unconscious":     {},
	"seizure":         {},
	"severe bleeding": {},
}

// ResponseService synthesizes canned replies from the knowledge base when no
// generative backend is in play. Every path returns the same GeneratedResponse
// shape the generative path emits.
type ResponseService struct {
	kb *KnowledgeBaseService
}

// NewResponseService creates a new response synthesizer.
func NewResponseService(kb *KnowledgeBaseService) *ResponseService {
	return &ResponseService{kb: kb}
}

// GetMedicalResponse builds a reply for the detected intent and entities.
// Emergencies short-circuit everything else. Otherwise the first entity with
// a knowledge base entry drives a condition summary, and a generic per-intent
// reply covers the rest. Text is produced in the template language nearest to
// lang; callers translate onward when needed.
func (s *ResponseService) GetMedicalResponse(intent entities.Intent, entityList []string, userConditions []string, lang string) *entities.GeneratedResponse {
	lang = TemplateLanguage(lang)

	if intent == entities.IntentEmergency || hasEmergencyTrigger(entityList) {
		tpl := emergencyTemplates[lang]
		return &entities.GeneratedResponse{
			Response:    tpl.Message,
			Suggestions: append([]string{}, tpl.Suggestions...),
			Emergency:   true,
			Confidence:  1.0,
		}
	}

	for _, entity := range entityList {
		condition, ok := s.kb.Lookup(entity)
		if !ok {
			continue
		}

		tpl := conditionTemplates[lang]
		suggestions := append([]string{}, condition.Treatments...)
		if len(userConditions) > 0 {
			suggestions = append(suggestions, fmt.Sprintf(tpl.Caution, strings.Join(userConditions, ", ")))
		}

		return &entities.GeneratedResponse{
			Response: fmt.Sprintf(tpl.Summary,
				condition.Name,
				strings.Join(condition.Symptoms, ", "),
				strings.Join(condition.Causes, ", "),
				strings.Join(condition.Treatments, ", "),
				strings.Join(condition.Precautions, ", "),
			),
			Suggestions: suggestions,
			Emergency:   condition.Emergency,
			FollowUp:    fmt.Sprintf(tpl.FollowUp, condition.Name),
			Confidence:  0.9,
		}
	}

	byLang, ok := intentTemplates[intent]
	if !ok {
		byLang = intentTemplates[entities.IntentGeneralHealth]
	}
	tpl := byLang[lang]

	return &entities.GeneratedResponse{
		Response:    tpl.Response,
		Suggestions: append([]string{}, tpl.Suggestions...),
		Emergency:   false,
		Confidence:  0.6,
	}
}

func hasEmergencyTrigger(entityList []string) bool {
	for _, entity := range entityList {
		if _, ok := emergencyTriggers[strings.ToLower(entity)]; ok {
			return true
		}
	}
	return false
}
