package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// intentPattern binds an intent label to its trigger phrases. Patterns are
// stored as an ordered list so score ties resolve to the earlier entry.
type intentPattern struct {
	Intent  entities.Intent `json:"intent"`
	Phrases []string        `json:"phrases"`
}

// entityVocabulary holds the keyword lists for the four entity categories.
type entityVocabulary struct {
	Symptoms    []string `json:"symptoms"`
	Diseases    []string `json:"diseases"`
	Medications []string `json:"medications"`
	BodyParts   []string `json:"bodyParts"`
}

// IntentService classifies messages into a fixed intent set and extracts
// medical terms by keyword matching. It is a lookup, not a model.
type IntentService struct {
	patterns   []intentPattern
	vocabulary entityVocabulary
}

// NewIntentService creates a new service from config files.
func NewIntentService(patternsPath, vocabularyPath string) (*IntentService, error) {
	svc := &IntentService{}

	if err := svc.loadPatterns(patternsPath); err != nil {
		return nil, err
	}
	if err := svc.loadVocabulary(vocabularyPath); err != nil {
		return nil, err
	}

	return svc, nil
}

func (s *IntentService) loadPatterns(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &s.patterns); err != nil {
		return err
	}
	for i := range s.patterns {
		if !s.patterns[i].Intent.IsValid() {
			return fmt.Errorf("unknown intent %q in %s", s.patterns[i].Intent, path)
		}
		for j, phrase := range s.patterns[i].Phrases {
			s.patterns[i].Phrases[j] = strings.ToLower(strings.TrimSpace(phrase))
		}
	}
	return nil
}

func (s *IntentService) loadVocabulary(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &s.vocabulary); err != nil {
		return err
	}
	for _, category := range [][]string{
		s.vocabulary.Symptoms, s.vocabulary.Diseases,
		s.vocabulary.Medications, s.vocabulary.BodyParts,
	} {
		for i, keyword := range category {
			category[i] = strings.ToLower(strings.TrimSpace(keyword))
		}
	}
	return nil
}

// DetectIntent classifies a message. Each trigger phrase found in the text
// scores len(phrase)/len(text); the highest score wins and ties keep the
// earlier pattern. A message with no phrase match is general_health at the
// 0.1 confidence floor. Extracted entities raise confidence by 0.1 each,
// capped at 1.0.
func (s *IntentService) DetectIntent(text string) *entities.IntentResult {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return &entities.IntentResult{
			Intent:     entities.IntentGeneralHealth,
			Confidence: 0.1,
			Entities:   []string{},
		}
	}

	best := entities.IntentGeneralHealth
	bestScore := 0.0
	for _, pattern := range s.patterns {
		for _, phrase := range pattern.Phrases {
			if phrase == "" || !strings.Contains(lower, phrase) {
				continue
			}
			score := float64(len(phrase)) / float64(len(lower))
			if score > bestScore {
				bestScore = score
				best = pattern.Intent
			}
		}
	}

	confidence := bestScore
	if confidence == 0 {
		confidence = 0.1
	}

	extracted := s.ExtractEntities(text).All()
	confidence += 0.1 * float64(len(extracted))
	if confidence > 1.0 {
		confidence = 1.0
	}

	return &entities.IntentResult{
		Intent:     best,
		Confidence: confidence,
		Entities:   extracted,
	}
}

// ExtractEntities finds every vocabulary keyword present in the text,
// grouped by category. Matching is plain substring containment on the
// lower-cased text.
func (s *IntentService) ExtractEntities(text string) *entities.EntityExtraction {
	lower := strings.ToLower(text)

	return &entities.EntityExtraction{
		Symptoms:    matchKeywords(lower, s.vocabulary.Symptoms),
		Diseases:    matchKeywords(lower, s.vocabulary.Diseases),
		Medications: matchKeywords(lower, s.vocabulary.Medications),
		BodyParts:   matchKeywords(lower, s.vocabulary.BodyParts),
	}
}

func matchKeywords(lower string, keywords []string) []string {
	matched := []string{}
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
