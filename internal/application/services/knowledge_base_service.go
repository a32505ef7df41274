package services

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// KnowledgeBaseService serves the static medical condition reference data.
// The knowledge base is loaded once at start-up and never mutated.
type KnowledgeBaseService struct {
	conditions map[string]*entities.MedicalCondition
	names      []string
}

// NewKnowledgeBaseService creates a new service from the knowledge base config file.
func NewKnowledgeBaseService(path string) (*KnowledgeBaseService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]*entities.MedicalCondition
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	svc := &KnowledgeBaseService{
		conditions: make(map[string]*entities.MedicalCondition, len(raw)),
		names:      make([]string, 0, len(raw)),
	}
	for key, condition := range raw {
		k := strings.ToLower(strings.TrimSpace(key))
		svc.conditions[k] = condition
		svc.names = append(svc.names, k)
	}
	sort.Strings(svc.names)

	return svc, nil
}

// Lookup returns the condition for a canonical name, matching case-insensitively.
func (s *KnowledgeBaseService) Lookup(name string) (*entities.MedicalCondition, bool) {
	condition, ok := s.conditions[strings.ToLower(strings.TrimSpace(name))]
	return condition, ok
}

// List returns the canonical condition names in sorted order.
func (s *KnowledgeBaseService) List() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}
