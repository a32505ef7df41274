package handlers

import (
	"net/http"
	"strings"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// ConditionCatalog is the slice of the knowledge base the HTTP layer
// depends on.
type ConditionCatalog interface {
	Lookup(name string) (*entities.MedicalCondition, bool)
	List() []string
}

// ConditionHandler handles knowledge-base HTTP requests
type ConditionHandler struct {
	catalog ConditionCatalog
}

// NewConditionHandler creates a new condition handler
func NewConditionHandler(catalog ConditionCatalog) *ConditionHandler {
	return &ConditionHandler{catalog: catalog}
}

// ListConditions handles GET /api/conditions
func (h *ConditionHandler) ListConditions(w http.ResponseWriter, r *http.Request) {
	names := h.catalog.List()

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"conditions": names,
		"count":      len(names),
	})
}

// GetCondition handles GET /api/conditions/{name}
func (h *ConditionHandler) GetCondition(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "condition name is required")
		return
	}

	condition, ok := h.catalog.Lookup(name)
	if !ok {
		respondWithError(w, http.StatusNotFound, "condition not found: "+name)
		return
	}

	respondWithJSON(w, http.StatusOK, condition)
}
