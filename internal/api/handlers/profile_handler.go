package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/api/middleware"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/application/services"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// ProfileService is the slice of the user service the HTTP layer depends on.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID string, update services.ProfileUpdate) (*entities.User, error)
}

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type profileResponse struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	PreferredLanguage string   `json:"preferredLanguage"`
	Conditions        []string `json:"conditions"`
}

func newProfileResponse(user *entities.User) profileResponse {
	conditions := user.Conditions
	if conditions == nil {
		conditions = []string{}
	}
	return profileResponse{
		Name:              user.Name,
		Email:             user.Email,
		PreferredLanguage: user.PreferredLanguage,
		Conditions:        conditions,
	}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), user.ID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, newProfileResponse(profile))
}

// UpdateProfile handles PUT /api/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var update services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), user.ID, update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, newProfileResponse(updated))
}
