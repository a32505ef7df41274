package services

import (
	"context"
	"strings"
	"time"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/repositories"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/errors"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/language"
)

// ProfileUpdate carries the user-editable profile fields. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	Name              *string  `json:"name,omitempty"`
	PreferredLanguage *string  `json:"preferredLanguage,omitempty"`
	Conditions        []string `json:"conditions,omitempty"`
}

// UserService handles profile reads and updates.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetProfile returns the user by ID.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile applies the provided fields and returns the updated user.
// The preferred language must be one of the supported codes.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*entities.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, errors.NewValidationError("name cannot be empty")
		}
		user.Name = name
	}

	if update.PreferredLanguage != nil {
		code := strings.TrimSpace(*update.PreferredLanguage)
		if !language.IsSupported(code) {
			return nil, errors.NewValidationError("unsupported language code: " + code)
		}
		user.PreferredLanguage = code
	}

	if update.Conditions != nil {
		conditions := make([]string, 0, len(update.Conditions))
		for _, condition := range update.Conditions {
			condition = strings.ToLower(strings.TrimSpace(condition))
			if condition != "" {
				conditions = append(conditions, condition)
			}
		}
		user.Conditions = conditions
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
