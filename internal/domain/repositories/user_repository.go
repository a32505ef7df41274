package repositories

import (
	"context"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByAPIToken resolves a bearer token to its user
	GetByAPIToken(ctx context.Context, token string) (*entities.User, error)

	// Update persists profile changes (preferred language, conditions)
	Update(ctx context.Context, user *entities.User) error
}
