package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/repositories"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/clients/postgres"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
	apperrors "github.com/GowthamPulluri/Healthcare-chatbot/pkg/errors"
)

// UserAdapter implements the UserRepository interface. The conditions
// list is stored as a JSONB column.
type UserAdapter struct {
	client  *postgres.Client
	db      *goqu.Database
	metrics *observability.Metrics
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client, metrics *observability.Metrics) repositories.UserRepository {
	return &UserAdapter{
		client:  client,
		db:      goqu.New("postgres", client.DB()),
		metrics: metrics,
	}
}

// Create creates a new user
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	if user == nil {
		return apperrors.NewInternalError("user is nil", fmt.Errorf("user is nil"))
	}

	conditions, err := json.Marshal(userConditions(user))
	if err != nil {
		return apperrors.NewInternalError("failed to encode conditions", err)
	}

	record := goqu.Record{
		"id":                 user.ID,
		"name":               user.Name,
		"email":              user.Email,
		"api_token":          user.APIToken,
		"preferred_language": user.PreferredLanguage,
		"conditions":         conditions,
		"created_at":         user.CreatedAt,
		"updated_at":         user.UpdatedAt,
	}

	query, args, err := a.db.Insert("users").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user insert query", err)
	}

	start := time.Now()
	_, err = a.client.DB().ExecContext(ctx, query, args...)
	observability.RecordDBMetric(ctx, a.metrics, "users.insert", time.Since(start))
	if err != nil {
		return apperrors.NewInternalError("failed to create user", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return a.getByColumn(ctx, "id", id, fmt.Sprintf("user with id %s not found", id))
}

// GetByAPIToken resolves a bearer token to its user
func (a *UserAdapter) GetByAPIToken(ctx context.Context, token string) (*entities.User, error) {
	return a.getByColumn(ctx, "api_token", token, "user with given token not found")
}

func (a *UserAdapter) getByColumn(ctx context.Context, column, value, notFoundMsg string) (*entities.User, error) {
	query, args, err := a.db.Select(
		"id", "name", "email", "api_token", "preferred_language", "conditions",
		"created_at", "updated_at",
	).From("users").
		Where(goqu.Ex{column: value}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user query", err)
	}

	user := &entities.User{}
	var conditions []byte

	start := time.Now()
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.APIToken,
		&user.PreferredLanguage,
		&conditions,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	observability.RecordDBMetric(ctx, a.metrics, "users.get", time.Since(start))

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	user.Conditions = []string{}
	if len(conditions) > 0 {
		if err := json.Unmarshal(conditions, &user.Conditions); err != nil {
			return nil, apperrors.NewInternalError("failed to decode conditions", err)
		}
	}
	if user.Conditions == nil {
		user.Conditions = []string{}
	}

	return user, nil
}

// Update persists profile changes (name, preferred language, conditions)
func (a *UserAdapter) Update(ctx context.Context, user *entities.User) error {
	if user == nil {
		return apperrors.NewInternalError("user is nil", fmt.Errorf("user is nil"))
	}

	user.UpdatedAt = time.Now()

	conditions, err := json.Marshal(userConditions(user))
	if err != nil {
		return apperrors.NewInternalError("failed to encode conditions", err)
	}

	record := goqu.Record{
		"name":               user.Name,
		"preferred_language": user.PreferredLanguage,
		"conditions":         conditions,
		"updated_at":         user.UpdatedAt,
	}

	query, args, err := a.db.Update("users").
		Set(record).
		Where(goqu.Ex{"id": user.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build user update query", err)
	}

	start := time.Now()
	result, err := a.client.DB().ExecContext(ctx, query, args...)
	observability.RecordDBMetric(ctx, a.metrics, "users.update", time.Since(start))
	if err != nil {
		return apperrors.NewInternalError("failed to update user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", user.ID))
	}

	return nil
}

// userConditions never returns nil so the column always holds a JSON array.
func userConditions(user *entities.User) []string {
	if user.Conditions == nil {
		return []string{}
	}
	return user.Conditions
}
