package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/repositories"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/clients/postgres"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/observability"
	apperrors "github.com/GowthamPulluri/Healthcare-chatbot/pkg/errors"
)

// ChatMessageAdapter implements transcript persistence in Postgres.
type ChatMessageAdapter struct {
	client  *postgres.Client
	db      *goqu.Database
	metrics *observability.Metrics
}

// NewChatMessageAdapter creates a new chat message adapter
func NewChatMessageAdapter(client *postgres.Client, metrics *observability.Metrics) repositories.ChatMessageRepository {
	return &ChatMessageAdapter{
		client:  client,
		db:      goqu.New("postgres", client.DB()),
		metrics: metrics,
	}
}

// Create appends a message to the user's transcript
func (a *ChatMessageAdapter) Create(ctx context.Context, message *entities.ChatMessage) error {
	if message == nil {
		return apperrors.NewInternalError("message is nil", fmt.Errorf("message is nil"))
	}

	record := goqu.Record{
		"id":         message.ID,
		"user_id":    message.UserID,
		"role":       message.Role,
		"content":    message.Content,
		"language":   message.Language,
		"intent":     sql.NullString{String: message.Intent, Valid: message.Intent != ""},
		"created_at": message.CreatedAt,
	}

	query, args, err := a.db.Insert("chat_messages").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build message insert query", err)
	}

	start := time.Now()
	_, err = a.client.DB().ExecContext(ctx, query, args...)
	observability.RecordDBMetric(ctx, a.metrics, "chat_messages.insert", time.Since(start))
	if err != nil {
		return apperrors.NewInternalError("failed to create chat message", err)
	}

	return nil
}

// ListByUser returns the most recent limit messages in chronological order
func (a *ChatMessageAdapter) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.ChatMessage, error) {
	ds := a.db.Select(
		"id", "user_id", "role", "content", "language", "intent", "created_at",
	).From("chat_messages").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc())

	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	start := time.Now()
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	observability.RecordDBMetric(ctx, a.metrics, "chat_messages.list", time.Since(start))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list chat messages", err)
	}
	defer rows.Close()

	var messages []*entities.ChatMessage
	for rows.Next() {
		message := &entities.ChatMessage{}
		var intent sql.NullString

		err := rows.Scan(
			&message.ID,
			&message.UserID,
			&message.Role,
			&message.Content,
			&message.Language,
			&intent,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan chat message", err)
		}

		message.Intent = intent.String
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate chat messages", err)
	}

	// Query is newest-first for the LIMIT; callers want chronological.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// DeleteByUser removes the user's entire transcript. Deleting an empty
// transcript is not an error.
func (a *ChatMessageAdapter) DeleteByUser(ctx context.Context, userID string) error {
	query, args, err := a.db.Delete("chat_messages").
		Where(goqu.Ex{"user_id": userID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	start := time.Now()
	_, err = a.client.DB().ExecContext(ctx, query, args...)
	observability.RecordDBMetric(ctx, a.metrics, "chat_messages.delete", time.Since(start))
	if err != nil {
		return apperrors.NewInternalError("failed to delete chat messages", err)
	}

	return nil
}
