package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
)

type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

// ListByOrder returns the order's chat log in creation order. Restartable;
// no pagination state.
func (r *MessageReadRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]models.MessageDB, error) {
	const query = `
		SELECT message_id, order_id, sender_id, content, image_url, created_at
		FROM messages
		WHERE order_id = $1
		ORDER BY created_at ASC
	`

	var messages []models.MessageDB
	err := r.db.SelectContext(ctx, &messages, query, orderID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{orderID},
		"result", len(messages),
		"error", err,
	)

	return messages, err
}

// ExistsWithContent reports whether the order already has a message with the
// exact content. Used to post sentinel messages at most once.
func (r *MessageReadRepository) ExistsWithContent(ctx context.Context, orderID uuid.UUID, content string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM messages
			WHERE order_id = $1 AND content = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, orderID, content)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{orderID, content},
		"result", exists,
		"error", err,
	)

	return exists, err
}

type MessageWriteRepository struct {
	db *sqlx.DB
}

func NewMessageWriteRepository(db *sqlx.DB) *MessageWriteRepository {
	return &MessageWriteRepository{db: db}
}

// Save appends a message to the order's chat log.
func (r *MessageWriteRepository) Save(ctx context.Context, message models.MessageDB) (*models.MessageDB, error) {
	const query = `
		INSERT INTO messages (message_id, order_id, sender_id, content, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING message_id, order_id, sender_id, content, image_url, created_at
	`

	var saved models.MessageDB
	err := r.db.GetContext(ctx, &saved, query,
		message.MessageID, message.OrderID, message.SenderID, message.Content, message.ImageURL)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{message.MessageID, message.OrderID, message.SenderID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}
