package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
)

const channelColumns = `
	channel_id, key, label,
	commission_buy_percent, commission_sell_percent,
	enabled_buy, enabled_sell, visible,
	status_text_buy, status_text_sell,
	sort_order, archived_at, created_at, updated_at
`

type ChannelReadRepository struct {
	db *sqlx.DB
}

func NewChannelReadRepository(db *sqlx.DB) *ChannelReadRepository {
	return &ChannelReadRepository{db: db}
}

// GetByKey returns the channel for a key, archived or not, or nil when no
// row exists. Callers decide what archived means for them.
func (r *ChannelReadRepository) GetByKey(ctx context.Context, key string) (*models.PaymentChannel, error) {
	query := `
		SELECT ` + channelColumns + `
		FROM payment_channels
		WHERE key = $1
	`

	var channel models.PaymentChannel
	err := r.db.GetContext(ctx, &channel, query, key)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{key},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &channel, nil
}

// ListVisible returns non-archived visible channels in display order.
func (r *ChannelReadRepository) ListVisible(ctx context.Context) ([]models.PaymentChannel, error) {
	query := `
		SELECT ` + channelColumns + `
		FROM payment_channels
		WHERE visible = TRUE AND archived_at IS NULL
		ORDER BY sort_order, key
	`

	var channels []models.PaymentChannel
	err := r.db.SelectContext(ctx, &channels, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(channels),
		"error", err,
	)

	return channels, err
}

type ChannelWriteRepository struct {
	db *sqlx.DB
}

func NewChannelWriteRepository(db *sqlx.DB) *ChannelWriteRepository {
	return &ChannelWriteRepository{db: db}
}

// Create inserts a new channel. The key is stored uppercase; a duplicate key
// surfaces as a unique violation for the handler to map to 409.
func (r *ChannelWriteRepository) Create(ctx context.Context, channel models.PaymentChannel) error {
	query := `
		INSERT INTO payment_channels (
			key, label,
			commission_buy_percent, commission_sell_percent,
			enabled_buy, enabled_sell, visible,
			status_text_buy, status_text_sell,
			sort_order, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	args := []any{
		strings.ToUpper(channel.Key), channel.Label,
		channel.CommissionBuyPercent, channel.CommissionSellPercent,
		channel.EnabledBuy, channel.EnabledSell, channel.Visible,
		channel.StatusTextBuy, channel.StatusTextSell,
		channel.SortOrder,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Update overwrites the mutable fields of a channel identified by key.
// Returns sql.ErrNoRows when the key is unknown.
func (r *ChannelWriteRepository) Update(ctx context.Context, channel models.PaymentChannel) error {
	query := `
		UPDATE payment_channels
		SET label = $2,
		    commission_buy_percent = $3, commission_sell_percent = $4,
		    enabled_buy = $5, enabled_sell = $6, visible = $7,
		    status_text_buy = $8, status_text_sell = $9,
		    sort_order = $10, updated_at = NOW()
		WHERE key = $1
	`
	args := []any{
		strings.ToUpper(channel.Key), channel.Label,
		channel.CommissionBuyPercent, channel.CommissionSellPercent,
		channel.EnabledBuy, channel.EnabledSell, channel.Visible,
		channel.StatusTextBuy, channel.StatusTextSell,
		channel.SortOrder,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err == nil && rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return err
}

// Archive soft-deletes a channel; archived channels stop being offerable but
// stay referenced by historical orders.
func (r *ChannelWriteRepository) Archive(ctx context.Context, key string) error {
	query := `
		UPDATE payment_channels
		SET archived_at = NOW(), updated_at = NOW()
		WHERE key = $1 AND archived_at IS NULL
	`

	res, err := r.db.ExecContext(ctx, query, strings.ToUpper(key))
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{key},
		"result", rowsAffected,
		"error", err,
	)

	if err == nil && rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return err
}
