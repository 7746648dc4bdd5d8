package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
)

const orderColumns = `
	order_id, user_id, platform, side, destination,
	amount_usd, final_usd, final_usdt,
	paypal_email, recipient, status, real_profit,
	created_at, updated_at
`

type OrderReadRepository struct {
	db *sqlx.DB
}

func NewOrderReadRepository(db *sqlx.DB) *OrderReadRepository {
	return &OrderReadRepository{db: db}
}

func (r *OrderReadRepository) GetByID(ctx context.Context, orderID uuid.UUID) (*models.OrderDB, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_id = $1
	`

	var order models.OrderDB
	err := r.db.GetContext(ctx, &order, query, orderID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{orderID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// ListByUser returns a user's orders, newest first.
func (r *OrderReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.OrderDB, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var orders []models.OrderDB
	err := r.db.SelectContext(ctx, &orders, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(orders),
		"error", err,
	)

	return orders, err
}

// ListAll returns every order, newest first. Admin back office only.
func (r *OrderReadRepository) ListAll(ctx context.Context) ([]models.OrderDB, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
	`

	var orders []models.OrderDB
	err := r.db.SelectContext(ctx, &orders, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(orders),
		"error", err,
	)

	return orders, err
}

// CountCompletedByUser feeds the loyalty discount policy.
func (r *OrderReadRepository) CountCompletedByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM orders
		WHERE user_id = $1 AND status = 'COMPLETED'
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

type OrderWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOrderWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OrderWriteRepository {
	return &OrderWriteRepository{db: db, txGetter: txGetter}
}

func (r *OrderWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts the order with its quote snapshot. Runs inside the request's
// transaction when one is present, so the snapshot and the rate read it came
// from commit together.
func (r *OrderWriteRepository) Save(ctx context.Context, order models.OrderDB) (*models.OrderDB, error) {
	query := `
		INSERT INTO orders (
			order_id, user_id, platform, side, destination,
			amount_usd, final_usd, final_usdt,
			paypal_email, recipient, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + orderColumns

	args := []any{
		order.OrderID, order.UserID, order.Platform, order.Side, order.Destination,
		order.AmountUsd, order.FinalUsd, order.FinalUsdt,
		order.PaypalEmail, order.Recipient, order.Status,
	}

	var saved models.OrderDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{order.OrderID, order.UserID, order.Platform},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// SetStatus moves the order to newStatus, last writer wins. Returns the
// updated row, or nil when the order does not exist.
func (r *OrderWriteRepository) SetStatus(ctx context.Context, orderID uuid.UUID, newStatus string) (*models.OrderDB, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE order_id = $1
		RETURNING ` + orderColumns

	var updated models.OrderDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, orderID, newStatus)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{orderID, newStatus},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// SetRealProfit records the admin-entered realized profit for an order.
func (r *OrderWriteRepository) SetRealProfit(ctx context.Context, orderID uuid.UUID, realProfit decimal.Decimal) error {
	query := `
		UPDATE orders
		SET real_profit = $2, updated_at = NOW()
		WHERE order_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, orderID, realProfit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{orderID},
		"error", err,
	)

	return err
}
