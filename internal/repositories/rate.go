package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, so handlers can answer 409 instead of 500.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type RateReadRepository struct {
	db *sqlx.DB
}

func NewRateReadRepository(db *sqlx.DB) *RateReadRepository {
	return &RateReadRepository{db: db}
}

// GetRate returns the stored rate for a currency, or nil when no row exists.
func (r *RateReadRepository) GetRate(ctx context.Context, currency string) (*models.ExchangeRate, error) {
	const query = `
		SELECT currency, rate, updated_at
		FROM exchange_rates
		WHERE currency = $1
	`

	var rate models.ExchangeRate
	err := r.db.GetContext(ctx, &rate, query, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{currency},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rate, nil
}

func (r *RateReadRepository) List(ctx context.Context) ([]models.ExchangeRate, error) {
	const query = `
		SELECT currency, rate, updated_at
		FROM exchange_rates
		ORDER BY currency
	`

	var rates []models.ExchangeRate
	err := r.db.SelectContext(ctx, &rates, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rates),
		"error", err,
	)

	return rates, err
}

type RateWriteRepository struct {
	db *sqlx.DB
}

func NewRateWriteRepository(db *sqlx.DB) *RateWriteRepository {
	return &RateWriteRepository{db: db}
}

// Upsert overwrites the rate for a currency in place; no history is kept.
func (r *RateWriteRepository) Upsert(ctx context.Context, rate models.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (currency, rate, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (currency) DO UPDATE
		SET rate = EXCLUDED.rate, updated_at = NOW()
	`
	args := []any{rate.Currency, rate.Rate}

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
