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

// ErrConfigMissing is returned when the single pricing configuration row is
// absent. Absence is an error condition, never a silent default.
var ErrConfigMissing = errors.New("app config row is missing")

type ConfigRepository struct {
	db *sqlx.DB
}

func NewConfigRepository(db *sqlx.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// Get loads the single pricing configuration row. Callers read it once per
// request and pass the struct into the quote engine.
func (r *ConfigRepository) Get(ctx context.Context) (*models.AppConfig, error) {
	const query = `
		SELECT fee_percent, rate, bs_rate, updated_at
		FROM app_config
		LIMIT 1
	`

	var cfg models.AppConfig
	err := r.db.GetContext(ctx, &cfg, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigMissing
	}
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Update overwrites the configuration row.
func (r *ConfigRepository) Update(ctx context.Context, cfg models.AppConfig) error {
	query := `
		UPDATE app_config
		SET fee_percent = $1, rate = $2, bs_rate = $3, updated_at = NOW()
	`
	args := []any{cfg.FeePercent, cfg.Rate, cfg.BsRate}

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
		return ErrConfigMissing
	}
	return err
}
