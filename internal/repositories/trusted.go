package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
)

const intakeColumns = `
	intake_id, user_id, max_per_tx_usd, max_monthly_usd, hold_hours, status, created_at, updated_at
`

type TrustedRepository struct {
	db *sqlx.DB
}

func NewTrustedRepository(db *sqlx.DB) *TrustedRepository {
	return &TrustedRepository{db: db}
}

// UpsertIntake writes the user's trusted-flow application back to PENDING,
// mirroring the verification upsert semantics.
func (r *TrustedRepository) UpsertIntake(ctx context.Context, intake models.TrustedIntakeDB) (*models.TrustedIntakeDB, error) {
	query := `
		INSERT INTO trusted_intakes (intake_id, user_id, max_per_tx_usd, max_monthly_usd, hold_hours, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'PENDING', NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET max_per_tx_usd = EXCLUDED.max_per_tx_usd,
		    max_monthly_usd = EXCLUDED.max_monthly_usd,
		    hold_hours = EXCLUDED.hold_hours,
		    status = 'PENDING',
		    updated_at = NOW()
		RETURNING ` + intakeColumns

	var saved models.TrustedIntakeDB
	err := r.db.GetContext(ctx, &saved, query,
		uuid.New(), intake.UserID, intake.MaxPerTxUsd, intake.MaxMonthlyUsd, intake.HoldHours)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intake.UserID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *TrustedRepository) GetIntakeByID(ctx context.Context, intakeID uuid.UUID) (*models.TrustedIntakeDB, error) {
	query := `
		SELECT ` + intakeColumns + `
		FROM trusted_intakes
		WHERE intake_id = $1
	`

	var intake models.TrustedIntakeDB
	err := r.db.GetContext(ctx, &intake, query, intakeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intakeID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &intake, nil
}

// SetIntakeStatus records the admin review decision.
func (r *TrustedRepository) SetIntakeStatus(ctx context.Context, intakeID uuid.UUID, status string) (*models.TrustedIntakeDB, error) {
	query := `
		UPDATE trusted_intakes
		SET status = $2, updated_at = NOW()
		WHERE intake_id = $1
		RETURNING ` + intakeColumns

	var intake models.TrustedIntakeDB
	err := r.db.GetContext(ctx, &intake, query, intakeID, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{intakeID, status},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &intake, nil
}

// UpsertProfile materializes (or updates) the trusted profile for a user
// from an approved intake.
func (r *TrustedRepository) UpsertProfile(ctx context.Context, profile models.TrustedProfileDB) error {
	query := `
		INSERT INTO trusted_profiles (profile_id, user_id, max_per_tx_usd, max_monthly_usd, hold_hours, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET max_per_tx_usd = EXCLUDED.max_per_tx_usd,
		    max_monthly_usd = EXCLUDED.max_monthly_usd,
		    hold_hours = EXCLUDED.hold_hours,
		    enabled = EXCLUDED.enabled,
		    updated_at = NOW()
	`
	args := []any{
		uuid.New(), profile.UserID,
		profile.MaxPerTxUsd, profile.MaxMonthlyUsd, profile.HoldHours, profile.Enabled,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profile.UserID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

func (r *TrustedRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.TrustedProfileDB, error) {
	const query = `
		SELECT profile_id, user_id, max_per_tx_usd, max_monthly_usd, hold_hours, enabled, created_at, updated_at
		FROM trusted_profiles
		WHERE user_id = $1
	`

	var profile models.TrustedProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
