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

const verificationColumns = `
	verification_id, user_id, document_url, selfie_url, status, created_at, updated_at
`

type VerificationReadRepository struct {
	db *sqlx.DB
}

func NewVerificationReadRepository(db *sqlx.DB) *VerificationReadRepository {
	return &VerificationReadRepository{db: db}
}

func (r *VerificationReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.VerificationDB, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM verifications
		WHERE user_id = $1
	`

	var verification models.VerificationDB
	err := r.db.GetContext(ctx, &verification, query, userID)

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

	return &verification, nil
}

func (r *VerificationReadRepository) GetByID(ctx context.Context, verificationID uuid.UUID) (*models.VerificationDB, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM verifications
		WHERE verification_id = $1
	`

	var verification models.VerificationDB
	err := r.db.GetContext(ctx, &verification, query, verificationID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{verificationID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &verification, nil
}

// ListPending returns verifications awaiting an admin decision, oldest first.
func (r *VerificationReadRepository) ListPending(ctx context.Context) ([]models.VerificationDB, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM verifications
		WHERE status = 'PENDING'
		ORDER BY updated_at ASC
	`

	var verifications []models.VerificationDB
	err := r.db.SelectContext(ctx, &verifications, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(verifications),
		"error", err,
	)

	return verifications, err
}

type VerificationWriteRepository struct {
	db *sqlx.DB
}

func NewVerificationWriteRepository(db *sqlx.DB) *VerificationWriteRepository {
	return &VerificationWriteRepository{db: db}
}

// UpsertPending writes the user's single verification row, resetting its
// status to PENDING. Resubmission restarts the cycle, it never creates a
// second row.
func (r *VerificationWriteRepository) UpsertPending(ctx context.Context, userID uuid.UUID, documentURL, selfieURL string) (*models.VerificationDB, error) {
	query := `
		INSERT INTO verifications (verification_id, user_id, document_url, selfie_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'PENDING', NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET document_url = EXCLUDED.document_url,
		    selfie_url = EXCLUDED.selfie_url,
		    status = 'PENDING',
		    updated_at = NOW()
		RETURNING ` + verificationColumns

	var verification models.VerificationDB
	err := r.db.GetContext(ctx, &verification, query, uuid.New(), userID, documentURL, selfieURL)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &verification, nil
}

// SetStatus records the admin decision. Returns nil when the row is gone.
func (r *VerificationWriteRepository) SetStatus(ctx context.Context, verificationID uuid.UUID, status string) (*models.VerificationDB, error) {
	query := `
		UPDATE verifications
		SET status = $2, updated_at = NOW()
		WHERE verification_id = $1
		RETURNING ` + verificationColumns

	var verification models.VerificationDB
	err := r.db.GetContext(ctx, &verification, query, verificationID, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{verificationID, status},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &verification, nil
}
