package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/realtime"
)

// TrustedStore is the persistence surface of the trusted third-party flow.
type TrustedStore interface {
	UpsertIntake(ctx context.Context, intake models.TrustedIntakeDB) (*models.TrustedIntakeDB, error)
	GetIntakeByID(ctx context.Context, intakeID uuid.UUID) (*models.TrustedIntakeDB, error)
	SetIntakeStatus(ctx context.Context, intakeID uuid.UUID, status string) (*models.TrustedIntakeDB, error)
	UpsertProfile(ctx context.Context, profile models.TrustedProfileDB) error
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.TrustedProfileDB, error)
}

// TrustedApplication is the requested limits of a trusted-flow intake.
type TrustedApplication struct {
	MaxPerTxUsd   decimal.Decimal
	MaxMonthlyUsd decimal.Decimal
	HoldHours     int
}

// TrustedService runs the trusted third-party onboarding: intake
// applications reviewed by admin, materializing a limits profile on
// approval. Same approve/reject shape as the KYC workflow.
type TrustedService struct {
	store  TrustedStore
	users  UserGetter
	broker EventBroker
}

// NewTrustedService creates a new TrustedService.
func NewTrustedService(store TrustedStore, users UserGetter, broker EventBroker) *TrustedService {
	return &TrustedService{store: store, users: users, broker: broker}
}

// Apply upserts the user's intake application back to PENDING.
func (svc *TrustedService) Apply(ctx context.Context, userID uuid.UUID, app TrustedApplication) (*models.TrustedIntakeDB, error) {
	var missing []string
	if !app.MaxPerTxUsd.IsPositive() {
		missing = append(missing, "max_per_tx_usd")
	}
	if !app.MaxMonthlyUsd.IsPositive() {
		missing = append(missing, "max_monthly_usd")
	}
	if app.HoldHours < 0 {
		missing = append(missing, "hold_hours")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for trusted intake", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	intake, err := svc.store.UpsertIntake(ctx, models.TrustedIntakeDB{
		UserID:        userID,
		MaxPerTxUsd:   app.MaxPerTxUsd,
		MaxMonthlyUsd: app.MaxMonthlyUsd,
		HoldHours:     app.HoldHours,
	})
	if err != nil {
		logger.Log.Errorw("failed to upsert trusted intake", "userID", userID, "error", err)
		return nil, err
	}

	svc.broker.Publish(ctx, realtime.TopicAdmin, "trusted-intake-submitted", intake)

	return intake, nil
}

// Review records the admin decision. Approval materializes or updates the
// user's trusted profile with the intake's limits.
func (svc *TrustedService) Review(ctx context.Context, intakeID uuid.UUID, decision string) (*models.TrustedIntakeDB, error) {
	if decision != models.VerificationStatusApproved && decision != models.VerificationStatusRejected {
		return nil, ErrInvalidDecision
	}

	intake, err := svc.store.SetIntakeStatus(ctx, intakeID, decision)
	if err != nil {
		logger.Log.Errorw("failed to set intake status", "intakeID", intakeID, "error", err)
		return nil, err
	}
	if intake == nil {
		return nil, ErrIntakeNotFound
	}

	if decision == models.VerificationStatusApproved {
		if err := svc.store.UpsertProfile(ctx, models.TrustedProfileDB{
			UserID:        intake.UserID,
			MaxPerTxUsd:   intake.MaxPerTxUsd,
			MaxMonthlyUsd: intake.MaxMonthlyUsd,
			HoldHours:     intake.HoldHours,
			Enabled:       true,
		}); err != nil {
			logger.Log.Errorw("failed to materialize trusted profile", "userID", intake.UserID, "error", err)
			return nil, err
		}
	}

	svc.broker.Publish(ctx, realtime.UserTopic(intake.UserID), "trusted-intake-decided", intake)
	svc.broker.Publish(ctx, realtime.TopicAdmin, "trusted-intake-decided", intake)

	return intake, nil
}

// GetProfile returns the user's trusted profile, or nil when none exists.
func (svc *TrustedService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.TrustedProfileDB, error) {
	return svc.store.GetProfileByUserID(ctx, userID)
}
