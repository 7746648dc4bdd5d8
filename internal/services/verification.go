package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/realtime"
)

// VerificationReader reads KYC records.
type VerificationReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.VerificationDB, error)
	GetByID(ctx context.Context, verificationID uuid.UUID) (*models.VerificationDB, error)
	ListPending(ctx context.Context) ([]models.VerificationDB, error)
}

// VerificationWriter mutates KYC records.
type VerificationWriter interface {
	UpsertPending(ctx context.Context, userID uuid.UUID, documentURL, selfieURL string) (*models.VerificationDB, error)
	SetStatus(ctx context.Context, verificationID uuid.UUID, status string) (*models.VerificationDB, error)
}

// Mailer sends notification emails, best-effort.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Pusher sends push notifications to device tokens, best-effort.
type Pusher interface {
	Push(ctx context.Context, deviceToken, title, body string) error
}

// VerificationService runs the KYC state machine: PENDING on submit,
// APPROVED or REJECTED on admin decision, back to PENDING on resubmission.
// Notification side effects never fail the mutation.
type VerificationService struct {
	reader      VerificationReader
	writer      VerificationWriter
	users       UserGetter
	broker      EventBroker
	mailer      Mailer
	pusher      Pusher
	kafkaWriter KafkaWriter

	adminEmail       string
	adminDeviceToken string
}

// NewVerificationService creates a new VerificationService. mailer and
// pusher may be nil when the corresponding collaborator is not configured.
func NewVerificationService(
	reader VerificationReader,
	writer VerificationWriter,
	users UserGetter,
	broker EventBroker,
	mailer Mailer,
	pusher Pusher,
	kafkaWriter KafkaWriter,
	adminEmail string,
	adminDeviceToken string,
) *VerificationService {
	return &VerificationService{
		reader:           reader,
		writer:           writer,
		users:            users,
		broker:           broker,
		mailer:           mailer,
		pusher:           pusher,
		kafkaWriter:      kafkaWriter,
		adminEmail:       adminEmail,
		adminDeviceToken: adminDeviceToken,
	}
}

// Submit upserts the user's verification to PENDING regardless of prior
// state. One row per user, always.
func (svc *VerificationService) Submit(ctx context.Context, userID uuid.UUID, documentURL, selfieURL string) (*models.VerificationDB, error) {
	var missing []string
	if documentURL == "" {
		missing = append(missing, "document_url")
	}
	if selfieURL == "" {
		missing = append(missing, "selfie_url")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for verification", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	verification, err := svc.writer.UpsertPending(ctx, userID, documentURL, selfieURL)
	if err != nil {
		logger.Log.Errorw("failed to upsert verification", "userID", userID, "error", err)
		return nil, err
	}

	svc.broker.Publish(ctx, realtime.UserTopic(userID), "verification-updated", verification)
	svc.broker.Publish(ctx, realtime.TopicAdmin, "verification-submitted", verification)

	if svc.mailer != nil && svc.adminEmail != "" {
		if err := svc.mailer.Send(ctx, svc.adminEmail, "New verification submitted",
			"User "+user.Username+" submitted identity documents for review."); err != nil {
			logger.Log.Errorw("failed to email admin about verification", "error", err)
		}
	}
	if svc.pusher != nil && svc.adminDeviceToken != "" {
		if err := svc.pusher.Push(ctx, svc.adminDeviceToken, "Verification pending",
			user.Username+" is waiting for review"); err != nil {
			logger.Log.Errorw("failed to push admin about verification", "error", err)
		}
	}

	return verification, nil
}

// Decide records the admin decision and notifies the customer. decision
// must be APPROVED or REJECTED.
func (svc *VerificationService) Decide(ctx context.Context, verificationID uuid.UUID, decision string) (*models.VerificationDB, error) {
	if decision != models.VerificationStatusApproved && decision != models.VerificationStatusRejected {
		return nil, ErrInvalidDecision
	}

	verification, err := svc.writer.SetStatus(ctx, verificationID, decision)
	if err != nil {
		logger.Log.Errorw("failed to set verification status", "verificationID", verificationID, "error", err)
		return nil, err
	}
	if verification == nil {
		return nil, ErrVerificationNotFound
	}

	svc.broker.Publish(ctx, realtime.UserTopic(verification.UserID), "verification-updated", verification)
	svc.broker.Publish(ctx, realtime.TopicAdmin, "verification-decided", verification)
	publishEvent(ctx, svc.kafkaWriter, verification.UserID.String(), "verification-decided", verification)

	user, err := svc.users.GetByID(ctx, verification.UserID)
	if err != nil || user == nil {
		logger.Log.Errorw("failed to load user for decision notification", "userID", verification.UserID, "error", err)
		return verification, nil
	}

	if svc.mailer != nil {
		subject, body := decisionEmail(decision)
		if err := svc.mailer.Send(ctx, user.Email, subject, body); err != nil {
			logger.Log.Errorw("failed to email verification decision", "userID", user.UserID, "error", err)
		}
	}
	if svc.pusher != nil && user.DeviceToken != nil && *user.DeviceToken != "" {
		subject, body := decisionEmail(decision)
		if err := svc.pusher.Push(ctx, *user.DeviceToken, subject, body); err != nil {
			logger.Log.Errorw("failed to push verification decision", "userID", user.UserID, "error", err)
		}
	}

	return verification, nil
}

func decisionEmail(decision string) (subject, body string) {
	if decision == models.VerificationStatusApproved {
		return "Your identity was verified", "Your account verification was approved. You can now operate without limits."
	}
	return "Your verification was rejected", "Your account verification was rejected. Please resubmit clearer documents."
}

// GetForUser returns the user's verification, or nil when never submitted.
func (svc *VerificationService) GetForUser(ctx context.Context, userID uuid.UUID) (*models.VerificationDB, error) {
	return svc.reader.GetByUserID(ctx, userID)
}

// ListPending returns the admin review queue.
func (svc *VerificationService) ListPending(ctx context.Context) ([]models.VerificationDB, error) {
	return svc.reader.ListPending(ctx)
}
