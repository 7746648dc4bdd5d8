package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/realtime"
	"github.com/cambiove/exchange-api/internal/services"
)

type verificationServiceMocks struct {
	reader *services.MockVerificationReader
	writer *services.MockVerificationWriter
	users  *services.MockUserGetter
	broker *services.MockEventBroker
	mailer *services.MockMailer
	pusher *services.MockPusher
	kafka  *services.MockKafkaWriter
}

func newVerificationService(ctrl *gomock.Controller) (*services.VerificationService, verificationServiceMocks) {
	m := verificationServiceMocks{
		reader: services.NewMockVerificationReader(ctrl),
		writer: services.NewMockVerificationWriter(ctrl),
		users:  services.NewMockUserGetter(ctrl),
		broker: services.NewMockEventBroker(ctrl),
		mailer: services.NewMockMailer(ctrl),
		pusher: services.NewMockPusher(ctrl),
		kafka:  services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewVerificationService(
		m.reader, m.writer, m.users, m.broker, m.mailer, m.pusher, m.kafka,
		"ops@example.com", "admin-device-token",
	)
	return svc, m
}

func TestVerificationService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newVerificationService(ctrl)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", Email: "alice@example.com"}
	pending := &models.VerificationDB{
		VerificationID: uuid.New(),
		UserID:         userID,
		DocumentURL:    "https://cdn.example.com/doc.png",
		SelfieURL:      "https://cdn.example.com/selfie.png",
		Status:         models.VerificationStatusPending,
	}

	m.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
	m.writer.EXPECT().
		UpsertPending(gomock.Any(), userID, pending.DocumentURL, pending.SelfieURL).
		Return(pending, nil)
	m.broker.EXPECT().Publish(gomock.Any(), realtime.UserTopic(userID), "verification-updated", pending)
	m.broker.EXPECT().Publish(gomock.Any(), realtime.TopicAdmin, "verification-submitted", pending)
	m.mailer.EXPECT().Send(gomock.Any(), "ops@example.com", gomock.Any(), gomock.Any()).Return(nil)
	m.pusher.EXPECT().Push(gomock.Any(), "admin-device-token", gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Submit(context.Background(), userID, pending.DocumentURL, pending.SelfieURL)
	assert.NoError(t, err)
	assert.Equal(t, models.VerificationStatusPending, got.Status)
}

func TestVerificationService_Submit_NotificationFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newVerificationService(ctrl)

	userID := uuid.New()
	pending := &models.VerificationDB{UserID: userID, Status: models.VerificationStatusPending}

	m.users.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)
	m.writer.EXPECT().UpsertPending(gomock.Any(), userID, "doc", "selfie").Return(pending, nil)
	m.broker.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp down"))
	m.pusher.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("push down"))

	_, err := svc.Submit(context.Background(), userID, "doc", "selfie")
	assert.NoError(t, err)
}

func TestVerificationService_Submit_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newVerificationService(ctrl)

	_, err := svc.Submit(context.Background(), uuid.New(), "", "")

	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"document_url", "selfie_url"}, verr.Fields)
}

func TestVerificationService_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newVerificationService(ctrl)

	userID := uuid.New()
	verificationID := uuid.New()
	deviceToken := "device-42"
	user := &models.UserDB{UserID: userID, Email: "alice@example.com", DeviceToken: &deviceToken}

	tests := []struct {
		name     string
		decision string
		record   *models.VerificationDB
		wantErr  error
	}{
		{
			name:     "approved",
			decision: models.VerificationStatusApproved,
			record:   &models.VerificationDB{VerificationID: verificationID, UserID: userID, Status: models.VerificationStatusApproved},
		},
		{
			name:     "rejected",
			decision: models.VerificationStatusRejected,
			record:   &models.VerificationDB{VerificationID: verificationID, UserID: userID, Status: models.VerificationStatusRejected},
		},
		{
			name:     "pending is not a decision",
			decision: models.VerificationStatusPending,
			wantErr:  services.ErrInvalidDecision,
		},
		{
			name:     "not found",
			decision: models.VerificationStatusApproved,
			record:   nil,
			wantErr:  services.ErrVerificationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr != services.ErrInvalidDecision {
				m.writer.EXPECT().
					SetStatus(gomock.Any(), verificationID, tt.decision).
					Return(tt.record, nil)
			}
			if tt.record != nil {
				m.broker.EXPECT().Publish(gomock.Any(), realtime.UserTopic(userID), "verification-updated", tt.record)
				m.broker.EXPECT().Publish(gomock.Any(), realtime.TopicAdmin, "verification-decided", tt.record)
				m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
				m.mailer.EXPECT().Send(gomock.Any(), user.Email, gomock.Any(), gomock.Any()).Return(nil)
				m.pusher.EXPECT().Push(gomock.Any(), deviceToken, gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := svc.Decide(context.Background(), verificationID, tt.decision)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.decision, got.Status)
		})
	}
}

func TestVerificationService_GetForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newVerificationService(ctrl)

	userID := uuid.New()
	m.reader.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)

	got, err := svc.GetForUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestVerificationService_ListPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newVerificationService(ctrl)

	queue := []models.VerificationDB{{VerificationID: uuid.New()}, {VerificationID: uuid.New()}}
	m.reader.EXPECT().ListPending(gomock.Any()).Return(queue, nil)

	got, err := svc.ListPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
