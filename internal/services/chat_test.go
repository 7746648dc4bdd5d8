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

type chatServiceMocks struct {
	orders *services.MockOrderGetter
	reader *services.MockMessageReader
	writer *services.MockMessageWriter
	broker *services.MockEventBroker
}

func newChatService(ctrl *gomock.Controller) (*services.ChatService, chatServiceMocks) {
	m := chatServiceMocks{
		orders: services.NewMockOrderGetter(ctrl),
		reader: services.NewMockMessageReader(ctrl),
		writer: services.NewMockMessageWriter(ctrl),
		broker: services.NewMockEventBroker(ctrl),
	}
	return services.NewChatService(m.orders, m.reader, m.writer, m.broker), m
}

func TestChatService_Post(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)

	ownerID := uuid.New()
	adminID := uuid.New()
	strangerID := uuid.New()
	orderID := uuid.New()
	order := &models.OrderDB{OrderID: orderID, UserID: ownerID}
	hello := "hello"
	image := "https://cdn.example.com/receipt.png"

	tests := []struct {
		name      string
		senderID  uuid.UUID
		isAdmin   bool
		content   *string
		imageURL  *string
		order     *models.OrderDB
		crossTo   string
		wantErr   error
		skipOrder bool
	}{
		{
			name:     "customer posts text, admin notified",
			senderID: ownerID,
			content:  &hello,
			order:    order,
			crossTo:  realtime.TopicAdmin,
		},
		{
			name:     "admin posts image, customer notified",
			senderID: adminID,
			isAdmin:  true,
			imageURL: &image,
			order:    order,
			crossTo:  realtime.UserTopic(ownerID),
		},
		{
			name:      "empty message rejected",
			senderID:  ownerID,
			order:     order,
			wantErr:   services.ErrEmptyMessage,
			skipOrder: true,
		},
		{
			name:     "stranger forbidden",
			senderID: strangerID,
			content:  &hello,
			order:    order,
			wantErr:  services.ErrForbidden,
		},
		{
			name:     "order not found",
			senderID: ownerID,
			content:  &hello,
			order:    nil,
			wantErr:  services.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.skipOrder {
				m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(tt.order, nil)
			}
			if tt.wantErr == nil {
				m.writer.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg models.MessageDB) (*models.MessageDB, error) {
						assert.Equal(t, orderID, msg.OrderID)
						assert.Equal(t, tt.senderID, msg.SenderID)
						return &msg, nil
					})
				m.broker.EXPECT().Publish(gomock.Any(), realtime.OrderTopic(orderID), "new-message", gomock.Any())
				m.broker.EXPECT().Publish(gomock.Any(), tt.crossTo, "new-message", gomock.Any())
			}

			saved, err := svc.Post(context.Background(), orderID, tt.senderID, tt.isAdmin, tt.content, tt.imageURL)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.content, saved.Content)
				assert.Equal(t, tt.imageURL, saved.ImageURL)
			}
		})
	}
}

func TestChatService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)

	ownerID := uuid.New()
	orderID := uuid.New()
	order := &models.OrderDB{OrderID: orderID, UserID: ownerID}
	log := []models.MessageDB{
		{MessageID: uuid.New(), OrderID: orderID},
		{MessageID: uuid.New(), OrderID: orderID},
	}

	m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(order, nil)
	m.reader.EXPECT().ListByOrder(gomock.Any(), orderID).Return(log, nil)

	gotOrder, gotMessages, err := svc.List(context.Background(), orderID, ownerID, false)
	assert.NoError(t, err)
	assert.Equal(t, order, gotOrder)
	assert.Equal(t, log, gotMessages)
}

func TestChatService_List_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)

	orderID := uuid.New()
	m.orders.EXPECT().GetByID(gomock.Any(), orderID).
		Return(&models.OrderDB{OrderID: orderID, UserID: uuid.New()}, nil)

	_, _, err := svc.List(context.Background(), orderID, uuid.New(), false)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestChatService_ConfirmPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newChatService(ctrl)

	ownerID := uuid.New()
	orderID := uuid.New()
	order := &models.OrderDB{OrderID: orderID, UserID: ownerID}

	t.Run("first confirmation posts sentinel", func(t *testing.T) {
		m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(order, nil)
		m.reader.EXPECT().
			ExistsWithContent(gomock.Any(), orderID, services.SentinelPaymentConfirmed).
			Return(false, nil)
		m.writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg models.MessageDB) (*models.MessageDB, error) {
				assert.Equal(t, services.SentinelPaymentConfirmed, *msg.Content)
				return &msg, nil
			})
		m.broker.EXPECT().Publish(gomock.Any(), realtime.OrderTopic(orderID), "new-message", gomock.Any())
		m.broker.EXPECT().Publish(gomock.Any(), realtime.TopicAdmin, "payment-confirmed", order)

		saved, created, err := svc.ConfirmPayment(context.Background(), orderID, ownerID)
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, services.SentinelPaymentConfirmed, *saved.Content)
	})

	t.Run("retry is a no-op", func(t *testing.T) {
		m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(order, nil)
		m.reader.EXPECT().
			ExistsWithContent(gomock.Any(), orderID, services.SentinelPaymentConfirmed).
			Return(true, nil)

		saved, created, err := svc.ConfirmPayment(context.Background(), orderID, ownerID)
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Nil(t, saved)
	})

	t.Run("dedup check error propagates", func(t *testing.T) {
		m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(order, nil)
		m.reader.EXPECT().
			ExistsWithContent(gomock.Any(), orderID, services.SentinelPaymentConfirmed).
			Return(false, errors.New("db error"))

		_, created, err := svc.ConfirmPayment(context.Background(), orderID, ownerID)
		assert.EqualError(t, err, "db error")
		assert.False(t, created)
	})
}
