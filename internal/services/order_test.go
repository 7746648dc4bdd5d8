package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/pricing"
	"github.com/cambiove/exchange-api/internal/realtime"
	"github.com/cambiove/exchange-api/internal/services"
)

type orderServiceMocks struct {
	users       *services.MockUserGetter
	orderReader *services.MockOrderReader
	orderWriter *services.MockOrderWriter
	engine      *services.MockQuoter
	config      *services.MockConfigStore
	broker      *services.MockEventBroker
	kafka       *services.MockKafkaWriter
}

func newOrderService(ctrl *gomock.Controller) (*services.OrderService, orderServiceMocks) {
	m := orderServiceMocks{
		users:       services.NewMockUserGetter(ctrl),
		orderReader: services.NewMockOrderReader(ctrl),
		orderWriter: services.NewMockOrderWriter(ctrl),
		engine:      services.NewMockQuoter(ctrl),
		config:      services.NewMockConfigStore(ctrl),
		broker:      services.NewMockEventBroker(ctrl),
		kafka:       services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewOrderService(m.users, m.orderReader, m.orderWriter, m.engine, m.config, m.broker, m.kafka)
	return svc, m
}

func TestOrderService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	ownerID := uuid.New()
	cfg := models.AppConfig{FeePercent: decimal.NewFromInt(2)}
	quote := &pricing.QuoteResult{
		Side:               models.SideBuy,
		ChannelKey:         "PAYPAL",
		AmountUsd:          decimal.NewFromInt(100),
		NetUsd:             decimal.NewFromInt(87),
		TotalInDestination: decimal.NewFromInt(87),
	}

	in := services.CreateOrderInput{
		ChannelKey:  "PAYPAL",
		Side:        models.SideBuy,
		AmountUsd:   decimal.NewFromInt(100),
		Destination: "USDT",
		PaypalEmail: "alice@example.com",
		Recipient:   models.RecipientDetails{Wallet: "TXYZ", Network: "TRC20"},
	}

	m.users.EXPECT().GetByID(gomock.Any(), ownerID).
		Return(&models.UserDB{UserID: ownerID, Username: "alice"}, nil)
	m.orderReader.EXPECT().CountCompletedByUser(gomock.Any(), ownerID).Return(4, nil)
	m.config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
	m.engine.EXPECT().
		ComputeQuote(gomock.Any(), cfg, pricing.QuoteRequest{
			Side:                models.SideBuy,
			ChannelKey:          "PAYPAL",
			AmountUsd:           decimal.NewFromInt(100),
			DestinationCurrency: "USDT",
			UserDiscountPercent: decimal.NewFromInt(18),
		}).
		Return(quote, nil)
	m.orderWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order models.OrderDB) (*models.OrderDB, error) {
			assert.Equal(t, models.OrderStatusPending, order.Status)
			assert.Equal(t, "PAYPAL", order.Platform)
			assert.True(t, order.FinalUsd.Equal(decimal.NewFromInt(87)))
			assert.True(t, order.FinalUsdt.Equal(decimal.NewFromInt(87)))
			assert.Equal(t, models.RecipientTypeUSDT, order.Recipient.Type)
			return &order, nil
		})
	m.broker.EXPECT().Publish(gomock.Any(), realtime.TopicAdmin, "order-created", gomock.Any())
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	order, err := svc.Create(context.Background(), ownerID, in)
	assert.NoError(t, err)
	assert.Equal(t, ownerID, order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestOrderService_Create_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	ownerID := uuid.New()
	m.users.EXPECT().GetByID(gomock.Any(), ownerID).Return(nil, nil)

	_, err := svc.Create(context.Background(), ownerID, services.CreateOrderInput{})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestOrderService_Create_RecipientValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)
	ownerID := uuid.New()

	tests := []struct {
		name        string
		destination string
		recipient   models.RecipientDetails
		wantFields  []string
	}{
		{
			name:        "usdt missing wallet and network",
			destination: "USDT",
			recipient:   models.RecipientDetails{},
			wantFields:  []string{"wallet", "network"},
		},
		{
			name:        "usdt unknown network",
			destination: "USDT",
			recipient:   models.RecipientDetails{Wallet: "TXYZ", Network: "DOGE"},
			wantFields:  []string{"network"},
		},
		{
			name:        "fiat missing bank",
			destination: "COP",
			recipient:   models.RecipientDetails{},
			wantFields:  []string{"bank_name"},
		},
		{
			name:        "bs requires phone and national id",
			destination: "BS",
			recipient:   models.RecipientDetails{BankName: "Banesco"},
			wantFields:  []string{"phone", "national_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.users.EXPECT().GetByID(gomock.Any(), ownerID).
				Return(&models.UserDB{UserID: ownerID}, nil)

			_, err := svc.Create(context.Background(), ownerID, services.CreateOrderInput{
				ChannelKey:  "PAYPAL",
				Side:        models.SideBuy,
				AmountUsd:   decimal.NewFromInt(100),
				Destination: tt.destination,
				Recipient:   tt.recipient,
			})

			var verr *services.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestOrderService_Create_QuoteErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	ownerID := uuid.New()
	cfg := models.AppConfig{}

	m.users.EXPECT().GetByID(gomock.Any(), ownerID).
		Return(&models.UserDB{UserID: ownerID}, nil)
	m.orderReader.EXPECT().CountCompletedByUser(gomock.Any(), ownerID).Return(20, nil)
	m.config.EXPECT().Get(gomock.Any()).Return(&cfg, nil)
	m.engine.EXPECT().
		ComputeQuote(gomock.Any(), cfg, gomock.Any()).
		Return(nil, &pricing.UnavailableError{Reason: "Mantenimiento"})

	_, err := svc.Create(context.Background(), ownerID, services.CreateOrderInput{
		ChannelKey:  "ZELLE",
		Side:        models.SideBuy,
		AmountUsd:   decimal.NewFromInt(50),
		Destination: "USDT",
		Recipient:   models.RecipientDetails{Wallet: "TXYZ", Network: "TRC20"},
	})

	var unavailable *pricing.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Mantenimiento", unavailable.Reason)
}

func TestOrderService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	orderID := uuid.New()
	userID := uuid.New()
	profit := decimal.NewFromFloat(4.5)

	tests := []struct {
		name       string
		newStatus  string
		realProfit *decimal.Decimal
		updated    *models.OrderDB
		writerErr  error
		wantErr    error
	}{
		{
			name:      "completed",
			newStatus: models.OrderStatusCompleted,
			updated:   &models.OrderDB{OrderID: orderID, UserID: userID, Status: models.OrderStatusCompleted},
		},
		{
			name:       "completed with real profit",
			newStatus:  models.OrderStatusCompleted,
			realProfit: &profit,
			updated:    &models.OrderDB{OrderID: orderID, UserID: userID, Status: models.OrderStatusCompleted},
		},
		{
			name:      "unknown status rejected",
			newStatus: "SHIPPED",
			wantErr:   services.ErrInvalidStatus,
		},
		{
			name:      "order not found",
			newStatus: models.OrderStatusCancelled,
			updated:   nil,
			wantErr:   services.ErrOrderNotFound,
		},
		{
			name:      "writer error",
			newStatus: models.OrderStatusCancelled,
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr != services.ErrInvalidStatus {
				m.orderWriter.EXPECT().
					SetStatus(gomock.Any(), orderID, tt.newStatus).
					Return(tt.updated, tt.writerErr)
			}
			if tt.updated != nil && tt.writerErr == nil {
				if tt.realProfit != nil {
					m.orderWriter.EXPECT().
						SetRealProfit(gomock.Any(), orderID, *tt.realProfit).
						Return(nil)
				}
				m.broker.EXPECT().Publish(gomock.Any(), realtime.TopicAdmin, "order-updated", gomock.Any())
				m.broker.EXPECT().Publish(gomock.Any(), realtime.OrderTopic(orderID), "order-updated", gomock.Any())
				m.broker.EXPECT().Publish(gomock.Any(), realtime.UserTopic(userID), "order-updated", gomock.Any())
				m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			updated, err := svc.SetStatus(context.Background(), orderID, tt.newStatus, tt.realProfit)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.newStatus, updated.Status)
			if tt.realProfit != nil {
				assert.True(t, updated.RealProfit.Equal(*tt.realProfit))
			}
		})
	}
}

func TestOrderService_Get_Authorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	ownerID := uuid.New()
	strangerID := uuid.New()
	orderID := uuid.New()
	order := &models.OrderDB{OrderID: orderID, UserID: ownerID}

	tests := []struct {
		name        string
		requesterID uuid.UUID
		isAdmin     bool
		order       *models.OrderDB
		wantErr     error
	}{
		{name: "owner reads own order", requesterID: ownerID, order: order},
		{name: "admin reads any order", requesterID: strangerID, isAdmin: true, order: order},
		{name: "stranger forbidden", requesterID: strangerID, order: order, wantErr: services.ErrForbidden},
		{name: "not found", requesterID: ownerID, order: nil, wantErr: services.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.orderReader.EXPECT().GetByID(gomock.Any(), orderID).Return(tt.order, nil)

			got, err := svc.Get(context.Background(), orderID, tt.requesterID, tt.isAdmin)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, orderID, got.OrderID)
			}
		})
	}
}

func TestOrderService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	userID := uuid.New()
	own := []models.OrderDB{{OrderID: uuid.New(), UserID: userID}}
	all := []models.OrderDB{{OrderID: uuid.New()}, {OrderID: uuid.New()}}

	m.orderReader.EXPECT().ListByUser(gomock.Any(), userID).Return(own, nil)
	got, err := svc.List(context.Background(), userID, false)
	assert.NoError(t, err)
	assert.Equal(t, own, got)

	m.orderReader.EXPECT().ListAll(gomock.Any()).Return(all, nil)
	got, err = svc.List(context.Background(), userID, true)
	assert.NoError(t, err)
	assert.Equal(t, all, got)
}
