package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/pricing"
	"github.com/cambiove/exchange-api/internal/realtime"
)

// UserGetter resolves users by id.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// OrderReader defines order read operations used by services.
type OrderReader interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*models.OrderDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.OrderDB, error)
	ListAll(ctx context.Context) ([]models.OrderDB, error)
	CountCompletedByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// OrderWriter defines order write operations used by services.
type OrderWriter interface {
	Save(ctx context.Context, order models.OrderDB) (*models.OrderDB, error)
	SetStatus(ctx context.Context, orderID uuid.UUID, newStatus string) (*models.OrderDB, error)
	SetRealProfit(ctx context.Context, orderID uuid.UUID, realProfit decimal.Decimal) error
}

// CreateOrderInput is a customer's confirmed order request. The price is
// recomputed server-side; nothing client-supplied about money is trusted.
type CreateOrderInput struct {
	ChannelKey  string
	Side        string
	AmountUsd   decimal.Decimal
	Destination string
	PaypalEmail string
	Recipient   models.RecipientDetails
}

var validOrderStatuses = map[string]struct{}{
	models.OrderStatusPending:   {},
	models.OrderStatusCompleted: {},
	models.OrderStatusCancelled: {},
}

// OrderService owns the order lifecycle: creation with an immutable quote
// snapshot, and admin status transitions.
type OrderService struct {
	users       UserGetter
	orderReader OrderReader
	orderWriter OrderWriter
	engine      Quoter
	config      ConfigStore
	broker      EventBroker
	kafkaWriter KafkaWriter
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	users UserGetter,
	orderReader OrderReader,
	orderWriter OrderWriter,
	engine Quoter,
	config ConfigStore,
	broker EventBroker,
	kafkaWriter KafkaWriter,
) *OrderService {
	return &OrderService{
		users:       users,
		orderReader: orderReader,
		orderWriter: orderWriter,
		engine:      engine,
		config:      config,
		broker:      broker,
		kafkaWriter: kafkaWriter,
	}
}

// validateRecipient returns the missing fields for the destination type.
func validateRecipient(destination string, recipient models.RecipientDetails) []string {
	var missing []string

	if destination == pricing.USDT {
		if recipient.Wallet == "" {
			missing = append(missing, "wallet")
		}
		if _, ok := models.USDTNetworks[recipient.Network]; !ok {
			missing = append(missing, "network")
		}
		return missing
	}

	if recipient.BankName == "" {
		missing = append(missing, "bank_name")
	}
	if destination == "BS" {
		if recipient.Phone == "" {
			missing = append(missing, "phone")
		}
		if recipient.NationalID == "" {
			missing = append(missing, "national_id")
		}
	}
	return missing
}

// Create re-derives the quote at creation time and persists finalUsd and
// finalUsdt as an immutable snapshot. Runs inside the request's transaction,
// so the snapshot and the rate read it came from commit together. The
// loyalty discount is resolved here from the owner's completed-order count.
func (svc *OrderService) Create(ctx context.Context, ownerID uuid.UUID, in CreateOrderInput) (*models.OrderDB, error) {
	user, err := svc.users.GetByID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to load order owner", "userID", ownerID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if missing := validateRecipient(in.Destination, in.Recipient); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	completed, err := svc.orderReader.CountCompletedByUser(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to count completed orders", "userID", ownerID, "error", err)
		return nil, err
	}
	discount := pricing.DiscountForSide(in.Side, completed)

	cfg, err := svc.config.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load pricing config", "error", err)
		return nil, err
	}

	quote, err := svc.engine.ComputeQuote(ctx, *cfg, pricing.QuoteRequest{
		Side:                in.Side,
		ChannelKey:          in.ChannelKey,
		AmountUsd:           in.AmountUsd,
		DestinationCurrency: in.Destination,
		UserDiscountPercent: discount,
	})
	if err != nil {
		return nil, err
	}

	recipient := in.Recipient
	if in.Destination == pricing.USDT {
		recipient.Type = models.RecipientTypeUSDT
	} else {
		recipient.Type = models.RecipientTypeFiat
	}

	order := models.OrderDB{
		OrderID:     uuid.New(),
		UserID:      ownerID,
		Platform:    quote.ChannelKey,
		Side:        quote.Side,
		Destination: in.Destination,
		AmountUsd:   quote.AmountUsd,
		FinalUsd:    quote.NetUsd,
		FinalUsdt:   quote.TotalInDestination,
		PaypalEmail: in.PaypalEmail,
		Recipient:   recipient,
		Status:      models.OrderStatusPending,
	}

	saved, err := svc.orderWriter.Save(ctx, order)
	if err != nil {
		logger.Log.Errorw("failed to save order", "orderID", order.OrderID, "error", err)
		return nil, err
	}

	svc.broker.Publish(ctx, realtime.TopicAdmin, "order-created", saved)
	publishEvent(ctx, svc.kafkaWriter, saved.OrderID.String(), "order-created", saved)

	return saved, nil
}

// SetStatus moves an order to newStatus. Admin-only; the role check happens
// at the boundary, this method enforces no transition table beyond status
// validity — any status may move to any other, idempotent on no-op.
func (svc *OrderService) SetStatus(ctx context.Context, orderID uuid.UUID, newStatus string, realProfit *decimal.Decimal) (*models.OrderDB, error) {
	if _, ok := validOrderStatuses[newStatus]; !ok {
		return nil, ErrInvalidStatus
	}

	updated, err := svc.orderWriter.SetStatus(ctx, orderID, newStatus)
	if err != nil {
		logger.Log.Errorw("failed to set order status", "orderID", orderID, "status", newStatus, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	if realProfit != nil {
		if err := svc.orderWriter.SetRealProfit(ctx, orderID, *realProfit); err != nil {
			logger.Log.Errorw("failed to set real profit", "orderID", orderID, "error", err)
		} else {
			updated.RealProfit = realProfit
		}
	}

	svc.broker.Publish(ctx, realtime.TopicAdmin, "order-updated", updated)
	svc.broker.Publish(ctx, realtime.OrderTopic(orderID), "order-updated", updated)
	svc.broker.Publish(ctx, realtime.UserTopic(updated.UserID), "order-updated", updated)
	publishEvent(ctx, svc.kafkaWriter, orderID.String(), "order-updated", updated)

	return updated, nil
}

// Get returns one order. Customers only see their own; admin sees all.
func (svc *OrderService) Get(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*models.OrderDB, error) {
	order, err := svc.orderReader.GetByID(ctx, orderID)
	if err != nil {
		logger.Log.Errorw("failed to get order", "orderID", orderID, "error", err)
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, ErrForbidden
	}
	return order, nil
}

// List returns the requester's orders, or every order for admin.
func (svc *OrderService) List(ctx context.Context, requesterID uuid.UUID, isAdmin bool) ([]models.OrderDB, error) {
	if isAdmin {
		return svc.orderReader.ListAll(ctx)
	}
	return svc.orderReader.ListByUser(ctx, requesterID)
}
