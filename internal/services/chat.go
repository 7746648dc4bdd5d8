package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/realtime"
)

// SentinelPaymentConfirmed is the fixed system message appended when the
// customer indicates payment was made. Posted at most once per order.
const SentinelPaymentConfirmed = "customer indicated payment was made"

// MessageReader defines chat-log read operations used by services.
type MessageReader interface {
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]models.MessageDB, error)
	ExistsWithContent(ctx context.Context, orderID uuid.UUID, content string) (bool, error)
}

// MessageWriter appends to the chat log.
type MessageWriter interface {
	Save(ctx context.Context, message models.MessageDB) (*models.MessageDB, error)
}

// OrderGetter resolves orders for authorization checks.
type OrderGetter interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*models.OrderDB, error)
}

// ChatService is the per-order message log. Only the order's owner and the
// admin identity may read or post; delivery to connected clients is
// at-least-once via the fan-out, with dedup on the consumer side.
type ChatService struct {
	orders        OrderGetter
	messageReader MessageReader
	messageWriter MessageWriter
	broker        EventBroker
}

// NewChatService creates a new ChatService.
func NewChatService(
	orders OrderGetter,
	messageReader MessageReader,
	messageWriter MessageWriter,
	broker EventBroker,
) *ChatService {
	return &ChatService{
		orders:        orders,
		messageReader: messageReader,
		messageWriter: messageWriter,
		broker:        broker,
	}
}

// authorize loads the order and checks the requester may touch its chat.
func (svc *ChatService) authorize(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*models.OrderDB, error) {
	order, err := svc.orders.GetByID(ctx, orderID)
	if err != nil {
		logger.Log.Errorw("failed to load order for chat", "orderID", orderID, "error", err)
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

// Post appends a message and publishes it on the order's topic. At least one
// of content/imageURL must be set.
func (svc *ChatService) Post(ctx context.Context, orderID, senderID uuid.UUID, isAdmin bool, content, imageURL *string) (*models.MessageDB, error) {
	empty := func(s *string) bool { return s == nil || *s == "" }
	if empty(content) && empty(imageURL) {
		return nil, ErrEmptyMessage
	}

	order, err := svc.authorize(ctx, orderID, senderID, isAdmin)
	if err != nil {
		return nil, err
	}

	saved, err := svc.messageWriter.Save(ctx, models.MessageDB{
		MessageID: uuid.New(),
		OrderID:   orderID,
		SenderID:  senderID,
		Content:   content,
		ImageURL:  imageURL,
	})
	if err != nil {
		logger.Log.Errorw("failed to save message", "orderID", orderID, "error", err)
		return nil, err
	}

	svc.broker.Publish(ctx, realtime.OrderTopic(orderID), "new-message", saved)
	if isAdmin {
		svc.broker.Publish(ctx, realtime.UserTopic(order.UserID), "new-message", saved)
	} else {
		svc.broker.Publish(ctx, realtime.TopicAdmin, "new-message", saved)
	}

	return saved, nil
}

// List returns the order and its chat log in creation order. Authorization
// is identical to Post.
func (svc *ChatService) List(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*models.OrderDB, []models.MessageDB, error) {
	order, err := svc.authorize(ctx, orderID, requesterID, isAdmin)
	if err != nil {
		return nil, nil, err
	}

	messages, err := svc.messageReader.ListByOrder(ctx, orderID)
	if err != nil {
		logger.Log.Errorw("failed to list messages", "orderID", orderID, "error", err)
		return nil, nil, err
	}

	return order, messages, nil
}

// ConfirmPayment posts the payment-confirmed sentinel message for the owner.
// Checks for an existing identical sentinel first, so retries never produce
// a duplicate. Returns created=false when the sentinel already exists.
func (svc *ChatService) ConfirmPayment(ctx context.Context, orderID, senderID uuid.UUID) (*models.MessageDB, bool, error) {
	order, err := svc.authorize(ctx, orderID, senderID, false)
	if err != nil {
		return nil, false, err
	}

	exists, err := svc.messageReader.ExistsWithContent(ctx, orderID, SentinelPaymentConfirmed)
	if err != nil {
		logger.Log.Errorw("failed to check sentinel message", "orderID", orderID, "error", err)
		return nil, false, err
	}
	if exists {
		return nil, false, nil
	}

	content := SentinelPaymentConfirmed
	saved, err := svc.messageWriter.Save(ctx, models.MessageDB{
		MessageID: uuid.New(),
		OrderID:   orderID,
		SenderID:  senderID,
		Content:   &content,
	})
	if err != nil {
		logger.Log.Errorw("failed to save sentinel message", "orderID", orderID, "error", err)
		return nil, false, err
	}

	svc.broker.Publish(ctx, realtime.OrderTopic(orderID), "new-message", saved)
	svc.broker.Publish(ctx, realtime.TopicAdmin, "payment-confirmed", order)

	return saved, true, nil
}
