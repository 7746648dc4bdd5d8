package realtime

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cambiove/exchange-api/internal/logger"
)

// Shared topics. Per-order and per-user topics are derived with OrderTopic
// and UserTopic.
const (
	TopicAdmin = "admin"
	TopicRates = "rates"
)

// OrderTopic names the chat/event topic of one order.
func OrderTopic(orderID uuid.UUID) string {
	return "order-" + orderID.String()
}

// UserTopic names the private topic of one user.
func UserTopic(userID uuid.UUID) string {
	return "user-" + userID.String()
}

// Envelope is the wire format published on every topic.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Publisher is the subset of the Redis client the broker needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Broker is the realtime fan-out over Redis pub/sub. Delivery is
// at-least-once and best-effort ordered within a topic; consumers must merge
// events by id rather than assume strict append order.
type Broker struct {
	client Publisher
}

// NewBroker creates a broker over a Redis client.
func NewBroker(client Publisher) *Broker {
	return &Broker{client: client}
}

// Publish sends an event to a topic, fire-and-forget. Failures are logged
// and never propagate: the triggering operation must succeed even when the
// notification does not.
func (b *Broker) Publish(ctx context.Context, topic, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Errorw("failed to marshal realtime payload", "topic", topic, "event", event, "error", err)
		return
	}

	envelope, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		logger.Log.Errorw("failed to marshal realtime envelope", "topic", topic, "event", event, "error", err)
		return
	}

	if err := b.client.Publish(ctx, topic, envelope).Err(); err != nil {
		logger.Log.Errorw("realtime publish failed", "topic", topic, "event", event, "error", err)
		return
	}

	logger.Log.Infow("realtime event published", "topic", topic, "event", event)
}
