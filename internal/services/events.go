package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/cambiove/exchange-api/internal/logger"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// lifecycleEvent is the durable event-stream record for order and
// verification lifecycle changes consumed by the back office.
type lifecycleEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// publishEvent writes a lifecycle event to Kafka, best-effort: a nil writer
// or a write failure is logged and never fails the triggering operation.
func publishEvent(ctx context.Context, writer KafkaWriter, key, eventType string, payload any) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event", eventType)
		return
	}

	data, err := json.Marshal(lifecycleEvent{Type: eventType, Payload: payload})
	if err != nil {
		logger.Log.Errorw("failed to marshal lifecycle event", "event", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish lifecycle event", "event", eventType, "key", key, "error", err)
	} else {
		logger.Log.Infow("lifecycle event published", "event", eventType, "key", key)
	}
}
