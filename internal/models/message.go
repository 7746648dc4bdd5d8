package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageDB is one entry of the append-only chat log attached to an order.
// At least one of Content/ImageURL is non-null.
type MessageDB struct {
	MessageID uuid.UUID `json:"message_id" db:"message_id"`
	OrderID   uuid.UUID `json:"order_id" db:"order_id"`
	SenderID  uuid.UUID `json:"sender_id" db:"sender_id"`
	Content   *string   `json:"content,omitempty" db:"content"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
