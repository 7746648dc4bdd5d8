package models

import (
	"time"

	"github.com/google/uuid"
)

// Verification statuses. A new submission upserts the row back to PENDING,
// restarting the cycle.
const (
	VerificationStatusPending  = "PENDING"
	VerificationStatusApproved = "APPROVED"
	VerificationStatusRejected = "REJECTED"
)

// VerificationDB holds the single KYC record per user.
type VerificationDB struct {
	VerificationID uuid.UUID `json:"verification_id" db:"verification_id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"` // Unique: one active verification per user
	DocumentURL    string    `json:"document_url" db:"document_url"`
	SelfieURL      string    `json:"selfie_url" db:"selfie_url"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
