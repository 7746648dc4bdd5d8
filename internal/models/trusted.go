package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrustedIntakeDB is an application for the trusted third-party onboarding
// flow. Reviewed by admin with the same approve/reject pattern as KYC.
type TrustedIntakeDB struct {
	IntakeID     uuid.UUID       `json:"intake_id" db:"intake_id"`
	UserID       uuid.UUID       `json:"user_id" db:"user_id"`
	MaxPerTxUsd  decimal.Decimal `json:"max_per_tx_usd" db:"max_per_tx_usd"`
	MaxMonthlyUsd decimal.Decimal `json:"max_monthly_usd" db:"max_monthly_usd"`
	HoldHours    int             `json:"hold_hours" db:"hold_hours"`
	Status       string          `json:"status" db:"status"` // PENDING, APPROVED, REJECTED
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// TrustedProfileDB is the per-user risk/limits record materialized when an
// intake application is approved.
type TrustedProfileDB struct {
	ProfileID     uuid.UUID       `json:"profile_id" db:"profile_id"`
	UserID        uuid.UUID       `json:"user_id" db:"user_id"` // Unique: one profile per user
	MaxPerTxUsd   decimal.Decimal `json:"max_per_tx_usd" db:"max_per_tx_usd"`
	MaxMonthlyUsd decimal.Decimal `json:"max_monthly_usd" db:"max_monthly_usd"`
	HoldHours     int             `json:"hold_hours" db:"hold_hours"`
	Enabled       bool            `json:"enabled" db:"enabled"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
