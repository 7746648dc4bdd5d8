package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores units of a fiat currency per 1 USD. The synthetic
// "USD" row encodes a markup multiplier instead (1 + discount%/100) and is
// only used for display math on the USDT path.
// Overwritten in place by admin updates; no history is kept.
type ExchangeRate struct {
	Currency  string          `json:"currency" db:"currency"` // Unique currency code, e.g. BS, COP
	Rate      decimal.Decimal `json:"rate" db:"rate"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// AppConfig is the global pricing configuration. Stored as a single row and
// loaded explicitly at the start of each quote/order request; a missing row
// is an error, never a silent default.
type AppConfig struct {
	FeePercent decimal.Decimal `json:"fee_percent" db:"fee_percent"` // Optional base fee summed into channel commission
	Rate       decimal.Decimal `json:"rate" db:"rate"`
	BsRate     decimal.Decimal `json:"bs_rate" db:"bs_rate"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}
