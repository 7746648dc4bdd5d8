package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// Recipient destination types.
const (
	RecipientTypeUSDT = "usdt"
	RecipientTypeFiat = "fiat"
)

// USDT networks accepted for payouts.
var USDTNetworks = map[string]struct{}{
	"TRC20": {},
	"BEP20": {},
	"ERC20": {},
}

// RecipientDetails is a tagged union describing where the payout goes:
// a USDT wallet on a recognized network, or fiat bank details.
// Stored as a discriminated JSON document.
type RecipientDetails struct {
	Type string `json:"type"` // usdt or fiat

	// USDT fields
	Wallet  string `json:"wallet,omitempty"`
	Network string `json:"network,omitempty"`

	// Fiat fields
	BankName   string `json:"bank_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	NationalID string `json:"national_id,omitempty"`
	HolderName string `json:"holder_name,omitempty"`
	AccountNo  string `json:"account_no,omitempty"`
}

// Value implements driver.Valuer for JSONB storage.
func (r RecipientDetails) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB storage.
func (r *RecipientDetails) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		return nil
	}
	return errors.New("unsupported recipient details type")
}

// OrderDB represents an exchange order. FinalUsd and FinalUsdt are the
// immutable snapshot of the quote computed at creation time; they are never
// recomputed even if rates change later.
type OrderDB struct {
	OrderID     uuid.UUID        `json:"order_id" db:"order_id"`
	UserID      uuid.UUID        `json:"user_id" db:"user_id"`
	Platform    string           `json:"platform" db:"platform"` // Payment channel key, e.g. PAYPAL
	Side        string           `json:"side" db:"side"`
	Destination string           `json:"destination" db:"destination"` // Destination currency/network label
	AmountUsd   decimal.Decimal  `json:"amount_usd" db:"amount_usd"`   // USD sent by the customer
	FinalUsd    decimal.Decimal  `json:"final_usd" db:"final_usd"`     // Net after commission
	FinalUsdt   decimal.Decimal  `json:"final_usdt" db:"final_usdt"`   // Net converted to destination
	PaypalEmail string           `json:"paypal_email" db:"paypal_email"`
	Recipient   RecipientDetails `json:"recipient" db:"recipient"`
	Status      string           `json:"status" db:"status"`
	RealProfit  *decimal.Decimal `json:"real_profit,omitempty" db:"real_profit"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}
