package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order sides.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// PaymentChannel is a configured payment method (e.g. PAYPAL) with
// independent buy/sell commission and availability. Key is the stable
// external identifier; Label is display-only.
type PaymentChannel struct {
	ChannelID             int64           `json:"id" db:"channel_id"`
	Key                   string          `json:"key" db:"key"` // Unique, uppercase
	Label                 string          `json:"label" db:"label"`
	CommissionBuyPercent  decimal.Decimal `json:"commission_buy_percent" db:"commission_buy_percent"`
	CommissionSellPercent decimal.Decimal `json:"commission_sell_percent" db:"commission_sell_percent"`
	EnabledBuy            bool            `json:"enabled_buy" db:"enabled_buy"`
	EnabledSell           bool            `json:"enabled_sell" db:"enabled_sell"`
	Visible               bool            `json:"visible" db:"visible"`
	StatusTextBuy         string          `json:"status_text_buy" db:"status_text_buy"`
	StatusTextSell        string          `json:"status_text_sell" db:"status_text_sell"`
	SortOrder             int             `json:"sort_order" db:"sort_order"`
	ArchivedAt            *time.Time      `json:"archived_at,omitempty" db:"archived_at"`
	CreatedAt             time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at" db:"updated_at"`
}

// OfferableFor reports whether the channel can take new orders on the given
// side. A channel is offerable iff it is visible, not archived, and enabled
// for that side.
func (c *PaymentChannel) OfferableFor(side string) bool {
	if !c.Visible || c.ArchivedAt != nil {
		return false
	}
	if side == SideBuy {
		return c.EnabledBuy
	}
	return c.EnabledSell
}

// CommissionFor returns the side-specific commission percentage.
func (c *PaymentChannel) CommissionFor(side string) decimal.Decimal {
	if side == SideBuy {
		return c.CommissionBuyPercent
	}
	return c.CommissionSellPercent
}

// StatusTextFor returns the side-specific admin-configured status text shown
// to users when the channel is not offerable.
func (c *PaymentChannel) StatusTextFor(side string) string {
	if side == SideBuy {
		return c.StatusTextBuy
	}
	return c.StatusTextSell
}
