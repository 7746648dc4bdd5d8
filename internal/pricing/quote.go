package pricing

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/cambiove/exchange-api/internal/models"
)

// Error variables
var (
	ErrInvalidSide         = errors.New("side must be BUY or SELL")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrChannelRequired     = errors.New("channel key is required")
	ErrDestinationRequired = errors.New("destination currency is required")
	ErrChannelNotFound     = errors.New("payment channel not found")
	ErrRateNotFound        = errors.New("no exchange rate for destination currency")
	ErrInvalidRate         = errors.New("stored exchange rate is not positive")
)

// UnavailableError is returned when a channel is not offerable on the
// requested side. Reason carries the admin-configured status text verbatim
// so the UI can show it.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string { return e.Reason }

// USDT is the destination that skips fiat conversion (rate 1).
const USDT = "USDT"

const fallbackUnavailableReason = "channel temporarily unavailable"

// ChannelSource resolves payment channels by key. A missing or archived
// channel is reported as (nil, nil).
type ChannelSource interface {
	GetByKey(ctx context.Context, key string) (*models.PaymentChannel, error)
}

// RateSource resolves stored exchange rates by currency code.
type RateSource interface {
	GetRate(ctx context.Context, currency string) (*models.ExchangeRate, error)
}

// QuoteRequest is the input of a quote computation. UserDiscountPercent is
// the loyalty discount already resolved by the caller; counting a user's
// completed orders is not the engine's responsibility.
type QuoteRequest struct {
	Side                string
	ChannelKey          string
	AmountUsd           decimal.Decimal
	DestinationCurrency string
	UserDiscountPercent decimal.Decimal
	IncludeBaseFee      bool
}

// QuoteResult is the canonical pricing breakdown. The same shape is used for
// display, for order persistence, and for reconciliation.
type QuoteResult struct {
	Side                string          `json:"side"`
	ChannelKey          string          `json:"channelKey"`
	ChannelLabel        string          `json:"channelLabel"`
	DestinationCurrency string          `json:"destinationCurrency"`
	AmountUsd           decimal.Decimal `json:"amountUsd"`
	CommissionPercent   decimal.Decimal `json:"commissionPercent"`
	BaseFeePercent      decimal.Decimal `json:"baseFeePercent"`
	UserDiscountPercent decimal.Decimal `json:"userDiscountPercent"`
	TotalPct            decimal.Decimal `json:"totalPct"`
	NetUsd              decimal.Decimal `json:"netUsd"`
	ExchangeRateUsed    decimal.Decimal `json:"exchangeRateUsed"`
	TotalInDestination  decimal.Decimal `json:"totalInDestination"`
}

// Engine computes deterministic price breakdowns from the channel registry
// and the rate store. It performs no writes and keeps no state, so identical
// inputs against identical stored rates yield identical output.
type Engine struct {
	channels ChannelSource
	rates    RateSource
}

// NewEngine creates a new quote engine.
func NewEngine(channels ChannelSource, rates RateSource) *Engine {
	return &Engine{channels: channels, rates: rates}
}

var hundred = decimal.NewFromInt(100)

// ComputeQuote validates the request, resolves the channel and exchange rate,
// and returns the full price breakdown. cfg is the pricing configuration
// loaded by the caller for this request; its FeePercent is only applied when
// the request asks for the base fee.
func (e *Engine) ComputeQuote(ctx context.Context, cfg models.AppConfig, req QuoteRequest) (*QuoteResult, error) {
	if req.Side != models.SideBuy && req.Side != models.SideSell {
		return nil, ErrInvalidSide
	}
	if req.ChannelKey == "" {
		return nil, ErrChannelRequired
	}
	if !req.AmountUsd.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if req.DestinationCurrency == "" {
		return nil, ErrDestinationRequired
	}

	channel, err := e.channels.GetByKey(ctx, req.ChannelKey)
	if err != nil {
		return nil, err
	}
	if channel == nil || channel.ArchivedAt != nil {
		return nil, ErrChannelNotFound
	}

	if !channel.OfferableFor(req.Side) {
		reason := channel.StatusTextFor(req.Side)
		if reason == "" {
			reason = fallbackUnavailableReason
		}
		return nil, &UnavailableError{Reason: reason}
	}

	channelPct := channel.CommissionFor(req.Side)

	baseFeePct := decimal.Zero
	if req.IncludeBaseFee {
		baseFeePct = cfg.FeePercent
	}

	// Discount can never drive the total percentage negative.
	totalPct := baseFeePct.Add(channelPct).Sub(req.UserDiscountPercent)
	if totalPct.IsNegative() {
		totalPct = decimal.Zero
	}

	rateUsed := decimal.NewFromInt(1)
	if req.DestinationCurrency != USDT {
		stored, err := e.rates.GetRate(ctx, req.DestinationCurrency)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, ErrRateNotFound
		}
		if !stored.Rate.IsPositive() {
			return nil, ErrInvalidRate
		}
		rateUsed = stored.Rate
	}

	netUsd := req.AmountUsd.Mul(decimal.NewFromInt(1).Sub(totalPct.Div(hundred)))
	totalInDestination := netUsd.Mul(rateUsed)

	return &QuoteResult{
		Side:                req.Side,
		ChannelKey:          channel.Key,
		ChannelLabel:        channel.Label,
		DestinationCurrency: req.DestinationCurrency,
		AmountUsd:           req.AmountUsd,
		CommissionPercent:   channelPct,
		BaseFeePercent:      baseFeePct,
		UserDiscountPercent: req.UserDiscountPercent,
		TotalPct:            totalPct,
		NetUsd:              netUsd,
		ExchangeRateUsed:    rateUsed,
		TotalInDestination:  totalInDestination,
	}, nil
}
