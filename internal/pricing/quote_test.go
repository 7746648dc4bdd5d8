package pricing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/pricing"
)

type stubChannels struct {
	channels map[string]*models.PaymentChannel
}

func (s *stubChannels) GetByKey(ctx context.Context, key string) (*models.PaymentChannel, error) {
	return s.channels[key], nil
}

type stubRates struct {
	rates map[string]decimal.Decimal
}

func (s *stubRates) GetRate(ctx context.Context, currency string) (*models.ExchangeRate, error) {
	rate, ok := s.rates[currency]
	if !ok {
		return nil, nil
	}
	return &models.ExchangeRate{Currency: currency, Rate: rate}, nil
}

func paypalChannel() *models.PaymentChannel {
	return &models.PaymentChannel{
		ChannelID:             1,
		Key:                   "PAYPAL",
		Label:                 "PayPal",
		CommissionBuyPercent:  decimal.NewFromInt(13),
		CommissionSellPercent: decimal.NewFromInt(8),
		EnabledBuy:            true,
		EnabledSell:           true,
		Visible:               true,
	}
}

func newEngine(channel *models.PaymentChannel, rates map[string]decimal.Decimal) *pricing.Engine {
	channelMap := map[string]*models.PaymentChannel{}
	if channel != nil {
		channelMap[channel.Key] = channel
	}
	return pricing.NewEngine(&stubChannels{channels: channelMap}, &stubRates{rates: rates})
}

func TestComputeQuote_BuyUSDT(t *testing.T) {
	engine := newEngine(paypalChannel(), nil)

	result, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, pricing.QuoteRequest{
		Side:                models.SideBuy,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromInt(100),
		DestinationCurrency: "USDT",
	})
	assert.NoError(t, err)

	assert.True(t, result.TotalPct.Equal(decimal.NewFromInt(13)), "totalPct = %s", result.TotalPct)
	assert.True(t, result.NetUsd.Equal(decimal.NewFromInt(87)), "netUsd = %s", result.NetUsd)
	assert.True(t, result.ExchangeRateUsed.Equal(decimal.NewFromInt(1)))
	assert.True(t, result.TotalInDestination.Equal(decimal.NewFromInt(87)), "totalInDestination = %s", result.TotalInDestination)
	assert.Equal(t, "PayPal", result.ChannelLabel)
}

func TestComputeQuote_BuyFiat(t *testing.T) {
	engine := newEngine(paypalChannel(), map[string]decimal.Decimal{
		"BS": decimal.NewFromFloat(45.0),
	})

	result, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, pricing.QuoteRequest{
		Side:                models.SideBuy,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromInt(100),
		DestinationCurrency: "BS",
	})
	assert.NoError(t, err)

	assert.True(t, result.ExchangeRateUsed.Equal(decimal.NewFromFloat(45.0)))
	assert.True(t, result.TotalInDestination.Equal(decimal.NewFromInt(3915)), "totalInDestination = %s", result.TotalInDestination)
}

func TestComputeQuote_FirstOrderDiscountFloorsAtFreeCommission(t *testing.T) {
	engine := newEngine(paypalChannel(), nil)

	discount := pricing.DiscountForOrderIndex(0)
	assert.True(t, discount.Equal(decimal.NewFromInt(50)))

	result, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, pricing.QuoteRequest{
		Side:                models.SideBuy,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromInt(100),
		DestinationCurrency: "USDT",
		UserDiscountPercent: discount,
	})
	assert.NoError(t, err)

	assert.True(t, result.TotalPct.IsZero(), "totalPct = %s", result.TotalPct)
	assert.True(t, result.NetUsd.Equal(decimal.NewFromInt(100)))
}

func TestComputeQuote_DiscountNeverNegative(t *testing.T) {
	engine := newEngine(paypalChannel(), nil)

	result, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, pricing.QuoteRequest{
		Side:                models.SideBuy,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromInt(100),
		DestinationCurrency: "USDT",
		UserDiscountPercent: decimal.NewFromInt(1000),
	})
	assert.NoError(t, err)

	assert.True(t, result.TotalPct.IsZero())
	assert.False(t, result.NetUsd.GreaterThan(decimal.NewFromInt(100)))
}

func TestComputeQuote_BaseFee(t *testing.T) {
	engine := newEngine(paypalChannel(), nil)
	cfg := models.AppConfig{FeePercent: decimal.NewFromInt(2)}

	result, err := engine.ComputeQuote(context.Background(), cfg, pricing.QuoteRequest{
		Side:                models.SideBuy,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromInt(100),
		DestinationCurrency: "USDT",
		IncludeBaseFee:      true,
	})
	assert.NoError(t, err)

	assert.True(t, result.BaseFeePercent.Equal(decimal.NewFromInt(2)))
	assert.True(t, result.TotalPct.Equal(decimal.NewFromInt(15)))
	assert.True(t, result.NetUsd.Equal(decimal.NewFromInt(85)))

	// Same config without the flag keeps the base fee out.
	result, err = engine.ComputeQuote(context.Background(), cfg, pricing.QuoteRequest{
		Side:                models.SideBuy,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromInt(100),
		DestinationCurrency: "USDT",
	})
	assert.NoError(t, err)
	assert.True(t, result.TotalPct.Equal(decimal.NewFromInt(13)))
}

func TestComputeQuote_Deterministic(t *testing.T) {
	engine := newEngine(paypalChannel(), map[string]decimal.Decimal{
		"BS": decimal.NewFromFloat(36.55),
	})

	req := pricing.QuoteRequest{
		Side:                models.SideSell,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromFloat(123.45),
		DestinationCurrency: "BS",
	}

	first, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, req)
	assert.NoError(t, err)
	second, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, req)
	assert.NoError(t, err)

	assert.True(t, first.NetUsd.Equal(second.NetUsd))
	assert.True(t, first.TotalInDestination.Equal(second.TotalInDestination))
}

func TestComputeQuote_Validation(t *testing.T) {
	engine := newEngine(paypalChannel(), nil)

	tests := []struct {
		name    string
		req     pricing.QuoteRequest
		wantErr error
	}{
		{
			name:    "bad side",
			req:     pricing.QuoteRequest{Side: "HOLD", ChannelKey: "PAYPAL", AmountUsd: decimal.NewFromInt(10), DestinationCurrency: "USDT"},
			wantErr: pricing.ErrInvalidSide,
		},
		{
			name:    "missing channel key",
			req:     pricing.QuoteRequest{Side: models.SideBuy, AmountUsd: decimal.NewFromInt(10), DestinationCurrency: "USDT"},
			wantErr: pricing.ErrChannelRequired,
		},
		{
			name:    "zero amount",
			req:     pricing.QuoteRequest{Side: models.SideBuy, ChannelKey: "PAYPAL", DestinationCurrency: "USDT"},
			wantErr: pricing.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     pricing.QuoteRequest{Side: models.SideBuy, ChannelKey: "PAYPAL", AmountUsd: decimal.NewFromInt(-5), DestinationCurrency: "USDT"},
			wantErr: pricing.ErrInvalidAmount,
		},
		{
			name:    "missing destination",
			req:     pricing.QuoteRequest{Side: models.SideBuy, ChannelKey: "PAYPAL", AmountUsd: decimal.NewFromInt(10)},
			wantErr: pricing.ErrDestinationRequired,
		},
		{
			name:    "unknown channel",
			req:     pricing.QuoteRequest{Side: models.SideBuy, ChannelKey: "ZELLE", AmountUsd: decimal.NewFromInt(10), DestinationCurrency: "USDT"},
			wantErr: pricing.ErrChannelNotFound,
		},
		{
			name:    "unknown destination rate",
			req:     pricing.QuoteRequest{Side: models.SideBuy, ChannelKey: "PAYPAL", AmountUsd: decimal.NewFromInt(10), DestinationCurrency: "XYZ"},
			wantErr: pricing.ErrRateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComputeQuote_UnavailableUsesStatusText(t *testing.T) {
	channel := paypalChannel()
	channel.EnabledSell = false
	channel.StatusTextSell = "Mantenimiento"
	engine := newEngine(channel, nil)

	_, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, pricing.QuoteRequest{
		Side:                models.SideSell,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromInt(10),
		DestinationCurrency: "USDT",
	})

	var unavailable *pricing.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Mantenimiento", unavailable.Reason)
}

func TestComputeQuote_UnavailableFallbackText(t *testing.T) {
	channel := paypalChannel()
	channel.Visible = false
	engine := newEngine(channel, nil)

	_, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, pricing.QuoteRequest{
		Side:                models.SideBuy,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromInt(10),
		DestinationCurrency: "USDT",
	})

	var unavailable *pricing.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
	assert.NotEmpty(t, unavailable.Reason)
}

func TestComputeQuote_ArchivedChannelIsNotFound(t *testing.T) {
	channel := paypalChannel()
	now := time.Now()
	channel.ArchivedAt = &now
	engine := newEngine(channel, nil)

	_, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, pricing.QuoteRequest{
		Side:                models.SideBuy,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromInt(10),
		DestinationCurrency: "USDT",
	})
	assert.ErrorIs(t, err, pricing.ErrChannelNotFound)
}

func TestComputeQuote_InvalidStoredRate(t *testing.T) {
	engine := newEngine(paypalChannel(), map[string]decimal.Decimal{
		"BS": decimal.Zero,
	})

	_, err := engine.ComputeQuote(context.Background(), models.AppConfig{}, pricing.QuoteRequest{
		Side:                models.SideBuy,
		ChannelKey:          "PAYPAL",
		AmountUsd:           decimal.NewFromInt(10),
		DestinationCurrency: "BS",
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidRate)
}
