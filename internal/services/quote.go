package services

import (
	"context"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/pricing"
)

// Quoter computes price breakdowns.
type Quoter interface {
	ComputeQuote(ctx context.Context, cfg models.AppConfig, req pricing.QuoteRequest) (*pricing.QuoteResult, error)
}

// QuoteService loads the pricing configuration and delegates to the quote
// engine. The engine itself never fetches config; it gets the struct the
// request started with.
type QuoteService struct {
	engine Quoter
	config ConfigStore
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(engine Quoter, config ConfigStore) *QuoteService {
	return &QuoteService{engine: engine, config: config}
}

// Quote computes a price breakdown for a prospective order.
func (svc *QuoteService) Quote(ctx context.Context, req pricing.QuoteRequest) (*pricing.QuoteResult, error) {
	cfg, err := svc.config.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load pricing config", "error", err)
		return nil, err
	}

	return svc.engine.ComputeQuote(ctx, *cfg, req)
}
