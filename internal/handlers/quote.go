package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/pricing"
)

// QuoteComputer defines the interface that the quote service must implement.
type QuoteComputer interface {
	Quote(ctx context.Context, req pricing.QuoteRequest) (*pricing.QuoteResult, error)
}

// QuoteHTTPRequest represents the JSON body for a quote computation
// swagger:model QuoteHTTPRequest
type QuoteHTTPRequest struct {
	// Side of the exchange
	// required: true
	// default: BUY
	Side string `json:"side"`

	// Payment channel key
	// required: true
	// default: PAYPAL
	ChannelKey string `json:"channelKey"`

	// Gross amount in USD
	// required: true
	// default: 100
	AmountUsd decimal.Decimal `json:"amountUsd"`

	// Destination currency or USDT
	// required: true
	// default: USDT
	DestinationCurrency string `json:"destinationCurrency"`

	// Loyalty discount percentage, optional
	UserDiscountPercent decimal.Decimal `json:"userDiscountPercent"`

	// Whether the global base fee applies
	IncludeBaseFee bool `json:"includeBaseFee"`
}

// QuoteErrorResponse represents an error response for a quote
// swagger:model QuoteErrorResponse
type QuoteErrorResponse struct {
	// Error message
	// default: payment channel not found
	Error string `json:"error"`
}

// NewQuoteHandler returns an HTTP handler computing a price breakdown.
// @Summary Compute a quote
// @Description Computes the full price breakdown for a prospective exchange. Unavailable channels return the admin-configured status text.
// @Tags quote
// @Accept json
// @Produce json
// @Param quoteRequest body handlers.QuoteHTTPRequest true "Quote Request"
// @Success 200 {object} pricing.QuoteResult "Price breakdown"
// @Failure 400 {object} handlers.QuoteErrorResponse "Invalid request or channel unavailable"
// @Failure 404 {object} handlers.QuoteErrorResponse "Channel or rate not found"
// @Router /quote [post]
func NewQuoteHandler(svc QuoteComputer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuoteHTTPRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(QuoteErrorResponse{Error: "invalid request body"})
			return
		}

		result, err := svc.Quote(r.Context(), pricing.QuoteRequest{
			Side:                strings.ToUpper(req.Side),
			ChannelKey:          strings.ToUpper(req.ChannelKey),
			AmountUsd:           req.AmountUsd,
			DestinationCurrency: strings.ToUpper(req.DestinationCurrency),
			UserDiscountPercent: req.UserDiscountPercent,
			IncludeBaseFee:      req.IncludeBaseFee,
		})
		if err != nil {
			writeQuoteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}

// writeQuoteError maps pricing errors to HTTP statuses. The Unavailable
// reason travels to the client verbatim so the UI can show the
// admin-configured status text.
func writeQuoteError(w http.ResponseWriter, err error) {
	var unavailable *pricing.UnavailableError

	switch {
	case errors.As(err, &unavailable):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(QuoteErrorResponse{Error: unavailable.Reason})
	case errors.Is(err, pricing.ErrChannelNotFound),
		errors.Is(err, pricing.ErrRateNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(QuoteErrorResponse{Error: err.Error()})
	case errors.Is(err, pricing.ErrInvalidSide),
		errors.Is(err, pricing.ErrInvalidAmount),
		errors.Is(err, pricing.ErrChannelRequired),
		errors.Is(err, pricing.ErrDestinationRequired),
		errors.Is(err, pricing.ErrInvalidRate):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(QuoteErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(QuoteErrorResponse{Error: "Internal server error"})
	}
}
