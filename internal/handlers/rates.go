package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
)

// RateCatalog defines the rate/config surface consumed by the handlers.
type RateCatalog interface {
	ListRates(ctx context.Context) ([]models.ExchangeRate, error)
	UpsertRate(ctx context.Context, rate models.ExchangeRate) error
	GetConfig(ctx context.Context) (*models.AppConfig, error)
	UpdateConfig(ctx context.Context, cfg models.AppConfig) error
}

// UpsertRateHTTPRequest represents the JSON body for a rate overwrite
// swagger:model UpsertRateHTTPRequest
type UpsertRateHTTPRequest struct {
	// Units of the currency per 1 USD
	// required: true
	// default: 45
	Rate decimal.Decimal `json:"rate"`
}

// UpdateConfigHTTPRequest represents the JSON body for the pricing config
// swagger:model UpdateConfigHTTPRequest
type UpdateConfigHTTPRequest struct {
	FeePercent decimal.Decimal `json:"fee_percent"`
	Rate       decimal.Decimal `json:"rate"`
	BsRate     decimal.Decimal `json:"bs_rate"`
}

// RateErrorResponse represents an error response for rate operations
// swagger:model RateErrorResponse
type RateErrorResponse struct {
	// Error message
	// default: invalid rate
	Error string `json:"error"`
}

// RateMessageResponse represents a success message
// swagger:model RateMessageResponse
type RateMessageResponse struct {
	// Success message
	// default: Rate updated
	Message string `json:"message"`
}

// NewListRatesHandler returns an HTTP handler listing stored rates.
// @Summary List exchange rates
// @Description Returns every stored exchange rate with its last update time.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.ExchangeRate "Rates"
// @Router /rates [get]
func NewListRatesHandler(svc RateCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := svc.ListRates(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list rates", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RateErrorResponse{Error: "Internal server error"})
			return
		}
		if rates == nil {
			rates = []models.ExchangeRate{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(rates)
	}
}

// NewUpsertRateHandler returns an HTTP handler overwriting a currency's rate.
// @Summary Upsert an exchange rate
// @Description Overwrites the stored rate for a currency. No history is kept. Admin only.
// @Tags catalog
// @Accept json
// @Produce json
// @Param currency path string true "Currency code"
// @Param request body handlers.UpsertRateHTTPRequest true "Rate"
// @Success 200 {object} handlers.RateMessageResponse "Rate updated"
// @Failure 400 {object} handlers.RateErrorResponse "Invalid rate"
// @Router /admin/rates/{currency} [put]
// @Security BearerAuth
func NewUpsertRateHandler(svc RateCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currency := strings.ToUpper(chi.URLParam(r, "currency"))

		var req UpsertRateHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RateErrorResponse{Error: "invalid request body"})
			return
		}
		if !req.Rate.IsPositive() {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RateErrorResponse{Error: "rate must be greater than zero"})
			return
		}

		if err := svc.UpsertRate(r.Context(), models.ExchangeRate{Currency: currency, Rate: req.Rate}); err != nil {
			logger.Log.Errorw("failed to upsert rate", "currency", currency, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RateErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RateMessageResponse{Message: "Rate updated"})
	}
}

// NewGetConfigHandler returns an HTTP handler reading the pricing config.
// @Summary Get pricing configuration
// @Description Returns the global pricing configuration row. Admin only.
// @Tags catalog
// @Produce json
// @Success 200 {object} models.AppConfig "Configuration"
// @Router /admin/config [get]
// @Security BearerAuth
func NewGetConfigHandler(svc RateCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := svc.GetConfig(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get config", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RateErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(cfg)
	}
}

// NewUpdateConfigHandler returns an HTTP handler overwriting the pricing config.
// @Summary Update pricing configuration
// @Description Overwrites the single pricing configuration row. Admin only.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body handlers.UpdateConfigHTTPRequest true "Configuration"
// @Success 200 {object} handlers.RateMessageResponse "Configuration updated"
// @Failure 400 {object} handlers.RateErrorResponse "Invalid request"
// @Router /admin/config [put]
// @Security BearerAuth
func NewUpdateConfigHandler(svc RateCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateConfigHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RateErrorResponse{Error: "invalid request body"})
			return
		}
		if req.FeePercent.IsNegative() {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RateErrorResponse{Error: "fee_percent must not be negative"})
			return
		}

		if err := svc.UpdateConfig(r.Context(), models.AppConfig{
			FeePercent: req.FeePercent,
			Rate:       req.Rate,
			BsRate:     req.BsRate,
		}); err != nil {
			logger.Log.Errorw("failed to update config", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RateErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RateMessageResponse{Message: "Configuration updated"})
	}
}
