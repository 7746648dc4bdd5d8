package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/repositories"
	"github.com/cambiove/exchange-api/internal/services"
)

// ChannelCatalog defines the channel surface consumed by the handlers.
type ChannelCatalog interface {
	ListChannels(ctx context.Context) ([]models.PaymentChannel, error)
	CreateChannel(ctx context.Context, channel models.PaymentChannel) error
	UpdateChannel(ctx context.Context, channel models.PaymentChannel) error
	ArchiveChannel(ctx context.Context, key string) error
}

// ChannelHTTPRequest represents the JSON body for channel create/update
// swagger:model ChannelHTTPRequest
type ChannelHTTPRequest struct {
	// Stable channel key
	// required: true
	// default: PAYPAL
	Key string `json:"key"`

	// Display label
	// default: PayPal
	Label string `json:"label"`

	CommissionBuyPercent  decimal.Decimal `json:"commission_buy_percent"`
	CommissionSellPercent decimal.Decimal `json:"commission_sell_percent"`
	EnabledBuy            bool            `json:"enabled_buy"`
	EnabledSell           bool            `json:"enabled_sell"`
	Visible               bool            `json:"visible"`
	StatusTextBuy         string          `json:"status_text_buy"`
	StatusTextSell        string          `json:"status_text_sell"`
	SortOrder             int             `json:"sort_order"`
}

// ChannelErrorResponse represents an error response for channel operations
// swagger:model ChannelErrorResponse
type ChannelErrorResponse struct {
	// Error message
	// default: payment channel not found
	Error string `json:"error"`
}

// ChannelMessageResponse represents a success message
// swagger:model ChannelMessageResponse
type ChannelMessageResponse struct {
	// Success message
	// default: Channel updated
	Message string `json:"message"`
}

func (req *ChannelHTTPRequest) toModel() models.PaymentChannel {
	return models.PaymentChannel{
		Key:                   strings.ToUpper(req.Key),
		Label:                 req.Label,
		CommissionBuyPercent:  req.CommissionBuyPercent,
		CommissionSellPercent: req.CommissionSellPercent,
		EnabledBuy:            req.EnabledBuy,
		EnabledSell:           req.EnabledSell,
		Visible:               req.Visible,
		StatusTextBuy:         req.StatusTextBuy,
		StatusTextSell:        req.StatusTextSell,
		SortOrder:             req.SortOrder,
	}
}

// NewListChannelsHandler returns an HTTP handler listing offerable channels.
// @Summary List payment channels
// @Description Returns visible, non-archived channels ordered for display, with per-side availability and status text.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.PaymentChannel "Channels"
// @Router /channels [get]
func NewListChannelsHandler(svc ChannelCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channels, err := svc.ListChannels(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list channels", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChannelErrorResponse{Error: "Internal server error"})
			return
		}
		if channels == nil {
			channels = []models.PaymentChannel{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(channels)
	}
}

// NewCreateChannelHandler returns an HTTP handler adding a channel.
// @Summary Create a payment channel
// @Description Adds a payment channel to the registry. Admin only.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body handlers.ChannelHTTPRequest true "Channel"
// @Success 201 {object} handlers.ChannelMessageResponse "Channel created"
// @Failure 409 {object} handlers.ChannelErrorResponse "Duplicate channel key"
// @Router /admin/channels [post]
// @Security BearerAuth
func NewCreateChannelHandler(svc ChannelCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChannelHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChannelErrorResponse{Error: "invalid request body"})
			return
		}
		if req.Key == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChannelErrorResponse{Error: "key is required"})
			return
		}

		if err := svc.CreateChannel(r.Context(), req.toModel()); err != nil {
			if repositories.IsUniqueViolation(err) {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ChannelErrorResponse{Error: "channel key already exists"})
				return
			}
			logger.Log.Errorw("failed to create channel", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChannelErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ChannelMessageResponse{Message: "Channel created"})
	}
}

// NewUpdateChannelHandler returns an HTTP handler overwriting a channel.
// @Summary Update a payment channel
// @Description Overwrites a channel's commissions, availability, visibility and status text. Admin only.
// @Tags catalog
// @Accept json
// @Produce json
// @Param key path string true "Channel key"
// @Param request body handlers.ChannelHTTPRequest true "Channel"
// @Success 200 {object} handlers.ChannelMessageResponse "Channel updated"
// @Failure 404 {object} handlers.ChannelErrorResponse "Channel not found"
// @Router /admin/channels/{key} [put]
// @Security BearerAuth
func NewUpdateChannelHandler(svc ChannelCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChannelHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChannelErrorResponse{Error: "invalid request body"})
			return
		}
		req.Key = chi.URLParam(r, "key")

		if err := svc.UpdateChannel(r.Context(), req.toModel()); err != nil {
			if errors.Is(err, services.ErrChannelNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ChannelErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to update channel", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChannelErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChannelMessageResponse{Message: "Channel updated"})
	}
}

// NewArchiveChannelHandler returns an HTTP handler soft-deleting a channel.
// @Summary Archive a payment channel
// @Description Soft-deletes a channel. Archived channels stop quoting but stay referenced by historical orders. Admin only.
// @Tags catalog
// @Produce json
// @Param key path string true "Channel key"
// @Success 200 {object} handlers.ChannelMessageResponse "Channel archived"
// @Failure 404 {object} handlers.ChannelErrorResponse "Channel not found"
// @Router /admin/channels/{key} [delete]
// @Security BearerAuth
func NewArchiveChannelHandler(svc ChannelCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		if err := svc.ArchiveChannel(r.Context(), strings.ToUpper(key)); err != nil {
			if errors.Is(err, services.ErrChannelNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ChannelErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("failed to archive channel", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ChannelErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChannelMessageResponse{Message: "Channel archived"})
	}
}
