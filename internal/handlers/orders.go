package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cambiove/exchange-api/internal/jwt"
	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/middlewares"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/pricing"
	"github.com/cambiove/exchange-api/internal/repositories"
	"github.com/cambiove/exchange-api/internal/services"
)

// OrderCreator defines the order-creation surface consumed by the handler.
type OrderCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, in services.CreateOrderInput) (*models.OrderDB, error)
}

// OrderUpdater defines the admin status-transition surface.
type OrderUpdater interface {
	SetStatus(ctx context.Context, orderID uuid.UUID, newStatus string, realProfit *decimal.Decimal) (*models.OrderDB, error)
}

// OrderViewer defines order read access with ownership checks.
type OrderViewer interface {
	Get(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*models.OrderDB, error)
	List(ctx context.Context, requesterID uuid.UUID, isAdmin bool) ([]models.OrderDB, error)
}

// CreateOrderHTTPRequest represents the JSON body for order creation
// swagger:model CreateOrderHTTPRequest
type CreateOrderHTTPRequest struct {
	// Payment channel key
	// required: true
	// default: PAYPAL
	Platform string `json:"platform"`

	// Side of the exchange
	// required: true
	// default: BUY
	Side string `json:"side"`

	// Gross amount in USD
	// required: true
	// default: 100
	AmountUsd decimal.Decimal `json:"amountUsd"`

	// Destination currency or USDT
	// required: true
	// default: USDT
	Destination string `json:"destination"`

	// Sender's PayPal email
	PaypalEmail string `json:"paypalEmail"`

	// Payout recipient details
	Recipient models.RecipientDetails `json:"recipient"`
}

// UpdateOrderHTTPRequest represents the JSON body for the admin status update
// swagger:model UpdateOrderHTTPRequest
type UpdateOrderHTTPRequest struct {
	// New order status
	// required: true
	// default: COMPLETED
	Status string `json:"status"`

	// Realized profit, optional
	RealProfit *decimal.Decimal `json:"realProfit,omitempty"`
}

// OrderErrorResponse represents an error response for order operations
// swagger:model OrderErrorResponse
type OrderErrorResponse struct {
	// Error message
	// default: order not found
	Error string `json:"error"`
}

// NewCreateOrderHandler returns an HTTP handler creating an order. The quote
// is recomputed server-side; the route runs inside a transaction so the
// snapshot and the rate read it came from commit together.
// @Summary Create an order
// @Description Creates an exchange order with an immutable server-computed quote snapshot.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body handlers.CreateOrderHTTPRequest true "Order creation request"
// @Success 201 {object} models.OrderDB "Order created"
// @Failure 400 {object} handlers.OrderErrorResponse "Invalid request"
// @Failure 404 {object} handlers.OrderErrorResponse "Channel or rate not found"
// @Failure 409 {object} handlers.OrderErrorResponse "Duplicate order"
// @Router /orders [post]
// @Security BearerAuth
func NewCreateOrderHandler(svc OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OrderErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateOrderHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OrderErrorResponse{Error: "invalid request body"})
			return
		}

		order, err := svc.Create(r.Context(), claims.UserID, services.CreateOrderInput{
			ChannelKey:  strings.ToUpper(req.Platform),
			Side:        strings.ToUpper(req.Side),
			AmountUsd:   req.AmountUsd,
			Destination: strings.ToUpper(req.Destination),
			PaypalEmail: req.PaypalEmail,
			Recipient:   req.Recipient,
		})
		if err != nil {
			writeOrderError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(order)
	}
}

// NewUpdateOrderHandler returns an HTTP handler for the admin status update.
// @Summary Update order status
// @Description Moves an order to a new status and optionally records realized profit. Admin only.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body handlers.UpdateOrderHTTPRequest true "Status update request"
// @Success 200 {object} models.OrderDB "Updated order"
// @Failure 400 {object} handlers.OrderErrorResponse "Invalid status"
// @Failure 404 {object} handlers.OrderErrorResponse "Order not found"
// @Router /orders/{id} [patch]
// @Security BearerAuth
func NewUpdateOrderHandler(svc OrderUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OrderErrorResponse{Error: "invalid order id"})
			return
		}

		var req UpdateOrderHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OrderErrorResponse{Error: "invalid request body"})
			return
		}

		order, err := svc.SetStatus(r.Context(), orderID, strings.ToUpper(req.Status), req.RealProfit)
		if err != nil {
			writeOrderError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(order)
	}
}

// NewGetOrderHandler returns an HTTP handler fetching one order.
// @Summary Get an order
// @Description Returns one order. Customers only see their own; admin sees all.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.OrderDB "Order"
// @Failure 403 {object} handlers.OrderErrorResponse "Forbidden"
// @Failure 404 {object} handlers.OrderErrorResponse "Order not found"
// @Router /orders/{id} [get]
// @Security BearerAuth
func NewGetOrderHandler(svc OrderViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OrderErrorResponse{Error: "Unauthorized"})
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(OrderErrorResponse{Error: "invalid order id"})
			return
		}

		order, err := svc.Get(r.Context(), orderID, claims.UserID, claims.Role == jwt.RoleAdmin)
		if err != nil {
			writeOrderError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(order)
	}
}

// NewListOrdersHandler returns an HTTP handler listing orders.
// @Summary List orders
// @Description Returns the requester's orders, newest first. Admin gets every order.
// @Tags orders
// @Produce json
// @Success 200 {array} models.OrderDB "Orders"
// @Router /orders [get]
// @Security BearerAuth
func NewListOrdersHandler(svc OrderViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OrderErrorResponse{Error: "Unauthorized"})
			return
		}

		orders, err := svc.List(r.Context(), claims.UserID, claims.Role == jwt.RoleAdmin)
		if err != nil {
			logger.Log.Errorw("failed to list orders", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OrderErrorResponse{Error: "Internal server error"})
			return
		}
		if orders == nil {
			orders = []models.OrderDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(orders)
	}
}

// writeOrderError maps order lifecycle errors to HTTP statuses.
func writeOrderError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	var unavailable *pricing.UnavailableError

	switch {
	case errors.As(err, &verr):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(OrderErrorResponse{Error: verr.Error()})
	case errors.As(err, &unavailable):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(OrderErrorResponse{Error: unavailable.Reason})
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, pricing.ErrInvalidSide),
		errors.Is(err, pricing.ErrInvalidAmount),
		errors.Is(err, pricing.ErrChannelRequired),
		errors.Is(err, pricing.ErrDestinationRequired),
		errors.Is(err, pricing.ErrInvalidRate):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(OrderErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(OrderErrorResponse{Error: "Forbidden"})
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, pricing.ErrChannelNotFound),
		errors.Is(err, pricing.ErrRateNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(OrderErrorResponse{Error: err.Error()})
	case repositories.IsUniqueViolation(err):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(OrderErrorResponse{Error: "duplicate order"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(OrderErrorResponse{Error: "Internal server error"})
	}
}
