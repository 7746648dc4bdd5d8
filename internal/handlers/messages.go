package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cambiove/exchange-api/internal/jwt"
	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/middlewares"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/services"
)

// MessagePoster defines the chat surface consumed by the handlers.
type MessagePoster interface {
	Post(ctx context.Context, orderID, senderID uuid.UUID, isAdmin bool, content, imageURL *string) (*models.MessageDB, error)
	List(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*models.OrderDB, []models.MessageDB, error)
	ConfirmPayment(ctx context.Context, orderID, senderID uuid.UUID) (*models.MessageDB, bool, error)
}

// PostMessageHTTPRequest represents the JSON body for posting a chat message
// swagger:model PostMessageHTTPRequest
type PostMessageHTTPRequest struct {
	// Text content, optional when an image is attached
	Content *string `json:"content,omitempty"`

	// Hosted image URL, optional
	ImageURL *string `json:"imageUrl,omitempty"`
}

// ChatLogResponse represents an order's chat log
// swagger:model ChatLogResponse
type ChatLogResponse struct {
	Order    *models.OrderDB    `json:"order"`
	Messages []models.MessageDB `json:"messages"`
}

// ConfirmPaymentResponse reports whether the sentinel was newly posted
// swagger:model ConfirmPaymentResponse
type ConfirmPaymentResponse struct {
	// Whether a new sentinel message was created
	Created bool `json:"created"`

	// The sentinel message, nil on retry
	Message *models.MessageDB `json:"message,omitempty"`
}

// MessageErrorResponse represents an error response for chat operations
// swagger:model MessageErrorResponse
type MessageErrorResponse struct {
	// Error message
	// default: order not found
	Error string `json:"error"`
}

// NewPostMessageHandler returns an HTTP handler appending a chat message.
// @Summary Post a chat message
// @Description Appends a message to an order's chat. At least one of content or imageUrl is required.
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body handlers.PostMessageHTTPRequest true "Message"
// @Success 201 {object} models.MessageDB "Message created"
// @Failure 400 {object} handlers.MessageErrorResponse "Empty message"
// @Failure 403 {object} handlers.MessageErrorResponse "Forbidden"
// @Failure 404 {object} handlers.MessageErrorResponse "Order not found"
// @Router /orders/{id}/messages [post]
// @Security BearerAuth
func NewPostMessageHandler(svc MessagePoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "Unauthorized"})
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "invalid order id"})
			return
		}

		var req PostMessageHTTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "invalid request body"})
			return
		}

		message, err := svc.Post(r.Context(), orderID, claims.UserID, claims.Role == jwt.RoleAdmin, req.Content, req.ImageURL)
		if err != nil {
			writeMessageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(message)
	}
}

// NewListMessagesHandler returns an HTTP handler reading an order's chat log.
// @Summary List chat messages
// @Description Returns the order and its chat log in creation order.
// @Tags chat
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} handlers.ChatLogResponse "Order and messages"
// @Failure 403 {object} handlers.MessageErrorResponse "Forbidden"
// @Failure 404 {object} handlers.MessageErrorResponse "Order not found"
// @Router /orders/{id}/messages [get]
// @Security BearerAuth
func NewListMessagesHandler(svc MessagePoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "Unauthorized"})
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "invalid order id"})
			return
		}

		order, messages, err := svc.List(r.Context(), orderID, claims.UserID, claims.Role == jwt.RoleAdmin)
		if err != nil {
			writeMessageError(w, err)
			return
		}
		if messages == nil {
			messages = []models.MessageDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChatLogResponse{Order: order, Messages: messages})
	}
}

// NewConfirmPaymentHandler returns an HTTP handler posting the
// payment-confirmed sentinel. Retries never produce a duplicate.
// @Summary Confirm payment
// @Description Posts the payment-confirmed sentinel message once per order and notifies the admin.
// @Tags chat
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} handlers.ConfirmPaymentResponse "Sentinel state"
// @Failure 403 {object} handlers.MessageErrorResponse "Forbidden"
// @Failure 404 {object} handlers.MessageErrorResponse "Order not found"
// @Router /orders/{id}/confirm-payment [post]
// @Security BearerAuth
func NewConfirmPaymentHandler(svc MessagePoster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "Unauthorized"})
			return
		}

		orderID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageErrorResponse{Error: "invalid order id"})
			return
		}

		message, created, err := svc.ConfirmPayment(r.Context(), orderID, claims.UserID)
		if err != nil {
			writeMessageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConfirmPaymentResponse{Created: created, Message: message})
	}
}

func writeMessageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyMessage):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(MessageErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(MessageErrorResponse{Error: "Forbidden"})
	case errors.Is(err, services.ErrOrderNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(MessageErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(MessageErrorResponse{Error: "Internal server error"})
	}
}
