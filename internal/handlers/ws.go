package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cambiove/exchange-api/internal/jwt"
	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/middlewares"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/realtime"
)

// TopicServer attaches an authorized websocket client to fan-out topics.
type TopicServer interface {
	Serve(w http.ResponseWriter, r *http.Request, topics []string) error
}

// OrderOwnerGetter resolves orders for websocket topic authorization.
type OrderOwnerGetter interface {
	GetByID(ctx context.Context, orderID uuid.UUID) (*models.OrderDB, error)
}

// WSErrorResponse represents an error response for the websocket endpoint
// swagger:model WSErrorResponse
type WSErrorResponse struct {
	// Error message
	// default: forbidden topic
	Error string `json:"error"`
}

// NewWSHandler returns the websocket endpoint. The client authenticates via
// the token query parameter and asks for topics with ?topics=a,b,c. Every
// requested topic is authorized against the caller's identity: anyone may
// follow rates, users may follow their own user topic and their own orders'
// topics, and only admins may follow the admin topic or arbitrary orders.
// With no topics requested the client gets its user topic plus rates (plus
// admin for admins).
// @Summary Realtime event feed
// @Description Upgrades to a websocket delivering the caller's authorized event topics.
// @Tags realtime
// @Param topics query string false "Comma-separated topic list"
// @Param token query string true "JWT"
// @Success 101 "Switching protocols"
// @Failure 403 {object} handlers.WSErrorResponse "Forbidden topic"
// @Router /ws [get]
func NewWSHandler(hub TopicServer, orders OrderOwnerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WSErrorResponse{Error: "Unauthorized"})
			return
		}
		isAdmin := claims.Role == jwt.RoleAdmin

		var topics []string
		if raw := r.URL.Query().Get("topics"); raw != "" {
			for _, topic := range strings.Split(raw, ",") {
				topic = strings.TrimSpace(topic)
				if topic == "" {
					continue
				}
				if !authorizeTopic(r.Context(), orders, claims, isAdmin, topic) {
					w.WriteHeader(http.StatusForbidden)
					json.NewEncoder(w).Encode(WSErrorResponse{Error: "forbidden topic: " + topic})
					return
				}
				topics = append(topics, topic)
			}
		}
		if len(topics) == 0 {
			topics = []string{realtime.UserTopic(claims.UserID), realtime.TopicRates}
			if isAdmin {
				topics = append(topics, realtime.TopicAdmin)
			}
		}

		if err := hub.Serve(w, r, topics); err != nil {
			logger.Log.Errorw("websocket upgrade failed", "err", err)
		}
	}
}

func authorizeTopic(ctx context.Context, orders OrderOwnerGetter, claims *jwt.Claims, isAdmin bool, topic string) bool {
	switch {
	case topic == realtime.TopicRates:
		return true
	case topic == realtime.TopicAdmin:
		return isAdmin
	case topic == realtime.UserTopic(claims.UserID):
		return true
	case strings.HasPrefix(topic, "user-"):
		return isAdmin
	case strings.HasPrefix(topic, "order-"):
		if isAdmin {
			return true
		}
		orderID, err := uuid.Parse(strings.TrimPrefix(topic, "order-"))
		if err != nil {
			return false
		}
		order, err := orders.GetByID(ctx, orderID)
		if err != nil || order == nil {
			return false
		}
		return order.UserID == claims.UserID
	}
	return false
}
