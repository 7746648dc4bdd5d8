package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cambiove/exchange-api/internal/jwt"
	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/realtime"
)

func TestWSHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHub := NewMockTopicServer(ctrl)
	mockOrders := NewMockOrderOwnerGetter(ctrl)
	userID := uuid.New()

	t.Run("no claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		w := httptest.NewRecorder()

		NewWSHandler(mockHub, mockOrders).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("customer gets default topics", func(t *testing.T) {
		claims := &jwt.Claims{UserID: userID, Role: jwt.RoleCustomer}
		mockHub.EXPECT().
			Serve(gomock.Any(), gomock.Any(), []string{realtime.UserTopic(userID), realtime.TopicRates}).
			Return(nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/ws", nil), claims)
		w := httptest.NewRecorder()

		NewWSHandler(mockHub, mockOrders).ServeHTTP(w, req)
	})

	t.Run("admin default topics include the admin feed", func(t *testing.T) {
		claims := &jwt.Claims{UserID: userID, Role: jwt.RoleAdmin}
		mockHub.EXPECT().
			Serve(gomock.Any(), gomock.Any(), []string{realtime.UserTopic(userID), realtime.TopicRates, realtime.TopicAdmin}).
			Return(nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/ws", nil), claims)
		w := httptest.NewRecorder()

		NewWSHandler(mockHub, mockOrders).ServeHTTP(w, req)
	})

	t.Run("customer cannot follow the admin topic", func(t *testing.T) {
		claims := &jwt.Claims{UserID: userID, Role: jwt.RoleCustomer}

		req := withClaims(httptest.NewRequest(http.MethodGet, "/ws?topics="+realtime.TopicAdmin, nil), claims)
		w := httptest.NewRecorder()

		NewWSHandler(mockHub, mockOrders).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("customer follows own order topic", func(t *testing.T) {
		claims := &jwt.Claims{UserID: userID, Role: jwt.RoleCustomer}
		orderID := uuid.New()
		topic := "order-" + orderID.String()

		mockOrders.EXPECT().
			GetByID(gomock.Any(), orderID).
			Return(&models.OrderDB{OrderID: orderID, UserID: userID}, nil)
		mockHub.EXPECT().
			Serve(gomock.Any(), gomock.Any(), []string{topic}).
			Return(nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/ws?topics="+topic, nil), claims)
		w := httptest.NewRecorder()

		NewWSHandler(mockHub, mockOrders).ServeHTTP(w, req)
	})

	t.Run("customer cannot follow a stranger's order", func(t *testing.T) {
		claims := &jwt.Claims{UserID: userID, Role: jwt.RoleCustomer}
		orderID := uuid.New()
		topic := "order-" + orderID.String()

		mockOrders.EXPECT().
			GetByID(gomock.Any(), orderID).
			Return(&models.OrderDB{OrderID: orderID, UserID: uuid.New()}, nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/ws?topics="+topic, nil), claims)
		w := httptest.NewRecorder()

		NewWSHandler(mockHub, mockOrders).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin follows any order without a lookup", func(t *testing.T) {
		claims := &jwt.Claims{UserID: userID, Role: jwt.RoleAdmin}
		topic := "order-" + uuid.New().String()

		mockHub.EXPECT().
			Serve(gomock.Any(), gomock.Any(), []string{topic}).
			Return(nil)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/ws?topics="+topic, nil), claims)
		w := httptest.NewRecorder()

		NewWSHandler(mockHub, mockOrders).ServeHTTP(w, req)
	})
}
