package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndGetClaims(t *testing.T) {
	j := New("secret", time.Minute)
	userID := uuid.New()

	token, err := j.Generate(context.Background(), userID, RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestGetClaims_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)

	_, err := j.GetClaims(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestGetClaims_WrongSecret(t *testing.T) {
	j := New("secret", time.Minute)
	other := New("other-secret", time.Minute)

	token, err := j.Generate(context.Background(), uuid.New(), RoleCustomer)
	assert.NoError(t, err)

	_, err = other.GetClaims(context.Background(), token)
	assert.Error(t, err)
}

func TestGetClaims_Expired(t *testing.T) {
	j := New("secret", -time.Minute)

	token, err := j.Generate(context.Background(), uuid.New(), RoleCustomer)
	assert.NoError(t, err)

	_, err = j.GetClaims(context.Background(), token)
	assert.Error(t, err)
}

func TestGetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)

	tests := []struct {
		name      string
		header    string
		query     string
		wantToken string
		wantErr   bool
	}{
		{name: "bearer header", header: "Bearer abc123", wantToken: "abc123"},
		{name: "query param fallback", query: "abc123", wantToken: "abc123"},
		{name: "missing", wantErr: true},
		{name: "malformed header", header: "abc123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/"
			if tt.query != "" {
				url = "/?token=" + tt.query
			}
			r := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(context.Background(), r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
