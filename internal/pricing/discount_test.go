package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cambiove/exchange-api/internal/models"
	"github.com/cambiove/exchange-api/internal/pricing"
)

func TestDiscountForOrderIndex(t *testing.T) {
	tests := []struct {
		completed int
		want      int64
	}{
		{completed: 0, want: 50},
		{completed: 1, want: 0},
		{completed: 3, want: 0},
		{completed: 4, want: 18},
		{completed: 5, want: 0},
		{completed: 13, want: 0},
		{completed: 14, want: 10},
		{completed: 15, want: 10},
		{completed: 100, want: 10},
	}

	for _, tt := range tests {
		got := pricing.DiscountForOrderIndex(tt.completed)
		assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
			"completed=%d got=%s want=%d", tt.completed, got, tt.want)
	}
}

func TestDiscountForSide(t *testing.T) {
	assert.True(t, pricing.DiscountForSide(models.SideBuy, 0).Equal(decimal.NewFromInt(50)))
	assert.True(t, pricing.DiscountForSide(models.SideSell, 0).IsZero())
}
