package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/cambiove/exchange-api/internal/models"
)

// Loyalty milestone discounts, applied on the BUY side only.
var (
	firstOrderDiscount = decimal.NewFromInt(50)
	fifthOrderDiscount = decimal.NewFromInt(18)
	loyalOrderDiscount = decimal.NewFromInt(10)
)

// DiscountForOrderIndex returns the loyalty discount percentage for a user's
// next order given how many of their orders have been completed so far:
// 50% for the first order, 18% for the fifth, 10% from the fifteenth onward.
func DiscountForOrderIndex(completed int) decimal.Decimal {
	switch {
	case completed == 0:
		return firstOrderDiscount
	case completed == 4:
		return fifthOrderDiscount
	case completed >= 14:
		return loyalOrderDiscount
	}
	return decimal.Zero
}

// DiscountForSide applies the loyalty rule only where it is offered: a SELL
// order never earns a discount.
func DiscountForSide(side string, completed int) decimal.Decimal {
	if side != models.SideBuy {
		return decimal.Zero
	}
	return DiscountForOrderIndex(completed)
}
