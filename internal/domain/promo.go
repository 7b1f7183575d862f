package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var movie10Rate = decimal.NewFromFloat(0.10)

type PromoResult struct {
	Accepted bool
	Discount int64
}

// NormalizePromoCode trims surrounding whitespace and uppercases the code,
// so "movie10" and " MOVIE10 " are the same coupon.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ApplyPromo evaluates a promo code against the current subtotals and
// returns the raw rule output. The result is not capped here; the pricing
// aggregator bounds the discount by the combined subtotal.
func ApplyPromo(code string, ticketsSubtotal, fnbSubtotal int64) PromoResult {
	switch NormalizePromoCode(code) {
	case "MOVIE10":
		discount := decimal.NewFromInt(ticketsSubtotal).
			Mul(movie10Rate).
			Round(0). // half away from zero, i.e. half-up on non-negative amounts
			IntPart()

		return PromoResult{Accepted: true, Discount: discount}
	case "FIRST50":
		return PromoResult{Accepted: true, Discount: 50}
	default:
		return PromoResult{Accepted: false, Discount: 0}
	}
}
