package domain

import "github.com/shopspring/decimal"

// FeeConfig holds the per-session fee and tax parameters. TaxRate must be
// in [0, 1).
type FeeConfig struct {
	ConveniencePerTicket int64
	TaxRate              decimal.Decimal
}

func DefaultFeeConfig() FeeConfig {
	return FeeConfig{
		ConveniencePerTicket: 20,
		TaxRate:              decimal.NewFromFloat(0.18),
	}
}

// PriceBreakdown is the itemized price result consumed by checkout and
// confirmation. It is derived, never stored as mutable state, and every
// field is a non-negative whole currency amount.
type PriceBreakdown struct {
	SeatsCount      int   `json:"seatsCount"`
	TicketsSubtotal int64 `json:"ticketsSubtotal"`
	FnbSubtotal     int64 `json:"fnbSubtotal"`
	Discount        int64 `json:"discount"`
	ConvenienceFee  int64 `json:"convenienceFee"`
	Tax             int64 `json:"tax"`
	GrandTotal      int64 `json:"grandTotal"`
}

// ComputeTotals derives the full price breakdown from the booking state.
// It is a pure, total function of its inputs: identical inputs always yield
// an identical breakdown, and it is re-invoked after every mutation to the
// selection, the cart, or the promo code.
//
// The steps run in a fixed order so displayed totals stay internally
// consistent: subtotals, raw discount, discount cap, convenience fee,
// taxable clamp, tax (half-up), grand total.
func ComputeTotals(
	seatsCount int,
	cart ConcessionsCart,
	catalog ConcessionsCatalog,
	promoCode string,
	fees FeeConfig,
	ticketPrice int64) PriceBreakdown {

	ticketsSubtotal := int64(seatsCount) * ticketPrice
	fnbSubtotal := cart.Subtotal(catalog)

	discount := ApplyPromo(promoCode, ticketsSubtotal, fnbSubtotal).Discount
	if combined := ticketsSubtotal + fnbSubtotal; discount > combined {
		discount = combined
	}

	convenienceFee := int64(seatsCount) * fees.ConveniencePerTicket

	taxable := ticketsSubtotal + fnbSubtotal + convenienceFee - discount
	if taxable < 0 {
		taxable = 0
	}

	tax := decimal.NewFromInt(taxable).
		Mul(fees.TaxRate).
		Round(0).
		IntPart()

	return PriceBreakdown{
		SeatsCount:      seatsCount,
		TicketsSubtotal: ticketsSubtotal,
		FnbSubtotal:     fnbSubtotal,
		Discount:        discount,
		ConvenienceFee:  convenienceFee,
		Tax:             tax,
		GrandTotal:      taxable + tax,
	}
}
