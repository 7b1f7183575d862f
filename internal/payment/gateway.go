// Package payment simulates settlement against the external payment
// collaborator. Each method resolves to a fixed outcome so checkout can be
// exercised end to end without a real gateway.
package payment

import (
	"context"

	"github.com/eventura/booking-api/internal/domain"
)

type SimulatedGateway struct {
	redirectURL string
}

func NewSimulatedGateway(redirectURL string) *SimulatedGateway {
	return &SimulatedGateway{
		redirectURL: redirectURL,
	}
}

// Settle resolves the payment by method: card and wallet settle
// immediately, UPI stays pending behind a collect request, and netbanking
// hands back a redirect. Unknown methods are rejected.
func (g *SimulatedGateway) Settle(ctx context.Context, req domain.SettlementRequest) (domain.SettlementResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SettlementResult{}, err
	}

	result := domain.SettlementResult{ID: req.PaymentID}

	switch req.Method {
	case domain.PaymentMethodCard:
		result.Status = domain.PaymentStatusSucceeded
	case domain.PaymentMethodUPI:
		result.Status = domain.PaymentStatusPending
		result.Action = "collect"
		result.Note = "Open your UPI app to approve"
	case domain.PaymentMethodNetbanking:
		result.Status = domain.PaymentStatusRedirect
		result.RedirectURL = g.redirectURL
	case domain.PaymentMethodWallet:
		result.Status = domain.PaymentStatusSucceeded
	default:
		return domain.SettlementResult{}, domain.ErrUnsupportedMethod
	}

	return result, nil
}
