package payment

import (
	"context"
	"testing"

	"github.com/eventura/booking-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGatewaySettle(t *testing.T) {
	gateway := NewSimulatedGateway("https://example.com/mock-bank")

	tests := []struct {
		name       string
		method     domain.PaymentMethod
		wantStatus domain.PaymentStatus
		wantAction string
		wantErr    error
	}{
		{name: "card settles immediately", method: domain.PaymentMethodCard, wantStatus: domain.PaymentStatusSucceeded},
		{name: "upi stays pending behind collect", method: domain.PaymentMethodUPI, wantStatus: domain.PaymentStatusPending, wantAction: "collect"},
		{name: "netbanking redirects", method: domain.PaymentMethodNetbanking, wantStatus: domain.PaymentStatusRedirect},
		{name: "wallet settles immediately", method: domain.PaymentMethodWallet, wantStatus: domain.PaymentStatusSucceeded},
		{name: "unknown method rejected", method: "crypto", wantErr: domain.ErrUnsupportedMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := gateway.Settle(context.Background(), domain.SettlementRequest{
				PaymentID: "pay_test",
				Method:    tt.method,
				Amount:    956,
				Currency:  "INR",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "pay_test", result.ID)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantAction, result.Action)

			if tt.method == domain.PaymentMethodNetbanking {
				assert.Equal(t, "https://example.com/mock-bank", result.RedirectURL)
			}
		})
	}
}

func TestSimulatedGatewayHonorsContext(t *testing.T) {
	gateway := NewSimulatedGateway("")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Settle(ctx, domain.SettlementRequest{Method: domain.PaymentMethodCard})
	assert.ErrorIs(t, err, context.Canceled)
}
