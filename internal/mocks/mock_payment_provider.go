package mocks

import (
	"context"

	"github.com/eventura/booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentProvider struct {
	mock.Mock
	domain.PaymentProvider
}

func (m *MockPaymentProvider) Settle(ctx context.Context, req domain.SettlementRequest) (domain.SettlementResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.SettlementResult), args.Error(1)
}
