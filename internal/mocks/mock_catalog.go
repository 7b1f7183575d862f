package mocks

import (
	"context"

	"github.com/eventura/booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) FilmsNowShowing(ctx context.Context, limit int) ([]domain.Movie, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movie), args.Error(1)
}

func (m *MockCatalog) CinemasNearby(ctx context.Context, lat, lon float64) ([]domain.Theatre, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Theatre), args.Error(1)
}
