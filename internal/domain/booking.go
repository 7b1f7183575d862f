package domain

import (
	"context"
	"time"
)

// Booking is the single serializable record that survives navigation to the
// confirmation view. It is written once, at successful payment.
type Booking struct {
	ID          string
	PaymentID   string
	SessionID   string
	MovieTitle  string
	TheatreName string
	Showtime    string
	Seats       []string
	TicketCount int
	Breakdown   PriceBreakdown
	Amount      int64
	Currency    string
	CreatedAt   time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetLatestBySession(ctx context.Context, sessionID string) (*Booking, error)
}
