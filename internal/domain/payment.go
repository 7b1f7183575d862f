package domain

import (
	"context"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
	PaymentMethodWallet     PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetbanking, PaymentMethodWallet:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRedirect  PaymentStatus = "redirect"
)

type Payment struct {
	ID          string
	SessionID   string
	Method      PaymentMethod
	Amount      int64
	Currency    string
	Status      PaymentStatus
	MovieTitle  string
	TheatreName string
	Showtime    string
	Seats       []string
	TicketCount int
	CreatedAt   time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetById(ctx context.Context, id string) (*Payment, error)
}

// SettlementRequest is the opaque payload handed to the payment
// collaborator: the already-computed breakdown plus booking context. The
// engine never reinterprets method specifics beyond capturing them here.
type SettlementRequest struct {
	PaymentID string
	Method    PaymentMethod
	Amount    int64
	Currency  string
	Meta      map[string]string
}

// SettlementResult mirrors the collaborator's contract: an identifier and a
// status, plus method-specific follow-up hints.
type SettlementResult struct {
	ID          string
	Status      PaymentStatus
	Action      string
	RedirectURL string
	Note        string
}

type PaymentProvider interface {
	Settle(ctx context.Context, req SettlementRequest) (SettlementResult, error)
}
