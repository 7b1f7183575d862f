package domain

import (
	"context"
	"time"
)

// User is a phone-number identity created lazily by the OTP flow. Name and
// email stay empty until the user fills a profile.
type User struct {
	ID          int
	Mobile      string
	Name        string
	Email       string
	CreatedAt   time.Time
	LastLoginAt time.Time
}

type UserRepository interface {
	// UpsertByMobile creates the user on first login and refreshes
	// LastLoginAt on every subsequent one.
	UpsertByMobile(ctx context.Context, mobile string) (*User, error)
	GetByMobile(ctx context.Context, mobile string) (*User, error)
}
