package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/eventura/booking-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

type sessionKey string

const (
	SessionKeyMobile = sessionKey("mobile")
	SessionKeyGuest  = sessionKey("guest")
)

func (s sessionKey) String() string {
	return string(s)
}

// bookingSessionTTL matches the session manager's idle timeout, so booking
// state never outlives the cookie that points at it.
const bookingSessionTTL = 30 * time.Minute

func bookingSessionKey(sessionID string) string {
	return fmt.Sprintf("booking_session:%s", sessionID)
}

func otpKey(mobile string) string {
	return fmt.Sprintf("otp:%s", mobile)
}

func (app *Application) contextGetMobile(r *http.Request) string {
	mobile, ok := r.Context().Value(SessionKeyMobile).(string)
	if !ok {
		panic("missing mobile from context")
	}

	return mobile
}

// getBookingSession loads the booking session bound to the current cookie.
// A missing key means the user has not selected a showtime yet.
func (app *Application) getBookingSession(ctx context.Context, sessionID string) (*domain.BookingSession, error) {
	payload, err := app.redis.Get(ctx, bookingSessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoActiveSession
		}
		return nil, err
	}

	var session domain.BookingSession

	err = json.Unmarshal(payload, &session)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking session: %w", err)
	}

	return &session, nil
}

func (app *Application) saveBookingSession(ctx context.Context, sessionID string, session *domain.BookingSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}

	return app.redis.Set(ctx, bookingSessionKey(sessionID), payload, bookingSessionTTL).Err()
}

func (app *Application) deleteBookingSession(ctx context.Context, sessionID string) error {
	return app.redis.Del(ctx, bookingSessionKey(sessionID)).Err()
}

// migrateSessionData rebinds the booking session after a token renewal, so
// logging in mid-booking does not drop the seats and cart.
func (app *Application) migrateSessionData(ctx context.Context, oldSessionID, newSessionID string) error {
	payload, err := app.redis.Get(ctx, bookingSessionKey(oldSessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to get booking session for %s: %w", oldSessionID, err)
	}

	ttl, err := app.redis.TTL(ctx, bookingSessionKey(oldSessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to get booking session TTL for %s: %w", oldSessionID, err)
	}

	if ttl <= 0 {
		ttl = bookingSessionTTL
	}

	pipe := app.redis.TxPipeline()
	pipe.Set(ctx, bookingSessionKey(newSessionID), payload, ttl)
	pipe.Del(ctx, bookingSessionKey(oldSessionID))

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to migrate booking session from %s to %s: %w", oldSessionID, newSessionID, err)
	}

	return nil
}
