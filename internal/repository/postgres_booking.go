package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/eventura/booking-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (r *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	breakdown, err := json.Marshal(booking.Breakdown)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (
			id,
			payment_id,
			session_id,
			movie_title,
			theatre_name,
			showtime,
			seats,
			ticket_count,
			breakdown,
			amount,
			currency
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		booking.ID,
		booking.PaymentID,
		booking.SessionID,
		booking.MovieTitle,
		booking.TheatreName,
		booking.Showtime,
		booking.Seats,
		booking.TicketCount,
		breakdown,
		booking.Amount,
		booking.Currency,
	).Scan(&booking.CreatedAt)
}

// GetLatestBySession returns the most recent booking written by the given
// browser session, which is what the confirmation view renders.
func (r *PostgresBookingRepository) GetLatestBySession(ctx context.Context, sessionID string) (*domain.Booking, error) {
	query := `
		SELECT id, payment_id, session_id, movie_title, theatre_name, showtime,
		       seats, ticket_count, breakdown, amount, currency, created_at
		FROM bookings
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var (
		booking   domain.Booking
		breakdown []byte
	)

	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&booking.ID,
		&booking.PaymentID,
		&booking.SessionID,
		&booking.MovieTitle,
		&booking.TheatreName,
		&booking.Showtime,
		&booking.Seats,
		&booking.TicketCount,
		&breakdown,
		&booking.Amount,
		&booking.Currency,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	err = json.Unmarshal(breakdown, &booking.Breakdown)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
