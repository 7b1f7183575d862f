package repository

import (
	"context"
	"errors"

	"github.com/eventura/booking-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

func (p *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id,
			session_id,
			method,
			amount,
			currency,
			status,
			movie_title,
			theatre_name,
			showtime,
			seats,
			ticket_count
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		payment.ID,
		payment.SessionID,
		payment.Method,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.MovieTitle,
		payment.TheatreName,
		payment.Showtime,
		payment.Seats,
		payment.TicketCount,
	).Scan(&payment.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return domain.ErrDuplicatePayment
	}

	return err
}

func (p *PostgresPaymentRepository) GetById(ctx context.Context, id string) (*domain.Payment, error) {
	query := `
		SELECT id, session_id, method, amount, currency, status,
		       movie_title, theatre_name, showtime, seats, ticket_count, created_at
		FROM payments
		WHERE id = $1
	`

	var payment domain.Payment

	err := p.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.SessionID,
		&payment.Method,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.MovieTitle,
		&payment.TheatreName,
		&payment.Showtime,
		&payment.Seats,
		&payment.TicketCount,
		&payment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &payment, nil
}
