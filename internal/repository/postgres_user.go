package repository

import (
	"context"
	"errors"

	"github.com/eventura/booking-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (r *PostgresUserRepository) UpsertByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	query := `
		INSERT INTO users (mobile)
		VALUES ($1)
		ON CONFLICT (mobile)
		DO UPDATE SET last_login_at = now()
		RETURNING id, mobile, name, email, created_at, last_login_at
	`

	var user domain.User

	err := r.db.QueryRow(ctx, query, mobile).Scan(
		&user.ID,
		&user.Mobile,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *PostgresUserRepository) GetByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	query := `
		SELECT id, mobile, name, email, created_at, last_login_at
		FROM users
		WHERE mobile = $1
	`

	var user domain.User

	err := r.db.QueryRow(ctx, query, mobile).Scan(
		&user.ID,
		&user.Mobile,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &user, nil
}
