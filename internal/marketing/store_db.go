package marketing

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
	pgUniqueCode = "23505"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Subscribe(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO newsletter_signups (email, created_at)
			VALUES ($1, $2)
		`, email, time.Now().UTC())

		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			return ErrAlreadySubscribed
		}
		return err
	})
}

func (s *PostgresStore) SaveMessage(ctx context.Context, m Message) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO contact_messages (id, name, email, body, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, m.ID, m.Name, m.Email, m.Body, m.CreatedAt)
		return err
	})
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueCode
}
