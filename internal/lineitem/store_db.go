package lineitem

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// Table names the Postgres store may be bound to. See db/schema.sql.
const (
	CartTable     = "cart_items"
	WishlistTable = "wishlist_items"
)

// PostgresStore keeps one table per namespace (cart, wishlist); both
// share the same row shape. The table name comes from the constants
// above, never from user input.
type PostgresStore struct {
	db    *sql.DB
	table string
}

func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	return &PostgresStore{db: db, table: table}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Load(ctx context.Context, clientID string) ([]Item, error) {
	var out []Item

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
			SELECT product_id, title, artist, price_cents, image, quantity
			FROM %s
			WHERE client_id = $1
			ORDER BY position ASC
		`, s.table), clientID)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Item, 0, 8)
		for rows.Next() {
			var it Item
			if err := rows.Scan(&it.ProductID, &it.Title, &it.Artist, &it.PriceCents, &it.Image, &it.Quantity); err != nil {
				return err
			}
			out = append(out, it)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

// Save replaces the client's rows in one transaction so a reader never
// observes a half-applied mutation.
func (s *PostgresStore) Save(ctx context.Context, clientID string, items []Item) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		_, err = tx.ExecContext(ctx, fmt.Sprintf(`
			DELETE FROM %s WHERE client_id = $1
		`, s.table), clientID)
		if err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
			INSERT INTO %s (client_id, product_id, title, artist, price_cents, image, quantity, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.table))
		if err != nil {
			return err
		}
		defer stmt.Close()

		for pos, it := range items {
			if _, err := stmt.ExecContext(ctx, clientID, it.ProductID, it.Title, it.Artist, it.PriceCents, it.Image, it.Quantity, pos); err != nil {
				return err
			}
		}

		return tx.Commit()
	})
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
