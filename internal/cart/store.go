package cart

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/wonderchile/internal/db"
)

// Store persists cart rows.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Add appends paquete to the user's cart and returns the stored item.
func (s *Store) Add(ctx context.Context, userID int64, paquete string) (*Item, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO carrito (usuario_id, paquete) VALUES (?, ?)`, userID, paquete)
	if err != nil {
		return nil, fmt.Errorf("inserting cart item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading cart item id: %w", err)
	}

	var (
		item Item
		ts   db.Timestamp
	)
	err = s.db.QueryRowContext(ctx,
		`SELECT id, usuario_id, paquete, fecha FROM carrito WHERE id = ?`, id).
		Scan(&item.ID, &item.UserID, &item.Paquete, &ts)
	if err != nil {
		return nil, fmt.Errorf("reading cart item %d: %w", id, err)
	}
	item.AddedAt = ts.Time
	return &item, nil
}

// List returns the user's cart items in insertion order.
func (s *Store) List(ctx context.Context, userID int64) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, usuario_id, paquete, fecha FROM carrito WHERE usuario_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying cart: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var (
			item Item
			ts   db.Timestamp
		)
		if err := rows.Scan(&item.ID, &item.UserID, &item.Paquete, &ts); err != nil {
			return nil, fmt.Errorf("scanning cart item: %w", err)
		}
		item.AddedAt = ts.Time
		items = append(items, item)
	}
	return items, rows.Err()
}

// Count returns the number of items in the user's cart.
func (s *Store) Count(ctx context.Context, userID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM carrito WHERE usuario_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting cart: %w", err)
	}
	return n, nil
}
