package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ziadkadry99/wonderchile/internal/db"
)

var validate = validator.New()

// Store provides CRUD operations for trips, promotions and contact messages.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// ListTrips returns all trips ordered by id. An empty tripType lists every type.
func (s *Store) ListTrips(ctx context.Context, tripType TripType) ([]Trip, error) {
	query := `SELECT id, titulo, descripcion, precio, imagen, tipo FROM viajes`
	var args []any
	if tripType != "" {
		query += ` WHERE tipo = ?`
		args = append(args, string(tripType))
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		var (
			t   Trip
			typ string
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Price, &t.Image, &typ); err != nil {
			return nil, fmt.Errorf("scanning trip: %w", err)
		}
		t.Type = TripType(typ)
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// GetTrip retrieves a single trip.
func (s *Store) GetTrip(ctx context.Context, id int64) (*Trip, error) {
	var (
		t   Trip
		typ string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, titulo, descripcion, precio, imagen, tipo FROM viajes WHERE id = ?`, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.Price, &t.Image, &typ)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying trip %d: %w", id, err)
	}
	t.Type = TripType(typ)
	return &t, nil
}

// CreateTrip validates and inserts a trip. A trip with the same title and
// type as an existing one is ignored and reported with created=false.
func (s *Store) CreateTrip(ctx context.Context, nt NewTrip) (trip *Trip, created bool, err error) {
	nt.Title = strings.TrimSpace(nt.Title)
	if nt.Type == "" {
		nt.Type = TripStandard
	}
	if err := validate.Struct(nt); err != nil {
		return nil, false, fmt.Errorf("validating trip: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO viajes (titulo, descripcion, precio, imagen, tipo) VALUES (?, ?, ?, ?, ?)`,
		nt.Title, nt.Description, nt.Price, nt.Image, string(nt.Type))
	if err != nil {
		return nil, false, fmt.Errorf("inserting trip: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, false, nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, false, fmt.Errorf("reading trip id: %w", err)
	}
	trip, err = s.GetTrip(ctx, id)
	return trip, err == nil, err
}

// DeleteTrip removes a trip. It reports whether a row was deleted.
func (s *Store) DeleteTrip(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM viajes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting trip %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}
	return n > 0, nil
}

// ListPromotions returns all promotions ordered by id.
func (s *Store) ListPromotions(ctx context.Context) ([]Promotion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, titulo, descripcion, descuento, imagen FROM promociones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying promotions: %w", err)
	}
	defer rows.Close()

	var promos []Promotion
	for rows.Next() {
		var p Promotion
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Discount, &p.Image); err != nil {
			return nil, fmt.Errorf("scanning promotion: %w", err)
		}
		promos = append(promos, p)
	}
	return promos, rows.Err()
}

// CreatePromotion validates and inserts a promotion. Duplicate titles are
// ignored and reported with created=false.
func (s *Store) CreatePromotion(ctx context.Context, np NewPromotion) (bool, error) {
	if err := validate.Struct(np); err != nil {
		return false, fmt.Errorf("validating promotion: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO promociones (titulo, descripcion, descuento, imagen) VALUES (?, ?, ?, ?)`,
		np.Title, np.Description, np.Discount, np.Image)
	if err != nil {
		return false, fmt.Errorf("inserting promotion: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// CreateContact validates and stores a contact-form message.
func (s *Store) CreateContact(ctx context.Context, nc NewContact) (int64, error) {
	nc.Email = strings.TrimSpace(nc.Email)
	if err := validate.Struct(nc); err != nil {
		return 0, fmt.Errorf("validating contact: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contactos (nombre, email, mensaje) VALUES (?, ?, ?)`,
		nc.Name, nc.Email, nc.Message)
	if err != nil {
		return 0, fmt.Errorf("inserting contact: %w", err)
	}
	return res.LastInsertId()
}

// ListContacts returns contact messages, newest first.
func (s *Store) ListContacts(ctx context.Context) ([]Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, nombre, email, mensaje, fecha FROM contactos ORDER BY fecha DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var (
			c  Contact
			ts db.Timestamp
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &ts); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		c.Date = ts.Time
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
