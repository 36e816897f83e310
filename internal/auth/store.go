package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/ziadkadry99/wonderchile/internal/db"
)

var validate = validator.New()

// Store provides account operations backed by the usuarios table.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// CreateUser hashes the password and inserts a new account.
func (s *Store) CreateUser(ctx context.Context, nu NewUser) (*User, error) {
	nu.Email = normalizeEmail(nu.Email)
	if nu.Role == "" {
		nu.Role = RoleUser
	}
	if err := validate.Struct(nu); err != nil {
		return nil, fmt.Errorf("validating user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO usuarios (nombre, email, password, role) VALUES (?, ?, ?, ?)`,
		nu.Name, nu.Email, string(hash), string(nu.Role))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading user id: %w", err)
	}
	return s.GetUser(ctx, id)
}

// Authenticate returns the account matching email whose password hash
// matches password.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, nombre, email, role, fecha_registro, password
		FROM usuarios WHERE email = ?`, normalizeEmail(email))

	var (
		u    User
		role string
		ts   db.Timestamp
		hash string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &ts, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	u.Role = Role(role)
	u.CreatedAt = ts.Time
	return &u, nil
}

// GetUser retrieves an account by id.
func (s *Store) GetUser(ctx context.Context, id int64) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, nombre, email, role, fecha_registro
		FROM usuarios WHERE id = ?`, id)

	var (
		u    User
		role string
		ts   db.Timestamp
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying user %d: %w", id, err)
	}
	u.Role = Role(role)
	u.CreatedAt = ts.Time
	return &u, nil
}

// EnsureAdmin creates the administrator account unless an account with
// that email already exists. It reports whether an account was created.
func (s *Store) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	_, err := s.CreateUser(ctx, NewUser{Name: name, Email: email, Password: password, Role: RoleAdmin})
	if errors.Is(err, ErrEmailTaken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
