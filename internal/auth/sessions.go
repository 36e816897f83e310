package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/wonderchile/internal/db"
)

// Sessions issues and resolves login sessions. Only an HMAC of each token
// is stored, so rows read from the database cannot be replayed as cookies.
type Sessions struct {
	db     *db.DB
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessions creates a session store signing token ids with secret.
func NewSessions(database *db.DB, secret string, ttl time.Duration) *Sessions {
	return &Sessions{
		db:     database,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Create starts a session for userID and returns the cookie token.
func (s *Sessions) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	expires := s.now().Add(s.ttl).Unix()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sesiones (id, usuario_id, expires_at) VALUES (?, ?, ?)`,
		s.sign(token), userID, expires)
	if err != nil {
		return "", fmt.Errorf("inserting session: %w", err)
	}
	return token, nil
}

// Lookup resolves a token to its user. Unknown and expired tokens yield
// ErrNotFound.
func (s *Sessions) Lookup(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT u.id, u.nombre, u.email, u.role, u.fecha_registro, se.expires_at
		FROM sesiones se JOIN usuarios u ON u.id = se.usuario_id
		WHERE se.id = ?`, s.sign(token))

	var (
		u       User
		role    string
		ts      db.Timestamp
		expires int64
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &ts, &expires); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying session: %w", err)
	}
	if s.now().Unix() >= expires {
		_ = s.Delete(ctx, token)
		return nil, ErrNotFound
	}
	u.Role = Role(role)
	u.CreatedAt = ts.Time
	return &u, nil
}

// Delete ends the session identified by token. Deleting an unknown token is not an error.
func (s *Sessions) Delete(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sesiones WHERE id = ?`, s.sign(token)); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// PurgeExpired removes every expired session and returns how many were removed.
func (s *Sessions) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sesiones WHERE expires_at <= ?`, s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("purging sessions: %w", err)
	}
	return res.RowsAffected()
}

// TTL returns the session lifetime.
func (s *Sessions) TTL() time.Duration { return s.ttl }

func (s *Sessions) sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
