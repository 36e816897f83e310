package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ziadkadry99/wonderchile/internal/db"
)

func setupDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func createUser(t *testing.T, s *Store, email string, role Role) *User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), NewUser{
		Name: "Juan Pérez", Email: email, Password: "password123", Role: role,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return u
}

func TestCreateAndAuthenticate(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	u := createUser(t, s, " Juan@Example.com ", "")
	if u.Email != "juan@example.com" {
		t.Errorf("Email = %q, want normalised", u.Email)
	}
	if u.Role != RoleUser {
		t.Errorf("Role = %q, want %q", u.Role, RoleUser)
	}
	if u.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	got, err := s.Authenticate(ctx, "JUAN@example.com", "password123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("ID = %d, want %d", got.ID, u.ID)
	}

	if _, err := s.Authenticate(ctx, "juan@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Authenticate(ctx, "nadie@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	s := NewStore(setupDB(t))
	createUser(t, s, "maria@example.com", RoleUser)

	_, err := s.CreateUser(context.Background(), NewUser{
		Name: "Otra María", Email: "MARIA@example.com", Password: "password123",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	s := NewStore(setupDB(t))
	tests := []NewUser{
		{Name: "", Email: "a@example.com", Password: "password123"},
		{Name: "A", Email: "not-an-email", Password: "password123"},
		{Name: "A", Email: "a@example.com", Password: "123"},
		{Name: "A", Email: "a@example.com", Password: "password123", Role: "root"},
	}
	for _, nu := range tests {
		if _, err := s.CreateUser(context.Background(), nu); err == nil {
			t.Errorf("CreateUser(%+v) should fail validation", nu)
		}
	}
}

func TestGetUserNotFound(t *testing.T) {
	s := NewStore(setupDB(t))
	if _, err := s.GetUser(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	created, err := s.EnsureAdmin(ctx, "Administrador", "admin@wonderchile.cl", "Admin123")
	if err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	if !created {
		t.Error("expected admin to be created on first call")
	}

	created, err = s.EnsureAdmin(ctx, "Administrador", "admin@wonderchile.cl", "Other123")
	if err != nil {
		t.Fatalf("second EnsureAdmin: %v", err)
	}
	if created {
		t.Error("expected second call to be a no-op")
	}

	u, err := s.Authenticate(ctx, "admin@wonderchile.cl", "Admin123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if !u.IsAdmin() {
		t.Error("expected admin role")
	}
}

func TestSessionLifecycle(t *testing.T) {
	database := setupDB(t)
	users := NewStore(database)
	sessions := NewSessions(database, "secret", time.Hour)
	ctx := context.Background()

	u := createUser(t, users, "carlos@example.com", RoleUser)

	token, err := sessions.Create(ctx, u.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := sessions.Lookup(ctx, token)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got.Email != "carlos@example.com" {
		t.Errorf("Email = %q", got.Email)
	}

	var stored string
	if err := database.QueryRow(`SELECT id FROM sesiones`).Scan(&stored); err != nil {
		t.Fatalf("reading session row: %v", err)
	}
	if stored == token {
		t.Error("raw token must not be stored")
	}

	if err := sessions.Delete(ctx, token); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := sessions.Lookup(ctx, token); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete: got %v, want ErrNotFound", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	database := setupDB(t)
	users := NewStore(database)
	sessions := NewSessions(database, "secret", time.Hour)
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return now }

	u := createUser(t, users, "sofia@example.com", RoleUser)
	expiring, err := sessions.Create(ctx, u.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	now = now.Add(30 * time.Minute)
	fresh, err := sessions.Create(ctx, u.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	now = now.Add(45 * time.Minute)
	if _, err := sessions.Lookup(ctx, expiring); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired token: got %v, want ErrNotFound", err)
	}
	if _, err := sessions.Lookup(ctx, fresh); err != nil {
		t.Errorf("fresh token: %v", err)
	}

	now = now.Add(time.Hour)
	n, err := sessions.PurgeExpired(ctx)
	if err != nil {
		t.Fatalf("PurgeExpired: %v", err)
	}
	if n != 1 {
		t.Errorf("purged %d sessions, want 1", n)
	}
}

func TestSessionsSignedWithDifferentSecretDoNotResolve(t *testing.T) {
	database := setupDB(t)
	users := NewStore(database)
	ctx := context.Background()

	u := createUser(t, users, "pedro@example.com", RoleUser)
	token, err := NewSessions(database, "one", time.Hour).Create(ctx, u.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := NewSessions(database, "two", time.Hour).Lookup(ctx, token); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestLoadMiddleware(t *testing.T) {
	database := setupDB(t)
	users := NewStore(database)
	sessions := NewSessions(database, "secret", time.Hour)
	u := createUser(t, users, "ana@example.com", RoleUser)

	token, err := sessions.Create(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var seen *User
	h := sessions.Load(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen == nil || seen.ID != u.ID {
		t.Fatalf("expected user %d in context, got %+v", u.ID, seen)
	}

	seen = nil
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "bogus"})
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != nil {
		t.Error("bogus cookie must not resolve to a user")
	}
}

func TestRequireAdmin(t *testing.T) {
	h := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	tests := []struct {
		name string
		user *User
		want int
	}{
		{"anonymous", nil, http.StatusFound},
		{"customer", &User{ID: 1, Role: RoleUser}, http.StatusFound},
		{"admin", &User{ID: 2, Role: RoleAdmin}, http.StatusTeapot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.user != nil {
				req = req.WithContext(WithUser(req.Context(), tt.user))
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusFound && w.Header().Get("Location") != "/login" {
				t.Errorf("Location = %q, want /login", w.Header().Get("Location"))
			}
		})
	}
}

func TestCookies(t *testing.T) {
	sessions := NewSessions(nil, "secret", 2*time.Hour)

	w := httptest.NewRecorder()
	sessions.SetCookie(w, "tok", false)
	c := w.Result().Cookies()[0]
	if c.Name != CookieName || c.Value != "tok" || !c.HttpOnly || c.MaxAge != 7200 {
		t.Errorf("unexpected cookie %+v", c)
	}

	w = httptest.NewRecorder()
	ClearCookie(w)
	c = w.Result().Cookies()[0]
	if c.MaxAge >= 0 {
		t.Errorf("expected expired cookie, got MaxAge %d", c.MaxAge)
	}
}
