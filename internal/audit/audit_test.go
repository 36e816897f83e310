package audit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ziadkadry99/wonderchile/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestLogAndGetByID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	entry := Entry{
		ID:      "test-1",
		ActorID: "admin@wonderchile.cl",
		Action:  ActionTripCreated,
		Subject: "Torres del Paine",
		Detail:  "precio=120000",
	}

	if err := store.Log(ctx, entry); err != nil {
		t.Fatalf("Log: %v", err)
	}

	got, err := store.GetByID(ctx, "test-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if got.ActorID != "admin@wonderchile.cl" {
		t.Errorf("ActorID = %q, want %q", got.ActorID, "admin@wonderchile.cl")
	}
	if got.Action != ActionTripCreated {
		t.Errorf("Action = %q, want %q", got.Action, ActionTripCreated)
	}
	if got.Subject != "Torres del Paine" {
		t.Errorf("Subject = %q", got.Subject)
	}
	if got.Detail != "precio=120000" {
		t.Errorf("Detail = %q", got.Detail)
	}
	if got.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestLogGeneratesUUID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Log(ctx, Entry{ActorID: "juan@example.com", Action: ActionCartAdd, Subject: "Tour Santiago"}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	entries, err := store.Query(ctx, QueryFilter{ActorID: "juan@example.com"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID == "" {
		t.Error("expected generated ID, got empty string")
	}
}

func TestQueryFilterByActor(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for _, actor := range []string{"ana@example.com", "pedro@example.com", "ana@example.com"} {
		if err := store.Log(ctx, Entry{ActorID: actor, Action: ActionLogin}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	entries, err := store.Query(ctx, QueryFilter{ActorID: "ana@example.com"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries for ana, got %d", len(entries))
	}
}

func TestQueryFilterByAction(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for _, a := range []Action{ActionCartAdd, ActionLogin, ActionCartAdd} {
		if err := store.Log(ctx, Entry{ActorID: "maria@example.com", Action: a}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	entries, err := store.Query(ctx, QueryFilter{Action: ActionCartAdd})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 cart_add entries, got %d", len(entries))
	}
}

func TestQueryNewestFirstWithLimitOffset(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := store.Log(ctx, Entry{
			ID:        string(rune('a' + i)),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Action:    ActionLogin,
		}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	entries, err := store.Query(ctx, QueryFilter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "d" || entries[1].ID != "c" {
		t.Errorf("got ids %q,%q; want d,c", entries[0].ID, entries[1].ID)
	}

	since := base.Add(3 * time.Minute)
	recent, err := store.Query(ctx, QueryFilter{Since: &since})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 entries since %s, got %d", since, len(recent))
	}
}

func TestRoutes(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Log(ctx, Entry{ID: "e1", ActorID: "admin@wonderchile.cl", Action: ActionTripDeleted, Subject: "7"}); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if err := store.Log(ctx, Entry{ID: "e2", ActorID: "juan@example.com", Action: ActionCartAdd}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/auditoria/?action=trip_deleted", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var entries []Entry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "e1" {
		t.Errorf("unexpected entries %+v", entries)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/auditoria/e2", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/auditoria/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
