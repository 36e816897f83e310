package web

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ziadkadry99/wonderchile/internal/audit"
	"github.com/ziadkadry99/wonderchile/internal/auth"
	"github.com/ziadkadry99/wonderchile/internal/catalog"
	"github.com/ziadkadry99/wonderchile/internal/db"
	"github.com/ziadkadry99/wonderchile/internal/ui"
)

var galleryPhotos = []string{
	"https://example.com/1.jpg", "https://example.com/2.jpg", "https://example.com/3.jpg",
	"https://example.com/4.jpg", "https://example.com/5.jpg", "https://example.com/6.jpg",
}

type fixture struct {
	db       *db.DB
	users    *auth.Store
	sessions *auth.Sessions
	catalog  *catalog.Store
	audit    *audit.Store
	router   chi.Router
}

func setup(t *testing.T) *fixture {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	f := &fixture{
		db:       database,
		users:    auth.NewStore(database),
		sessions: auth.NewSessions(database, "test-secret", time.Hour),
		catalog:  catalog.NewStore(database),
		audit:    audit.NewStore(database),
	}

	web, err := New(Deps{
		DB:       database,
		Users:    f.users,
		Sessions: f.sessions,
		Catalog:  f.catalog,
		Uploads:  catalog.NewUploads(t.TempDir(), []string{"*.{png,jpg}"}, 1<<20),
		Audit:    f.audit,
		Gallery:  ui.NewGallery(galleryPhotos),
		Logger:   zap.NewNop(),
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(f.sessions.Load)
	web.RegisterRoutes(r)
	f.router = r
	return f
}

// login creates a user with role and returns its session cookie.
func (f *fixture) login(t *testing.T, email string, role auth.Role) *http.Cookie {
	t.Helper()
	_, err := f.users.CreateUser(context.Background(), auth.NewUser{
		Name: "Usuario", Email: email, Password: "secreto123", Role: role,
	})
	require.NoError(t, err)

	w := f.postForm("/login", url.Values{"email": {email}, "password": {"secreto123"}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func (f *fixture) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHomeAnonymous(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.catalog.CreateTrip(ctx, catalog.NewTrip{Title: "Atacama", Description: "Cielos **estrellados**", Price: 95000})
	f.catalog.CreateTrip(ctx, catalog.NewTrip{Title: "Gira Sur", Price: 150000, Type: catalog.TripStudy})

	w := f.get("/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := ui.Parse(w.Body)
	require.NoError(t, err)

	cards := doc.QuerySelectorAll(".instagram-card")
	require.Len(t, cards, 6)
	for i, card := range cards {
		img := ui.QuerySelector(card, "img")
		assert.Equal(t, galleryPhotos[i], ui.Attr(img, "src"))
	}

	assert.NotNil(t, doc.QuerySelector("nav"))
	assert.NotNil(t, doc.GetElementByID("nav-menu"))
	assert.NotNil(t, doc.QuerySelector(".menu-toggle"))
	assert.Nil(t, doc.QuerySelector(".dropdown"), "anonymous visitors get no admin menu")

	page := doc.String()
	assert.Contains(t, page, "<strong>estrellados</strong>")
	assert.Contains(t, page, "$95.000")
	assert.Contains(t, page, "Gira Sur")
	assert.Contains(t, page, `href="/login"`)
}

func TestHomeAdminMenu(t *testing.T) {
	f := setup(t)
	cookie := f.login(t, "admin@wonderchile.cl", auth.RoleAdmin)

	w := f.get("/", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := ui.Parse(w.Body)
	require.NoError(t, err)
	require.NotNil(t, doc.QuerySelector(".dropdown"))
	require.NotNil(t, doc.QuerySelector(".dropdown-content"))

	menu := ui.NewAdminMenu()
	menu.Mount(doc)
	defer menu.Unmount()
	doc.Click(doc.QuerySelector(".dropdown-toggle"))
	assert.True(t, menu.IsOpen())
	doc.Click(doc.GetElementByID("instagram-photos"))
	assert.False(t, menu.IsOpen())
}

func TestLogin(t *testing.T) {
	f := setup(t)

	t.Run("form", func(t *testing.T) {
		w := f.get("/login", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `action="/login"`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := f.postForm("/login", url.Values{"email": {"nadie@example.com"}, "password": {"x"}}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), msgBadCredentials)
	})

	t.Run("invalid email", func(t *testing.T) {
		w := f.postForm("/login", url.Values{"email": {"nadie"}, "password": {"x"}}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("success and logout", func(t *testing.T) {
		cookie := f.login(t, "juan@example.com", auth.RoleUser)
		assert.True(t, cookie.HttpOnly)

		entries, err := f.audit.Query(context.Background(), audit.QueryFilter{Action: audit.ActionLogin})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "juan@example.com", entries[0].ActorID)

		w := f.get("/logout", cookie)
		assert.Equal(t, http.StatusSeeOther, w.Code)

		_, err = f.sessions.Lookup(context.Background(), cookie.Value)
		assert.ErrorIs(t, err, auth.ErrNotFound)
	})
}

func TestAdminRequiresAdmin(t *testing.T) {
	f := setup(t)
	userCookie := f.login(t, "juan@example.com", auth.RoleUser)

	for _, path := range []string{"/admin", "/admin/viajes", "/admin/viajes/agregar"} {
		for name, cookie := range map[string]*http.Cookie{"anonymous": nil, "user": userCookie} {
			w := f.get(path, cookie)
			assert.Equal(t, http.StatusFound, w.Code, "%s as %s", path, name)
			assert.Equal(t, "/login", w.Header().Get("Location"))
		}
	}
}

func TestAdminPages(t *testing.T) {
	f := setup(t)
	cookie := f.login(t, "admin@wonderchile.cl", auth.RoleAdmin)
	f.catalog.CreateContact(context.Background(), catalog.NewContact{Name: "Ana", Email: "ana@example.com", Message: "Hola"})

	w := f.get("/admin", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Usuarios: 1")
	assert.Contains(t, w.Body.String(), "ana@example.com")

	w = f.get("/admin/viajes/agregar", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}

func multipartTrip(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("imagen", filename)
		require.NoError(t, err)
		fw.Write(content)
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestAddAndDeleteTrip(t *testing.T) {
	f := setup(t)
	cookie := f.login(t, "admin@wonderchile.cl", auth.RoleAdmin)
	ctx := context.Background()

	body, ct := multipartTrip(t, map[string]string{
		"titulo": "Isla de Pascua", "descripcion": "Moai", "precio": "150000", "tipo": "viaje",
	}, "rapa nui.png", []byte("png"))
	req := httptest.NewRequest(http.MethodPost, "/admin/viajes/agregar", body)
	req.Header.Set("Content-Type", ct)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(t, "/admin/viajes", w.Header().Get("Location"))

	trips, err := f.catalog.ListTrips(ctx, catalog.TripStandard)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.True(t, strings.HasPrefix(trips[0].Image, catalog.UploadURLPrefix))
	assert.True(t, strings.HasSuffix(trips[0].Image, "_rapa_nui.png"))

	img := f.get(trips[0].Image, nil)
	assert.Equal(t, http.StatusOK, img.Code)
	assert.Equal(t, "png", img.Body.String())

	list := f.get("/admin/viajes", cookie)
	assert.Contains(t, list.Body.String(), "Isla de Pascua")
	assert.Contains(t, list.Body.String(), "$150.000")

	w = f.postForm("/admin/viajes/"+strconv.FormatInt(trips[0].ID, 10)+"/delete", nil, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	trips, err = f.catalog.ListTrips(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, trips)

	entries, err := f.audit.Query(ctx, audit.QueryFilter{ActorID: "admin@wonderchile.cl"})
	require.NoError(t, err)
	var actions []audit.Action
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	assert.Contains(t, actions, audit.ActionTripCreated)
	assert.Contains(t, actions, audit.ActionTripDeleted)
}

func TestAddTripErrors(t *testing.T) {
	f := setup(t)
	cookie := f.login(t, "admin@wonderchile.cl", auth.RoleAdmin)

	tests := []struct {
		name     string
		fields   map[string]string
		filename string
		wantMsg  string
	}{
		{"bad price", map[string]string{"titulo": "X", "precio": "caro"}, "", "Precio inválido"},
		{"bad image type", map[string]string{"titulo": "X", "precio": "1"}, "virus.exe", "Tipo de imagen no permitido"},
		{"missing title", map[string]string{"titulo": "", "precio": "1"}, "", "Datos del viaje inválidos"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartTrip(t, tt.fields, tt.filename, []byte("data"))
			req := httptest.NewRequest(http.MethodPost, "/admin/viajes/agregar", body)
			req.Header.Set("Content-Type", ct)
			req.AddCookie(cookie)
			w := httptest.NewRecorder()
			f.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
		})
	}
}

func TestStaticAssets(t *testing.T) {
	f := setup(t)

	w := f.get("/static/js/script.js", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/verificar_sesion")
	assert.Contains(t, w.Body.String(), "/agregar_carrito")

	w = f.get("/static/css/style.css", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")

	w = f.get("/static/uploads/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFormatCLP(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1.000"},
		{120000, "$120.000"},
		{1234567.6, "$1.234.568"},
	}
	for _, tt := range tests {
		if got := formatCLP(tt.in); got != tt.want {
			t.Errorf("formatCLP(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
