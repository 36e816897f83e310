package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ziadkadry99/wonderchile/internal/audit"
	"github.com/ziadkadry99/wonderchile/internal/auth"
	"github.com/ziadkadry99/wonderchile/internal/catalog"
	"github.com/ziadkadry99/wonderchile/internal/db"
	"github.com/ziadkadry99/wonderchile/internal/ui"
)

const msgBadCredentials = "Credenciales incorrectas"

var validate = validator.New()

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type tripView struct {
	catalog.Trip
	Description template.HTML
}

type tripSection struct {
	Anchor  string
	Heading string
	Trips   []tripView
}

type homePage struct {
	User       *auth.User
	Sections   []tripSection
	Promotions []catalog.Promotion
}

type loginPage struct {
	User  *auth.User
	Email string
	Error string
}

type adminPage struct {
	User     *auth.User
	Stats    map[string]int
	Contacts []catalog.Contact
}

type adminTripsPage struct {
	User  *auth.User
	Trips []catalog.Trip
}

type addTripPage struct {
	User  *auth.User
	Error string
}

var sections = []struct {
	tripType catalog.TripType
	anchor   string
	heading  string
}{
	{catalog.TripStandard, "viajes", "Viajes"},
	{catalog.TripStudy, "giras", "Giras de estudio"},
	{catalog.TripWomen, "mujeres", "Viajes solo mujeres"},
}

// RegisterRoutes mounts the public pages, the admin pages and the static
// assets. The session middleware must run before these routes.
func (web *Web) RegisterRoutes(r chi.Router) {
	r.Get("/", web.handleHome)
	r.Get("/login", web.handleLoginForm)
	r.Post("/login", web.handleLogin)
	r.Get("/logout", web.handleLogout)
	web.registerStatic(r)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Get("/admin", web.handleAdmin)
		r.Get("/admin/viajes", web.handleAdminTrips)
		r.Get("/admin/viajes/agregar", web.handleAddTripForm)
		r.Post("/admin/viajes/agregar", web.handleAddTrip)
		r.Post("/admin/viajes/{id}/delete", web.handleDeleteTrip)
	})
}

func currentUser(r *http.Request) *auth.User {
	u, _ := auth.UserFromContext(r.Context())
	return u
}

func (web *Web) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := homePage{User: currentUser(r)}

	trips, err := web.deps.Catalog.ListTrips(ctx, "")
	if err != nil {
		web.deps.Logger.Error("listing trips", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	byType := make(map[catalog.TripType][]tripView)
	for _, t := range trips {
		byType[t.Type] = append(byType[t.Type], tripView{Trip: t, Description: catalog.RenderDescription(t.Description)})
	}
	for _, s := range sections {
		page.Sections = append(page.Sections, tripSection{Anchor: s.anchor, Heading: s.heading, Trips: byType[s.tripType]})
	}

	page.Promotions, err = web.deps.Catalog.ListPromotions(ctx)
	if err != nil {
		web.deps.Logger.Error("listing promotions", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := web.pages["index"].ExecuteTemplate(&buf, "layout", page); err != nil {
		web.deps.Logger.Error("rendering page", zap.String("page", "index"), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Fill the gallery mount point before the page leaves the server.
	doc, err := ui.Parse(&buf)
	if err != nil {
		web.deps.Logger.Error("parsing home page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.deps.Gallery.OnLoad(doc)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := doc.Render(w); err != nil {
		web.deps.Logger.Warn("writing home page", zap.Error(err))
	}
}

func (web *Web) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	web.render(w, http.StatusOK, "login", loginPage{User: currentUser(r)})
}

func (web *Web) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := loginForm{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}

	fail := func() {
		web.render(w, http.StatusUnauthorized, "login", loginPage{Email: form.Email, Error: msgBadCredentials})
	}
	if err := validate.Struct(form); err != nil {
		fail()
		return
	}

	ctx := r.Context()
	user, err := web.deps.Users.Authenticate(ctx, form.Email, form.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		web.deps.Logger.Info("login rejected", zap.String("email", form.Email))
		fail()
		return
	}
	if err != nil {
		web.deps.Logger.Error("authenticating", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	token, err := web.deps.Sessions.Create(ctx, user.ID)
	if err != nil {
		web.deps.Logger.Error("creating session", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.deps.Sessions.SetCookie(w, token, web.deps.SecureCookies)
	web.logAudit(r, user, audit.ActionLogin, user.Email, "")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (web *Web) handleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.CookieName); err == nil {
		if err := web.deps.Sessions.Delete(r.Context(), c.Value); err != nil {
			web.deps.Logger.Warn("deleting session", zap.Error(err))
		}
	}
	if u := currentUser(r); u != nil {
		web.logAudit(r, u, audit.ActionLogout, u.Email, "")
	}
	auth.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (web *Web) handleAdmin(w http.ResponseWriter, r *http.Request) {
	stats := make(map[string]int, len(db.Tables))
	for _, table := range db.Tables {
		n, err := web.deps.DB.Count(table)
		if err != nil {
			web.deps.Logger.Error("counting rows", zap.String("table", table), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		stats[table] = n
	}
	contacts, err := web.deps.Catalog.ListContacts(r.Context())
	if err != nil {
		web.deps.Logger.Error("listing contacts", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.render(w, http.StatusOK, "admin", adminPage{User: currentUser(r), Stats: stats, Contacts: contacts})
}

func (web *Web) handleAdminTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := web.deps.Catalog.ListTrips(r.Context(), "")
	if err != nil {
		web.deps.Logger.Error("listing trips", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.render(w, http.StatusOK, "admin_trips", adminTripsPage{User: currentUser(r), Trips: trips})
}

func (web *Web) handleAddTripForm(w http.ResponseWriter, r *http.Request) {
	web.render(w, http.StatusOK, "add_trip", addTripPage{User: currentUser(r)})
}

func (web *Web) handleAddTrip(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	formError := func(msg string) {
		web.render(w, http.StatusBadRequest, "add_trip", addTripPage{User: user, Error: msg})
	}

	if web.deps.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, web.deps.MaxUploadBytes+1<<20)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		formError("No se pudo leer el formulario")
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("precio")), 64)
	if err != nil {
		formError("Precio inválido")
		return
	}
	nt := catalog.NewTrip{
		Title:       r.FormValue("titulo"),
		Description: r.FormValue("descripcion"),
		Price:       price,
		Type:        catalog.TripType(r.FormValue("tipo")),
	}

	file, header, err := r.FormFile("imagen")
	switch {
	case err == nil:
		defer file.Close()
		if header.Filename != "" {
			nt.Image, err = web.deps.Uploads.Save(header.Filename, file)
			if errors.Is(err, catalog.ErrFileNotAllowed) {
				formError("Tipo de imagen no permitido")
				return
			}
			if err != nil {
				web.deps.Logger.Error("saving upload", zap.Error(err))
				formError("No se pudo guardar la imagen")
				return
			}
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		formError("No se pudo leer la imagen")
		return
	}

	trip, created, err := web.deps.Catalog.CreateTrip(r.Context(), nt)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			formError("Datos del viaje inválidos")
			return
		}
		web.deps.Logger.Error("creating trip", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !created {
		formError("Ya existe un viaje con ese título")
		return
	}

	web.logAudit(r, user, audit.ActionTripCreated, trip.Title, fmt.Sprintf("id=%d precio=%.0f", trip.ID, trip.Price))
	web.publish("trip_created", map[string]any{"id": trip.ID, "titulo": trip.Title})
	http.Redirect(w, r, "/admin/viajes", http.StatusSeeOther)
}

func (web *Web) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	deleted, err := web.deps.Catalog.DeleteTrip(r.Context(), id)
	if err != nil {
		web.deps.Logger.Error("deleting trip", zap.Int64("id", id), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if deleted {
		web.logAudit(r, currentUser(r), audit.ActionTripDeleted, strconv.FormatInt(id, 10), "")
		web.publish("trip_deleted", map[string]any{"id": id})
	}
	http.Redirect(w, r, "/admin/viajes", http.StatusSeeOther)
}

func (web *Web) logAudit(r *http.Request, user *auth.User, action audit.Action, subject, detail string) {
	if web.deps.Audit == nil {
		return
	}
	actor := ""
	if user != nil {
		actor = user.Email
	}
	if err := web.deps.Audit.Log(r.Context(), audit.Entry{
		ActorID: actor, Action: action, Subject: subject, Detail: detail,
	}); err != nil {
		web.deps.Logger.Warn("audit log failed", zap.Error(err))
	}
}

func (web *Web) publish(eventType string, payload any) {
	if web.deps.Publisher != nil {
		web.deps.Publisher.Publish(eventType, payload)
	}
}
