package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/baigashl/blog/internal/config"
	"github.com/baigashl/blog/internal/middleware"
	"github.com/baigashl/blog/internal/repo"
	"github.com/baigashl/blog/internal/session"
	"github.com/baigashl/blog/internal/web"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter wires repos, session manager, and handlers into the full route
// table. Kept separate from main so tests can build the router against a
// mocked database.
func newRouter(db *sql.DB, cfg config.Config) http.Handler {
	userRepo := repo.NewUserRepo(db)
	postRepo := repo.NewPostRepo(db)
	auditRepo := repo.NewAuditRepo(db)

	sessions := session.NewManager(
		[]byte(cfg.SessionSecret),
		time.Duration(cfg.SessionExpireHours)*time.Hour,
	)

	h := &web.Handler{
		Users:    userRepo,
		Posts:    postRepo,
		Audit:    auditRepo,
		Sessions: sessions,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(false))
	r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))
	r.Use(session.LoadUser(sessions, userRepo))

	// Operational endpoints (no auth, no templates)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintln(w, "ready")
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public
	r.Get("/", h.Index)
	r.Get("/register/", h.RegisterForm)
	r.Post("/register/", h.RegisterSubmit)
	r.Get("/login/", h.LoginForm)
	r.Post("/login/", h.LoginSubmit)
	r.Get("/logout/", h.Logout)
	r.Get("/{id:[0-9]+}/", h.Detail)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(session.RequireAuthenticated)
		r.Get("/create/", h.CreateForm)
		r.Post("/create/", h.CreateSubmit)
		r.Get("/{id:[0-9]+}/update/", h.UpdateForm)
		r.Post("/{id:[0-9]+}/update/", h.UpdateSubmit)
		r.Get("/{id:[0-9]+}/delete/", h.DeleteConfirm)
		r.Post("/{id:[0-9]+}/delete/", h.DeleteSubmit)
		r.Get("/profile/{id:[0-9]+}/", h.Profile)
		r.Get("/current_profile/", h.CurrentProfile)
	})

	return r
}
