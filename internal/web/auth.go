package web

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/baigashl/blog/internal/metrics"
	"github.com/baigashl/blog/internal/password"
	"github.com/lib/pq"
)

// ==========================
// Register
// ==========================
func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register.html", nil)
}

func (h *Handler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")
	name := r.FormValue("name")
	secondName := r.FormValue("second_name")
	pw := r.FormValue("password")
	age, _ := strconv.Atoi(r.FormValue("age"))

	// Uniqueness is checked up front; the DB constraint still backs it, so a
	// racing duplicate surfaces as a unique violation below.
	if _, err := h.Users.GetByEmail(r.Context(), email); err == nil {
		SetFlash(w, MsgDuplicateEmail)
		http.Redirect(w, r, "/register/", http.StatusFound)
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("register: lookup email: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !password.Validate(pw) {
		SetFlash(w, MsgWeakPassword)
		http.Redirect(w, r, "/register/", http.StatusFound)
		return
	}

	hash, err := password.Hash(pw)
	if err != nil {
		log.Printf("register: hash password: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := h.Users.Create(r.Context(), email, name, secondName, hash, age); err != nil {
		if e, ok := err.(*pq.Error); ok && e.Code == "23505" {
			SetFlash(w, MsgDuplicateEmail)
			http.Redirect(w, r, "/register/", http.StatusFound)
			return
		}
		log.Printf("register: create user: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	metrics.IncUsersRegistered()
	http.Redirect(w, r, "/login/", http.StatusFound)
}

// ==========================
// Login
// ==========================
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", nil)
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")
	pw := r.FormValue("password")

	// Unknown email and wrong password take the same path so the response
	// cannot be used to enumerate accounts.
	user, err := h.Users.GetByEmail(r.Context(), email)
	if err != nil || !password.Check(user.PasswordHash, pw) {
		SetFlash(w, MsgInvalidCredentials)
		http.Redirect(w, r, "/login/", http.StatusFound)
		return
	}

	token, err := h.Sessions.Issue(user.ID)
	if err != nil {
		log.Printf("login: issue session: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.Sessions.SetCookie(w, token)
	http.Redirect(w, r, "/current_profile/", http.StatusFound)
}

// ==========================
// Logout (idempotent)
// ==========================
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.ClearCookie(w)
	http.Redirect(w, r, "/login/", http.StatusFound)
}
