package web

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/baigashl/blog/internal/session"
	"github.com/go-chi/chi/v5"
)

// ==========================
// Profile (any user's public profile + their posts)
// ==========================
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user, err := h.Users.GetByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		userNotFound(w, id)
		return
	}
	if err != nil {
		log.Printf("profile: get user %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	posts, err := h.Posts.ListByAuthor(r.Context(), id)
	if err != nil {
		log.Printf("profile: list posts for user %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "profile.html", map[string]interface{}{
		"User":  user,
		"Posts": posts,
	})
}

// ==========================
// Current profile (session user)
// ==========================
func (h *Handler) CurrentProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusFound)
		return
	}

	posts, err := h.Posts.ListByAuthor(r.Context(), user.ID)
	if err != nil {
		log.Printf("current_profile: list posts for user %d: %v", user.ID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "profile.html", map[string]interface{}{
		"User":  user,
		"Posts": posts,
	})
}
