package web

import (
	"errors"
	"log"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/baigashl/blog/internal/authz"
	"github.com/baigashl/blog/internal/metrics"
	"github.com/baigashl/blog/internal/repo"
	"github.com/baigashl/blog/internal/session"
	"github.com/go-chi/chi/v5"
)

// ==========================
// Index (public, insertion order)
// ==========================
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.List(r.Context())
	if err != nil {
		log.Printf("index: list posts: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "index.html", map[string]interface{}{
		"Posts": posts,
	})
}

// ==========================
// Detail (public)
// ==========================
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.Posts.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrPostNotFound) {
		postNotFound(w, id)
		return
	}
	if err != nil {
		log.Printf("detail: get post %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "post_detail.html", map[string]interface{}{
		"Post": post,
	})
}

// ==========================
// Create (auth required)
// ==========================
func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "create.html", nil)
}

func (h *Handler) CreateSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	// Title and description are stored as submitted; empty values are permitted.
	title := r.FormValue("title")
	description := r.FormValue("description")

	post, err := h.Posts.Create(r.Context(), title, description, user.ID)
	if err != nil {
		log.Printf("create: insert post: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if h.Audit != nil {
		_ = h.Audit.Log(r.Context(), user.ID, "create", "post", post.ID, "")
	}
	metrics.IncPostsMutated("create")

	http.Redirect(w, r, "/", http.StatusFound)
}

// ==========================
// Update (auth required; ownership checked on POST only)
// ==========================
func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.Posts.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrPostNotFound) {
		postNotFound(w, id)
		return
	}
	if err != nil {
		log.Printf("update: get post %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "update.html", map[string]interface{}{
		"Post": post,
	})
}

func (h *Handler) UpdateSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusFound)
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.Posts.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrPostNotFound) {
		postNotFound(w, id)
		return
	}
	if err != nil {
		log.Printf("update: get post %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if d := authz.CanModifyPost(user, post); !d.Allowed() {
		// A non-author gets the not-found body, not a forbidden page.
		slog.Info("update denied", "post_id", id, "user_id", user.ID, "reason", d.Reason())
		postNotFound(w, id)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	title := r.FormValue("title")
	description := r.FormValue("description")

	// Both fields are always rewritten together; there is no partial update.
	if _, err := h.Posts.Update(r.Context(), id, title, description); err != nil {
		if errors.Is(err, repo.ErrPostNotFound) {
			postNotFound(w, id)
			return
		}
		log.Printf("update: update post %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if h.Audit != nil {
		_ = h.Audit.Log(r.Context(), user.ID, "update", "post", id, "")
	}
	metrics.IncPostsMutated("update")

	http.Redirect(w, r, "/"+strconv.Itoa(id)+"/", http.StatusFound)
}

// ==========================
// Delete (auth required; ownership checked on POST only)
// ==========================
func (h *Handler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.Posts.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrPostNotFound) {
		postNotFound(w, id)
		return
	}
	if err != nil {
		log.Printf("delete: get post %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "delete.html", map[string]interface{}{
		"Post": post,
	})
}

func (h *Handler) DeleteSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusFound)
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.Posts.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrPostNotFound) {
		postNotFound(w, id)
		return
	}
	if err != nil {
		log.Printf("delete: get post %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if d := authz.CanModifyPost(user, post); !d.Allowed() {
		slog.Info("delete denied", "post_id", id, "user_id", user.ID, "reason", d.Reason())
		postNotFound(w, id)
		return
	}

	if err := h.Posts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrPostNotFound) {
			postNotFound(w, id)
			return
		}
		log.Printf("delete: delete post %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if h.Audit != nil {
		_ = h.Audit.Log(r.Context(), user.ID, "delete", "post", id, "")
	}
	metrics.IncPostsMutated("delete")

	http.Redirect(w, r, "/", http.StatusFound)
}
