package session

import (
	"context"
	"net/http"

	"github.com/baigashl/blog/internal/models"
	"github.com/baigashl/blog/internal/repo"
)

type key string

const userKey key = "current_user"

// FromContext returns the user loaded by LoadUser, or nil for anonymous requests.
func FromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok && u != nil
}

// WithUser returns a context carrying user as the request identity.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// LoadUser resolves the session cookie once per request and, when it names a
// live user, puts that user into the request context. Handlers read identity
// from the context only; there is no ambient current-user state.
func LoadUser(m *Manager, users *repo.UserRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := m.Resolve(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(r.Context(), id)
			if err != nil {
				// Token names a user that no longer exists; treat as anonymous.
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireAuthenticated refuses anonymous requests with a redirect to the
// login page. The original destination is not preserved.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
