// Package web serves the server-rendered HTML surface of the blog: post
// listing and CRUD, registration, login, and profiles.
package web

import (
	"fmt"
	"net/http"

	"github.com/baigashl/blog/internal/repo"
	"github.com/baigashl/blog/internal/session"
)

// Flash messages for the recoverable registration/login failures. The login
// message is deliberately generic so it does not reveal whether the email
// exists.
const (
	MsgDuplicateEmail     = "Email address already exists"
	MsgWeakPassword       = "wrong password"
	MsgInvalidCredentials = "Please check your login details and try again."
)

// ==========================
// Handler
// ==========================
type Handler struct {
	Users    *repo.UserRepo
	Posts    *repo.PostRepo
	Audit    *repo.AuditRepo
	Sessions *session.Manager
}

// postNotFound writes the plain-text body used for a missing post. Ownership
// failures on mutation produce the same body, so a non-author cannot tell a
// protected post from an absent one.
func postNotFound(w http.ResponseWriter, id int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, "Post with id = %d does not exist", id)
}

func userNotFound(w http.ResponseWriter, id int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, "User with id = %d does not exist", id)
}
