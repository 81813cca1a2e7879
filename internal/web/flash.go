package web

import (
	"net/http"
	"net/url"
)

// flashCookie carries a one-shot notice across a redirect.
const flashCookie = "blog_flash"

// SetFlash stores msg so the next rendered page shows it once.
func SetFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash message, clearing it so it is shown
// exactly once. Empty string when there is none.
func PopFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}
