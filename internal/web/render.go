package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/baigashl/blog/internal/session"
)

//go:embed templates
var templatesFS embed.FS

// render executes a page template inside the shared layout. CurrentUser and
// Flash are injected into every page's data so the navigation bar and the
// one-shot flash notice never need per-handler plumbing.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	if user, ok := session.FromContext(r.Context()); ok {
		data["CurrentUser"] = user
	}
	if msg := PopFlash(w, r); msg != "" {
		data["Flash"] = msg
	}

	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	layout, _ := templatesFS.ReadFile("templates/layout.html")
	t := template.Must(template.New("").Parse(string(layout)))
	t = template.Must(t.New("").Parse(string(content)))
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("template execute: %v", err)
	}
}
