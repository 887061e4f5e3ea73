package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"log/slog"

	"tooba/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages maps a page name to its parsed template set. Each page is parsed
// together with the base layout so its "header" and "content" blocks
// override the layout's.
var pages = map[string]*template.Template{
	"home":     parsePage("home.html"),
	"show":     parsePage("show.html"),
	"episode":  parsePage("episode.html"),
	"notfound": parsePage("notfound.html"),
}

func parsePage(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/"+name))
}

// renderPage executes a page into a buffer before writing, so a template
// failure produces a clean 500 instead of a truncated document.
func (s *Server) renderPage(w http.ResponseWriter, page string, status int, data any) {
	tmpl, ok := pages[page]
	if !ok {
		s.log().Error("unknown page template", slog.String("page", page))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		s.log().Error("template render failed", slog.String("page", page), logging.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
