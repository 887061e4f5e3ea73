package server

import (
	"encoding/json"
	"net/http"
	"os"

	"log/slog"

	"tooba/internal/logging"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /show/{hash}", s.handleShow)
	mux.HandleFunc("GET /episode/{hash}", s.handleEpisode)
	mux.HandleFunc("GET /video-file/{path...}", s.handleRawFile)
	mux.HandleFunc("GET /thumbnail/{path...}", s.handleRawFile)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	return s.withRequestLog(mux)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	cat, err := s.cache.Catalog(r.Context())
	if err != nil {
		s.scanError(w, r, err)
		return
	}
	s.renderPage(w, "home", http.StatusOK, newHomeView(cat))
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	cat, err := s.cache.Catalog(r.Context())
	if err != nil {
		s.scanError(w, r, err)
		return
	}
	hash := r.PathValue("hash")
	show, ok := cat.Show(hash)
	if !ok {
		s.renderPage(w, "notfound", http.StatusOK, notFoundView{
			Title:    "Show Not Found",
			BackHref: "/",
			Message:  "id=" + hash,
		})
		return
	}
	s.renderPage(w, "show", http.StatusOK, newShowView(show))
}

func (s *Server) handleEpisode(w http.ResponseWriter, r *http.Request) {
	cat, err := s.cache.Catalog(r.Context())
	if err != nil {
		s.scanError(w, r, err)
		return
	}
	hash := r.PathValue("hash")
	ep, ok := cat.Episode(hash)
	if !ok {
		s.renderPage(w, "notfound", http.StatusOK, notFoundView{
			Title:    "Episode Not Found",
			BackHref: "/",
			Message:  hash,
		})
		return
	}
	s.renderPage(w, "episode", http.StatusOK, newEpisodeView(ep))
}

// handleRawFile serves the file named by the wildcard path, rooted at the
// filesystem root. The mux has already decoded percent escapes, so the
// fragment is rebuilt into an absolute path with a single prepended slash.
func (s *Server) handleRawFile(w http.ResponseWriter, r *http.Request) {
	path := "/" + r.PathValue("path")
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

type statusResponse struct {
	Running  bool   `json:"running"`
	Library  string `json:"library"`
	Shows    int    `json:"shows"`
	Episodes int    `json:"episodes"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	cat, err := s.cache.Catalog(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, statusResponse{
		Running:  true,
		Library:  s.cfg.Paths.LibraryDir,
		Shows:    cat.ShowCount(),
		Episodes: cat.EpisodeCount(),
	})
}

func (s *Server) scanError(w http.ResponseWriter, r *http.Request, err error) {
	s.log().Error("library scan failed",
		slog.String("path", r.URL.Path),
		logging.Error(err))
	http.Error(w, "library scan failed", http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
