package web

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	publicPages = []string{"/{$}", "/forgot-password", "/reset-password"}
	userPages   = []string{"/dashboard", "/new-idea"}
	adminPages  = []string{
		"/admin",
		"/admin/ideas",
		"/admin/ideas/{id}/evaluate",
		"/admin/users",
		"/admin/users/{id}/edit",
		"/admin/users/new",
		"/admin/goals",
		"/admin/ranking",
		"/admin/reports",
		"/admin/settings",
	}
)

// SPA serves the built web client from a directory.
type SPA struct {
	dir   string
	files http.Handler
	log   *slog.Logger
}

// NewSPA creates a handler for the client build in dir.
func NewSPA(dir string, logger *slog.Logger) *SPA {
	return &SPA{
		dir:   dir,
		files: http.FileServer(http.Dir(dir)),
		log:   logger.With("handler", "web"),
	}
}

// Register mounts every client page with its guards, plus the static
// asset and not-found fallback on "/".
func (s *SPA) Register(mux *http.ServeMux) {
	page := http.HandlerFunc(s.index)

	for _, p := range publicPages {
		mux.Handle("GET "+p, page)
	}
	for _, p := range userPages {
		mux.Handle("GET "+p, chain(page, ProtectedRoute, UserRoute))
	}
	for _, p := range adminPages {
		mux.Handle("GET "+p, chain(page, ProtectedRoute, AdminRoute))
	}
	mux.Handle("GET /", http.HandlerFunc(s.fallback))
}

func (s *SPA) index(w http.ResponseWriter, r *http.Request) {
	s.serveIndex(w, r, http.StatusOK)
}

// fallback serves existing static files and answers anything else with the
// client's not-found page.
func (s *SPA) fallback(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if name != "/" && name != "/index.html" {
		info, err := os.Stat(filepath.Join(s.dir, filepath.FromSlash(strings.TrimPrefix(name, "/"))))
		if err == nil && !info.IsDir() {
			s.files.ServeHTTP(w, r)
			return
		}
	}
	s.serveIndex(w, r, http.StatusNotFound)
}

func (s *SPA) serveIndex(w http.ResponseWriter, r *http.Request, status int) {
	body, err := os.ReadFile(filepath.Join(s.dir, "index.html"))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.ErrorContext(r.Context(), "read index.html", slog.String("error", err.Error()))
		}
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}
