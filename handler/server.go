package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
)

type Server struct {
	apis     map[string]http.Handler
	fallback http.Handler
	logger   *slog.Logger
}

// NewServer routes /api/<name> to the matching api. Everything else that is
// not the index goes to fallback, or gets a 404 when fallback is nil.
func NewServer(videoAPI *VideoAPI, thumbnailAPI *ThumbnailAPI, fallback http.Handler, logger *slog.Logger) *Server {
	return &Server{
		apis: map[string]http.Handler{
			"videos":    http.HandlerFunc(videoAPI.List),
			"add-video": http.HandlerFunc(videoAPI.Add),
			"thumbnail": thumbnailAPI,
		},
		fallback: fallback,
		logger:   logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	originalPath := r.URL.Path
	requestID := uuid.New().String()
	w.Header().Set("X-Request-Id", requestID)

	m := httpsnoop.CaptureMetrics(http.HandlerFunc(s.route), w, r)

	s.logger.Info("request served",
		slog.String("id", requestID),
		slog.String("method", r.Method),
		slog.String("path", originalPath),
		slog.Int("status", m.Code),
		slog.Duration("duration", m.Duration),
		slog.Int64("bytes", m.Written),
	)
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	head, tail := ShiftPath(r.URL.Path)
	if head == "" {
		Index(w)
		return
	}

	if head == "api" {
		name, rest := ShiftPath(tail)
		if api, ok := s.apis[name]; ok && rest == "/" {
			r.URL.Path = rest
			api.ServeHTTP(w, r)
			return
		}
	}

	if s.fallback == nil {
		Error(w, http.StatusNotFound, msgNotFound, fmt.Errorf("%s is not a valid path", r.URL.Path))
		return
	}
	s.fallback.ServeHTTP(w, r)
}

// StaticFallback serves files from dir and answers every other path with
// dir/index.html, so client side routes keep working on reload. It returns
// nil when dir has no index.html.
func StaticFallback(dir string) http.Handler {
	index := filepath.Join(dir, "index.html")
	if info, err := os.Stat(index); err != nil || info.IsDir() {
		return nil
	}
	files := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if requested != index {
			if info, err := os.Stat(requested); err == nil && !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}
		serveIndex(w, r, index)
	})
}

// serveIndex writes the page without the redirect that http.ServeFile and
// http.FileServer apply to paths ending in /index.html.
func serveIndex(w http.ResponseWriter, r *http.Request, index string) {
	f, err := os.Open(index)
	if err != nil {
		Error(w, http.StatusNotFound, msgNotFound, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		Error(w, http.StatusNotFound, msgNotFound, err)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// ShiftPath splits off the first component of p, which will be cleaned of
// relative components before processing. head will never contain a slash and
// tail will always be a rooted path without trailing slash.
// See https://blog.merovius.de/posts/2017-06-18-how-not-to-use-an-http-router/
func ShiftPath(p string) (string, string) {
	p = path.Clean("/" + p)

	// restore iri prefixes that might be mangled by path.Clean
	for k, v := range map[string]string{
		"http:/":  "http://",
		"https:/": "https://",
	} {
		p = strings.Replace(p, k, v, -1)
	}

	i := strings.Index(p[1:], "/") + 1
	if i <= 0 {
		return p[1:], "/"
	}
	return p[1:i], p[i:]
}
