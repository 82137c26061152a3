package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/fwojciec/frontpage"
)

// DefaultAllowedOrigin is the CORS origin allowed by default.
const DefaultAllowedOrigin = "http://localhost:3000"

// Server exposes the extraction engine over HTTP: the news endpoint, a
// health endpoint, and static assets at the root.
type Server struct {
	scraper       frontpage.Scraper
	logger        *slog.Logger
	staticDir     string
	allowedOrigin string
	limiter       *RateLimiter
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithStaticDir serves files from dir at the root path.
// Defaults to "public".
func WithStaticDir(dir string) ServerOption {
	return func(s *Server) {
		s.staticDir = dir
	}
}

// WithAllowedOrigin sets the CORS allowed origin.
// Defaults to DefaultAllowedOrigin.
func WithAllowedOrigin(origin string) ServerOption {
	return func(s *Server) {
		s.allowedOrigin = origin
	}
}

// WithLogger sets the request logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRateLimit limits /api/news to rps requests per second with the
// given burst, per client IP. No limit is applied unless set.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		s.limiter = NewRateLimiter(rps, burst)
	}
}

// NewServer creates a Server around the given scraper.
func NewServer(scraper frontpage.Scraper, opts ...ServerOption) *Server {
	s := &Server{
		scraper:       scraper,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		staticDir:     "public",
		allowedOrigin: DefaultAllowedOrigin,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the root handler with routing and middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	var news http.Handler = http.HandlerFunc(s.handleNews)
	if s.limiter != nil {
		news = s.limiter.Middleware(news)
	}
	mux.Handle("/api/news", news)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	handler := CORS(s.allowedOrigin)(mux)
	return RequestLogging(s.logger)(handler)
}

// handleNews runs a scrape and writes the response as JSON. Upstream
// failures still produce a 200: they are reported in the error field.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := s.scraper.Scrape(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
