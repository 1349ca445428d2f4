package proxy

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"roverdeck/internal/nasa"
)

// Upstream is the slice of the NASA client the handlers depend on.
// *nasa.Client implements it.
type Upstream interface {
	FetchManifest(ctx context.Context, slug string) (string, error)
	FetchPhotos(ctx context.Context, slug, date string) ([]byte, *nasa.PhotoPayload, error)
}

var _ Upstream = (*nasa.Client)(nil)

// errorResponse is the single failure shape the proxy ever reports. It is
// delivered with HTTP 200; the error is communicated in-body, and the
// upstream status is never surfaced.
type errorResponse struct {
	Error string `json:"error"`
}

const genericError = "500 Internal Server Error"

// Server turns one logical "latest photos for rover X" request into the
// two-phase upstream lookup.
type Server struct {
	upstream Upstream
	log      zerolog.Logger
}

// New builds a Server around the given upstream client.
func New(upstream Upstream, logger zerolog.Logger) *Server {
	return &Server{upstream: upstream, log: logger}
}

// Routes assembles the HTTP surface: exactly one route per known rover,
// lower-case and case-sensitive, plus the health and metrics endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	for _, rover := range nasa.Rovers {
		slug := nasa.Slug(rover)
		r.Get("/"+slug, s.handleRover(slug))
	}

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// handleRover chains the manifest lookup into the dated photos fetch and
// passes the photos body through verbatim. Any failure in either phase
// collapses into the one generic error shape.
func (s *Server) handleRover(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		start := time.Now()
		date, err := s.upstream.FetchManifest(ctx, slug)
		upstreamDuration.WithLabelValues("manifest").Observe(time.Since(start).Seconds())
		if err != nil {
			s.fail(w, r, slug, err)
			return
		}

		start = time.Now()
		body, _, err := s.upstream.FetchPhotos(ctx, slug, date)
		upstreamDuration.WithLabelValues("photos").Observe(time.Since(start).Seconds())
		if err != nil {
			s.fail(w, r, slug, err)
			return
		}

		roverRequests.WithLabelValues(slug, "ok").Inc()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, slug string, err error) {
	s.log.Error().
		Err(err).
		Str("rover", slug).
		Str("request_id", middleware.GetReqID(r.Context())).
		Msg("rover lookup failed")
	roverRequests.WithLabelValues(slug, "error").Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: genericError})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
