// Package httpapi exposes the note service over HTTP: JSON bodies in and
// out, bearer tokens in the Authorization header, and per-route prometheus
// instrumentation.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/server/auth"
	"github.com/dmitrijs2005/notevault/internal/server/notes"
	"github.com/dmitrijs2005/notevault/internal/server/users"
)

type Server struct {
	address string
	logger  logging.Logger
	users   *users.Service
	notes   *notes.Service
	tokens  *auth.TokenService
	metrics *metrics
}

func NewServer(address string, l logging.Logger, us *users.Service, ns *notes.Service, ts *auth.TokenService) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "httpapi"),
		users:   us,
		notes:   ns,
		tokens:  ts,
		metrics: newMetrics(),
	}
}

// Handler builds the route table. Every /api route sits behind the
// authentication guard; /auth and /metrics do not.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /auth/register", s.route("/auth/register", http.HandlerFunc(s.handleRegister)))
	mux.Handle("POST /auth/login", s.route("/auth/login", http.HandlerFunc(s.handleLogin)))

	mux.Handle("POST /api/notes", s.guarded("/api/notes", s.handleCreateNote))
	mux.Handle("GET /api/notes", s.guarded("/api/notes", s.handleListNotes))
	mux.Handle("GET /api/notes/{id}", s.guarded("/api/notes/{id}", s.handleGetNote))
	mux.Handle("PUT /api/notes/{id}", s.guarded("/api/notes/{id}", s.handleUpdateNote))
	mux.Handle("DELETE /api/notes/{id}", s.guarded("/api/notes/{id}", s.handleDeleteNote))
	mux.Handle("POST /api/notes/{id}/share", s.guarded("/api/notes/{id}/share", s.handleShareNote))

	mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return mux
}

func (s *Server) route(name string, next http.Handler) http.Handler {
	return s.metrics.instrument(name, next)
}

func (s *Server) guarded(name string, next http.HandlerFunc) http.Handler {
	return s.metrics.instrument(name, s.authenticate(next))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
