// Package server hosts the optional observability endpoint: the Prometheus
// exposition handler and a liveness probe. It serves read-only diagnostics
// and never participates in computation, so it can be torn down at any time
// without affecting results.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/partcalc/internal/logging"
)

const readHeaderTimeout = 5 * time.Second

// Server wraps the diagnostics HTTP server.
type Server struct {
	httpSrv *http.Server
	log     logging.Logger
}

// New creates a diagnostics server bound to addr, exposing metricsHandler
// on /metrics and a liveness probe on /healthz. Both endpoints are GET-only.
func New(addr string, metricsHandler http.Handler, log logging.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", guardGet(metricsHandler))
	mux.Handle("/healthz", guardGet(http.HandlerFunc(handleHealth)))

	return &Server{
		httpSrv: &http.Server{
			Addr:              addr,
			Handler:           secureHeaders(mux),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: log,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.httpSrv.Addr }

// Start begins serving in a background goroutine. Listen or serve failures
// are logged; they do not abort the host process, which treats diagnostics
// as best-effort.
func (s *Server) Start() {
	go func() {
		s.log.Info("diagnostics server listening", logging.String("addr", s.httpSrv.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("diagnostics server failed", logging.Err(err))
		}
	}()
}

// Shutdown stops the server gracefully, honoring the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// guardGet rejects every method except GET.
func guardGet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureHeaders sets conservative response headers on every endpoint. The
// server exposes diagnostics only, so nothing here should ever be framed or
// sniffed into another content type.
func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}
