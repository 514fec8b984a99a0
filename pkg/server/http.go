package server

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/web"
	"github.com/go-chi/chi/v5"
)

// NewHTTPServer builds an http.Server listening on all interfaces at cfg.Port.
func NewHTTPServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(cfg.Port)),
		Handler:           handler,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
		ReadTimeout:       cfg.Timeout.Read,
		ReadHeaderTimeout: cfg.Timeout.ReadHeader,
		WriteTimeout:      cfg.Timeout.Write,
		IdleTimeout:       cfg.Timeout.Idle,
	}
}

// NewChiRouter returns a router that tags each request with an ID, logs it and recovers from panics.
// Middleware order matters: the request ID must exist before the logger runs.
func NewChiRouter(logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(
		web.RequestIDInjector,
		web.StructuredLogger(logger),
		web.Recoverer(logger),
	)
	return r
}
