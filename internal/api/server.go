// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package api wires together the HTTP router, middleware chain, and all
handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It is the composition root for the chi router: one content route per
    registry entry under /api, the admin session endpoints under /api/auth.
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/makebyjordan/mbj/internal/auth"
	"github.com/makebyjordan/mbj/internal/content"
	"github.com/makebyjordan/mbj/internal/platform/config"
	"github.com/makebyjordan/mbj/internal/platform/constants"
	"github.com/makebyjordan/mbj/internal/platform/i18n"
	"github.com/makebyjordan/mbj/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups everything the router serves.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	// Auth handles /api/auth.
	Auth *auth.Handler

	// Resources are mounted under /api/{apiPath}, one per registry route.
	Resources []content.Resource

	// UploadsDir serves /{uploadsRoot}/* from disk. Empty when uploads live
	// in object storage.
	UploadsDir string
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, resolver middleware.SessionResolver, messages *i18n.Messages, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(chimw.RequestSize(constants.MaxRequestBodyBytes))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Authenticate(resolver))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	if h.UploadsDir != "" {
		root := "/" + strings.Trim(cfg.Storage.UploadsRoot, "/")
		r.Handle(root+"/*", http.StripPrefix(root+"/", staticFiles(h.UploadsDir)))
	}

	// # Application API
	guard := middleware.RequireAuth(messages.AuthRequired())
	contentHandler := content.NewHandler(guard)

	r.Route("/api", func(api chi.Router) {
		if h.Auth != nil {
			api.Mount("/auth", h.Auth.Routes(guard))
		}
		for _, resource := range h.Resources {
			contentHandler.Mount(api, resource)
		}
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler { return s.router }

// staticFiles serves files from dir without directory listings.
func staticFiles(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "" || strings.HasSuffix(request.URL.Path, "/") {
			http.NotFound(writer, request)
			return
		}
		files.ServeHTTP(writer, request)
	})
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
