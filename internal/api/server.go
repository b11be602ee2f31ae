// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/asuclub/asu-api/internal/core/carousel"
	"github.com/asuclub/asu-api/internal/core/event"
	"github.com/asuclub/asu-api/internal/core/gallery"
	"github.com/asuclub/asu-api/internal/core/history"
	"github.com/asuclub/asu-api/internal/core/media"
	"github.com/asuclub/asu-api/internal/core/officer"
	"github.com/asuclub/asu-api/internal/platform/config"
	"github.com/asuclub/asu-api/internal/platform/constants"
	"github.com/asuclub/asu-api/internal/platform/middleware"
	"github.com/asuclub/asu-api/internal/users/identity"
	"github.com/asuclub/asu-api/internal/users/profile"
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

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Identity handles account routes (register, login, refresh, me).
	Identity *identity.Handler

	// Profile handles dashboard role administration and system workflows.
	Profile *profile.Handler

	// Officer manages the officer board roster.
	Officer *officer.Handler

	// Event manages the club event calendar.
	Event *event.Handler

	// Gallery manages photo albums.
	Gallery *gallery.Handler

	// Carousel manages homepage carousel images.
	Carousel *carousel.Handler

	// History manages the club history page sections.
	History *history.Handler

	// Media handles image uploads to object storage.
	Media *media.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Identity.Routes())

		// Public site content. Write access is gated per-route inside
		// each handler via RequireRole.
		api.Route("/officers", h.Officer.RegisterRoutes)
		api.Route("/events", h.Event.RegisterRoutes)
		api.Route("/gallery", h.Gallery.RegisterRoutes)
		api.Route("/carousel", h.Carousel.RegisterRoutes)
		api.Route("/history", h.History.RegisterRoutes)

		// Dashboard administration requires a valid session outright.
		api.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAuth)
			admin.Mount("/admin", h.Profile.Routes())
			admin.Route("/admin/upload", h.Media.RegisterRoutes)
		})
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

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
