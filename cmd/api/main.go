// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

// Command api is the entry point for the ASU Club HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Initialize JWT signing and S3 object storage.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asuclub/asu-api/internal/api"
	"github.com/asuclub/asu-api/internal/core/carousel"
	"github.com/asuclub/asu-api/internal/core/event"
	"github.com/asuclub/asu-api/internal/core/gallery"
	"github.com/asuclub/asu-api/internal/core/history"
	"github.com/asuclub/asu-api/internal/core/media"
	"github.com/asuclub/asu-api/internal/core/officer"
	"github.com/asuclub/asu-api/internal/platform/config"
	"github.com/asuclub/asu-api/internal/platform/constants"
	"github.com/asuclub/asu-api/internal/platform/migration"
	pgstore "github.com/asuclub/asu-api/internal/platform/postgres"
	redisstore "github.com/asuclub/asu-api/internal/platform/redis"
	"github.com/asuclub/asu-api/internal/platform/sec"
	"github.com/asuclub/asu-api/internal/users/identity"
	"github.com/asuclub/asu-api/internal/users/profile"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "asu-api"))
	slog.SetDefault(log)

	log.Info("[ASU] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "asu-api"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// serverCtx outlives startup; it scopes background goroutines such as
	// the rate limiter sweeper.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security & Storage Services ────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	blobStore, err := media.NewS3BlobStore(startupCtx, cfg)
	must(log, err, "initialize s3 blob store")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	accountRepository := identity.NewAccountRepository(pool)
	sessionRepository := identity.NewSessionRepository(rdb)
	identityService := identity.NewService(accountRepository, sessionRepository, jwtSvc)
	identityHandler := identity.NewHandler(identityService)

	// The identity service doubles as the profile directory so role
	// removals also revoke the login account behind the profile.
	profileRepository := profile.NewPostgresRepository(pool)
	profileService := profile.NewService(profileRepository, identityService, log)
	profileHandler := profile.NewHandler(profileService)

	officerHandler := officer.NewHandler(officer.NewService(officer.NewPostgresRepository(pool), log))
	eventHandler := event.NewHandler(event.NewService(event.NewPostgresRepository(pool), log))
	galleryHandler := gallery.NewHandler(gallery.NewService(gallery.NewPostgresRepository(pool), log))
	carouselHandler := carousel.NewHandler(carousel.NewService(carousel.NewPostgresRepository(pool), log))
	historyHandler := history.NewHandler(history.NewService(history.NewPostgresRepository(pool), log))
	mediaHandler := media.NewHandler(media.NewService(blobStore, log))

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Identity:  identityHandler,
		Profile:   profileHandler,
		Officer:   officerHandler,
		Event:     eventHandler,
		Gallery:   galleryHandler,
		Carousel:  carouselHandler,
		History:   historyHandler,
		Media:     mediaHandler,
	}

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
