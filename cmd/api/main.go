// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

// Command api is the entry point of the portfolio content API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL and apply migrations.
//  4. Load the route registry and bind every route to its table.
//  5. Select the upload backend and the event publisher.
//  6. Connect to Redis and wire admin sessions.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/makebyjordan/mbj/internal/api"
	"github.com/makebyjordan/mbj/internal/auth"
	"github.com/makebyjordan/mbj/internal/content"
	"github.com/makebyjordan/mbj/internal/media"
	"github.com/makebyjordan/mbj/internal/platform/config"
	"github.com/makebyjordan/mbj/internal/platform/constants"
	"github.com/makebyjordan/mbj/internal/platform/events"
	"github.com/makebyjordan/mbj/internal/platform/i18n"
	"github.com/makebyjordan/mbj/internal/platform/migration"
	pgstore "github.com/makebyjordan/mbj/internal/platform/postgres"
	redisstore "github.com/makebyjordan/mbj/internal/platform/redis"
	"github.com/makebyjordan/mbj/internal/platform/sec"
	"github.com/makebyjordan/mbj/internal/registry"
	"github.com/makebyjordan/mbj/pkg/slice"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("locale", cfg.Locale),
	)

	messages := i18n.New(cfg.Locale)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	if cfg.AutoMigrate {
		must(log, migration.RunUp(cfg.DatabaseURL, log), "run migrations")
	}

	db := pgstore.OpenDB(pool)

	// ── 4. Registry ───────────────────────────────────────────────────────
	routes, err := registry.Load()
	must(log, err, "load route registry")

	repositories, err := content.Resolve(startupCtx, db, routes.All())
	must(log, err, "bind routes to tables")

	// ── 5. Uploads and events ─────────────────────────────────────────────
	uploads, err := media.NewFromConfig(startupCtx, cfg.Storage, log)
	must(log, err, "configure upload storage")

	var publisher events.Publisher = &events.NoopPublisher{}
	if cfg.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSURL)
		must(log, err, "connect to nats")
		publisher = natsPublisher
	}
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			log.Error("event_publisher_close_error", slog.Any("error", cerr))
		}
	}()

	deps := content.Dependencies{
		Images:    uploads.Ingestor,
		Publisher: publisher,
		Messages:  messages,
		Logger:    log,
	}

	resources := slice.Map(routes.All(), func(route registry.RouteConfig) content.Resource {
		return content.NewResource(route, repositories[route.Name], deps)
	})
	log.Info("content_routes_bound",
		slog.Int("routes", routes.Len()),
		slog.Int("singletons", len(routes.Singletons())),
	)

	// ── 6. Redis and admin sessions ───────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_error", slog.Any("error", cerr))
		}
	}()

	var tokens auth.TokenProvider
	if cfg.HasTokenKeys() {
		tokenService, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
		must(log, err, "initialize jwt service")
		tokens = tokenService
	}

	admin := auth.Admin{Email: cfg.AdminEmail, PasswordHash: cfg.AdminPasswordHash}
	authService := auth.NewService(admin, auth.NewSessionRepository(rdb), tokens, messages, log)
	cookies := auth.NewCookieStore(cfg.SessionSecret, cfg.CookieSecure)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(log,
		api.Check{Name: "postgres", Probe: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }},
		api.Check{Name: "redis", Probe: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }},
	)

	// Background work (rate-limit sweeper) stops with this context.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, auth.NewResolver(authService, cookies), messages, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService, cookies),
		Resources:  resources,
		UploadsDir: uploads.LocalDir,
	})

	// ── Graceful Shutdown ─────────────────────────────────────────────────
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
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger returns the JSON logger tagged with the app name and makes it the default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
