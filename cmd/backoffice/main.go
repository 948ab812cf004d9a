// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

// Command backoffice is the entry point for the CapitalCurv admin console.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool, audit trail).
//  4. Connect to Redis (credential store).
//  5. Run database migrations (idempotent).
//  6. Wire the Core API client, session gate, and page handlers.
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

	"github.com/capitalcurv/backoffice/internal/audit"
	"github.com/capitalcurv/backoffice/internal/content/blog"
	"github.com/capitalcurv/backoffice/internal/content/faq"
	"github.com/capitalcurv/backoffice/internal/content/news"
	"github.com/capitalcurv/backoffice/internal/files"
	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/growth/referral"
	"github.com/capitalcurv/backoffice/internal/platform/config"
	"github.com/capitalcurv/backoffice/internal/platform/constants"
	"github.com/capitalcurv/backoffice/internal/platform/migration"
	pgstore "github.com/capitalcurv/backoffice/internal/platform/postgres"
	redisstore "github.com/capitalcurv/backoffice/internal/platform/redis"
	"github.com/capitalcurv/backoffice/internal/platform/render"
	"github.com/capitalcurv/backoffice/internal/platform/sec"
	"github.com/capitalcurv/backoffice/internal/risk"
	"github.com/capitalcurv/backoffice/internal/support/ticket"
	"github.com/capitalcurv/backoffice/internal/upstream"
	"github.com/capitalcurv/backoffice/internal/web"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. A 30s deadline catches misconfiguration
	// quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

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

	// ── 6. Views ──────────────────────────────────────────────────────────
	renderer, err := render.New(log)
	must(log, err, "parse templates")

	// ── 7. Core API Client and Session Gate ───────────────────────────────
	coreClient := upstream.NewClient(cfg.CoreAPIURL, log)
	authClient := upstream.NewAuthClient(coreClient)

	cookies := sec.NewCookieSigner(cfg.SessionSecret, constants.CookieIssuer)
	sealer := sec.NewSealer(cfg.SessionSecret)

	gates := gate.NewFactory(
		authClient,
		cookies,
		func(sid string) gate.CredentialStore {
			return gate.NewRedisCredentialStore(rdb, sealer, sid)
		},
		gate.Routes{
			PublicPrefix: constants.PublicRoutePrefix,
			SignIn:       constants.SignInPath,
			Landing:      constants.LandingPath,
		},
		renderer,
		log,
	)

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := web.NewHealthHandlers(web.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	auditService := audit.NewService(audit.NewPostgresRepository(pool), log)

	newsService := news.NewService(news.NewRESTRepository(coreClient), log)
	faqService := faq.NewService(faq.NewRESTRepository(coreClient), log)
	blogService := blog.NewService(blog.NewRESTRepository(coreClient), log)
	referralService := referral.NewService(referral.NewRESTRepository(coreClient), log)
	ticketService := ticket.NewService(ticket.NewRESTRepository(coreClient), log)
	riskService := risk.NewService(risk.NewRESTRepository(coreClient), log)
	fileService := files.NewService(coreClient, log)

	handlers := web.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      web.NewAuthHandler(gates, renderer, auditService),
		Dashboard: web.NewDashboardHandler(renderer),
		News:      news.NewHandler(newsService, renderer, auditService),
		FAQ:       faq.NewHandler(faqService, renderer, auditService),
		Blog:      blog.NewHandler(blogService, renderer, auditService),
		Referral:  referral.NewHandler(referralService, renderer, auditService),
		Ticket:    ticket.NewHandler(ticketService, renderer, auditService),
		Risk:      risk.NewHandler(riskService, renderer),
		Audit:     audit.NewHandler(auditService, renderer),
		Files:     files.NewHandler(fileService, renderer),
	}

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	server := web.NewServer(context.Background(), cfg, log, gates, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

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
