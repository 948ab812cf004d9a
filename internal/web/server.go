// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

/*
Package web wires together the HTTP router, middleware chain, and all page
handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/backoffice are allowed to import net/http server primitives.

Every protected route group sits behind the session middleware, which
re-validates the admin's session on each page load and redirects
unauthenticated requests to the sign-in page. The /auth group is the public
exception.
*/
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/capitalcurv/backoffice/internal/audit"
	"github.com/capitalcurv/backoffice/internal/content/blog"
	"github.com/capitalcurv/backoffice/internal/content/faq"
	"github.com/capitalcurv/backoffice/internal/content/news"
	"github.com/capitalcurv/backoffice/internal/files"
	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/growth/referral"
	"github.com/capitalcurv/backoffice/internal/platform/config"
	"github.com/capitalcurv/backoffice/internal/platform/constants"
	"github.com/capitalcurv/backoffice/internal/platform/middleware"
	"github.com/capitalcurv/backoffice/internal/risk"
	"github.com/capitalcurv/backoffice/internal/support/ticket"
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

// Handlers groups all page handler sets.
//
// New sections add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth serves the public sign-in page and sign-out action.
	Auth *AuthHandler

	// Dashboard is the landing page behind the gate.
	Dashboard *DashboardHandler

	// News, FAQ, Blog manage the content sections.
	News *news.Handler
	FAQ  *faq.Handler
	Blog *blog.Handler

	// Referral manages the refer-a-friend program.
	Referral *referral.Handler

	// Ticket handles support conversations.
	Ticket *ticket.Handler

	// Risk is the read-only risk event feed.
	Risk *risk.Handler

	// Audit serves the console's own action trail.
	Audit *audit.Handler

	// Files resolves signed download URLs.
	Files *files.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, gates *gate.Factory, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Public Routes
	// The /auth group must stay reachable without a session — it is the
	// redirect target for everything below.
	r.Route(constants.PublicRoutePrefix, func(public chi.Router) {
		h.Auth.RegisterRoutes(public)
	})

	// # Protected Pages
	// The session middleware validates on every request; area groups layer
	// a read-permission check on top.
	r.Group(func(protected chi.Router) {
		protected.Use(gates.Middleware())

		protected.Get("/", func(writer http.ResponseWriter, request *http.Request) {
			http.Redirect(writer, request, constants.LandingPath, http.StatusSeeOther)
		})
		protected.Get(constants.LandingPath, h.Dashboard.Show)

		protected.Route("/news", func(section chi.Router) {
			section.Use(gates.RequireRead(constants.AreaContentManagement))
			h.News.RegisterRoutes(section)
		})
		protected.Route("/faqs", func(section chi.Router) {
			section.Use(gates.RequireRead(constants.AreaContentManagement))
			h.FAQ.RegisterRoutes(section)
		})
		protected.Route("/blogs", func(section chi.Router) {
			section.Use(gates.RequireRead(constants.AreaContentManagement))
			h.Blog.RegisterRoutes(section)
		})

		protected.Route("/referrals", func(section chi.Router) {
			section.Use(gates.RequireRead(constants.AreaUserManagement))
			h.Referral.RegisterRoutes(section)
		})

		protected.Route("/tickets", func(section chi.Router) {
			section.Use(gates.RequireRead(constants.AreaSupport))
			h.Ticket.RegisterRoutes(section)
		})

		protected.Route("/risk", func(section chi.Router) {
			section.Use(gates.RequireRead(constants.AreaRisk))
			section.Route("/audit", func(trail chi.Router) {
				h.Audit.RegisterRoutes(trail)
			})
			h.Risk.RegisterRoutes(section)
		})

		protected.Route("/files", func(section chi.Router) {
			h.Files.RegisterRoutes(section)
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
