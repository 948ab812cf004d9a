// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package gate

import (
	stdctx "context"
	"log/slog"
	"net/http"

	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/platform/constants"
	"github.com/capitalcurv/backoffice/internal/platform/ctxutil"
	"github.com/capitalcurv/backoffice/internal/platform/sec"
	"github.com/capitalcurv/backoffice/pkg/uuidv7"
)

type contextKey string

// sessionContextKey carries the per-request [Snapshot]. The gate owns the key
// so handler packages depend on gate, not the other way around.
const sessionContextKey contextKey = "gate_session"

// bearerContextKey carries the validated access token for Core API calls made
// on behalf of the signed-in admin.
const bearerContextKey contextKey = "gate_bearer"

// WithSession attaches a session snapshot to the request context.
func WithSession(ctx stdctx.Context, snapshot Snapshot) stdctx.Context {
	return stdctx.WithValue(ctx, sessionContextKey, snapshot)
}

// FromContext retrieves the session snapshot placed by [Factory.Middleware].
// Outside the middleware chain it returns the zero (unauthenticated) snapshot.
func FromContext(ctx stdctx.Context) Snapshot {
	if snapshot, ok := ctx.Value(sessionContextKey).(Snapshot); ok {
		return snapshot
	}
	return Snapshot{}
}

// WithBearer attaches the validated access token to the request context.
func WithBearer(ctx stdctx.Context, token string) stdctx.Context {
	return stdctx.WithValue(ctx, bearerContextKey, token)
}

// BearerFromContext retrieves the access token for upstream calls made on
// behalf of the signed-in admin. Empty outside the middleware chain.
func BearerFromContext(ctx stdctx.Context) string {
	if token, ok := ctx.Value(bearerContextKey).(string); ok {
		return token
	}
	return ""
}

// StoreFactory yields the credential store bound to one browser session ID.
type StoreFactory func(sid string) CredentialStore

// ErrorRenderer presents a gate failure (e.g. a permission denial) to the
// browser. Satisfied by the platform render package.
type ErrorRenderer interface {
	Error(w http.ResponseWriter, r *http.Request, err error)
}

// Factory assembles a per-request Gate.
//
// Each HTTP request gets its own Gate instance bound to that request's
// browser session (identified by the signed session cookie) and response
// writer, so redirects and state never leak across requests.
type Factory struct {
	backend  BackendClient
	cookies  *sec.CookieSigner
	stores   StoreFactory
	routes   Routes
	renderer ErrorRenderer
	logger   *slog.Logger
}

// NewFactory wires the gate into the HTTP layer.
func NewFactory(backend BackendClient, cookies *sec.CookieSigner, stores StoreFactory, routes Routes, renderer ErrorRenderer, logger *slog.Logger) *Factory {
	return &Factory{
		backend:  backend,
		cookies:  cookies,
		stores:   stores,
		routes:   routes,
		renderer: renderer,
		logger:   logger,
	}
}

// ForRequest builds the Gate for one request, minting a fresh browser session
// ID (and cookie) when the request carries none or an invalid one.
func (factory *Factory) ForRequest(w http.ResponseWriter, r *http.Request) *Gate {
	sid := factory.sessionID(w, r)

	nav := &redirectNavigator{w: w, r: r}
	logger := ctxutil.GetLogger(r.Context())

	return New(factory.backend, factory.stores(sid), nav, factory.routes, logger)
}

// sessionID resolves the browser session ID from the signed cookie, issuing a
// new one when absent, expired, or tampered with.
func (factory *Factory) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(constants.SessionCookieName); err == nil {
		if sid, err := factory.cookies.Verify(cookie.Value); err == nil {
			return sid
		}
		factory.logger.Debug("gate_session_cookie_rejected")
	}

	sid := uuidv7.Must()

	value, err := factory.cookies.Issue(sid, constants.SessionCookieTTL)
	if err != nil {
		// Cookie signing only fails on misconfiguration; the request still
		// proceeds as a session that will not survive the response.
		factory.logger.Error("gate_session_cookie_issue_failed", slog.Any("error", err))
		return sid
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(constants.SessionCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	return sid
}

// Middleware validates the session on every request and injects the snapshot.
//
// When validation ends in a redirect the chain stops; otherwise handlers find
// the snapshot via [FromContext]. Public routes pass through unauthenticated.
func (factory *Factory) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g := factory.ForRequest(w, r)
			g.Validate(r.Context())

			if nav, ok := g.nav.(*redirectNavigator); ok && nav.redirected {
				return
			}

			ctx := WithSession(r.Context(), g.CurrentSession())
			ctx = WithBearer(ctx, g.BearerToken())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRead gates a route group on read permission for an area.
//
// Runs after [Factory.Middleware], so an unauthenticated request never
// reaches it on a protected route.
func (factory *Factory) RequireRead(area string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := FromContext(r.Context())
			if !session.CurrentUser.CanRead(area) {
				factory.renderer.Error(w, r, apperr.Forbidden("you do not have access to this area"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// redirectNavigator adapts one HTTP response to the [Navigator] interface.
//
// Only the first Navigate wins — a response can carry a single redirect, and
// the gate's loop-breaker semantics rely on stale redirects being dropped.
type redirectNavigator struct {
	w          http.ResponseWriter
	r          *http.Request
	redirected bool
}

func (nav *redirectNavigator) Navigate(path string) {
	if nav.redirected {
		return
	}
	nav.redirected = true
	http.Redirect(nav.w, nav.r, path, http.StatusSeeOther)
}

func (nav *redirectNavigator) CurrentPath() string {
	return nav.r.URL.Path
}
