// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

/*
Package gate owns the authenticated-user state, token lifecycle, and
route-guard redirects for the whole console.

# State Machine

Each browser session cycles through:

	INIT → LOADING → AUTHENTICATED | UNAUTHENTICATED

Every page load re-enters LOADING and re-validates the stored credential
against the Core API profile endpoint. Missing credentials and rejected
credentials both resolve to UNAUTHENTICATED; rejected credentials are
additionally cleared from storage. Requests for routes outside the public
auth group are redirected to the sign-in route — the public-route check is
the loop-breaker that keeps the sign-in page reachable.

# Failure Semantics

The gate fails closed: a transport failure during validation is treated
exactly like an explicit rejection (clear, redirect). Login failures are the
one exception — they propagate to the caller untouched so the form can show
them. Logout cleanup is structured so it cannot be skipped by a failing or
panicking backend notification.
*/
package gate

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Navigator is the navigation primitive the gate redirects through.
//
// Production navigators write HTTP redirects; tests record paths.
type Navigator interface {
	// Navigate moves the client to the given path (fire-and-forget).
	Navigate(path string)

	// CurrentPath reports the route being served, used to detect the
	// public auth group by prefix match.
	CurrentPath() string
}

// Routes anchors the gate's redirect policy.
type Routes struct {
	// PublicPrefix marks the route group reachable without a session.
	PublicPrefix string

	// SignIn is where unauthenticated requests are redirected.
	SignIn string

	// Landing is where the client is navigated after a successful login.
	Landing string
}

// Gate decides, on every page load, whether the current client holds a valid
// session, exposes that decision to the rest of the application, and enforces
// the redirect policy for unauthenticated access to protected routes.
//
// # Concurrency
//
// A Gate is safe for concurrent use. An in-flight Validate that is
// superseded by a newer one is discarded (sequence-tagged), so a slow stale
// profile fetch can never overwrite fresher state.
type Gate struct {
	backend BackendClient
	creds   CredentialStore
	nav     Navigator
	routes  Routes
	logger  *slog.Logger

	mu      sync.Mutex
	session Session
	seq     uint64
}

// New constructs a Gate in the LOADING state.
func New(backend BackendClient, creds CredentialStore, nav Navigator, routes Routes, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{
		backend: backend,
		creds:   creds,
		nav:     nav,
		routes:  routes,
		logger:  logger,
		session: Session{IsLoading: true},
	}
}

// # Operations

// Validate re-checks the current session. It is idempotent and re-entrant:
// it may be invoked on every route change, rapidly and concurrently, without
// producing redirect loops.
//
// # Flow
//
//  1. Read the persisted access token. Absent → unauthenticated (redirect
//     unless already on a public route); no storage is touched.
//  2. Present → resolve the profile with the token as bearer credential.
//  3. Rejection of any kind → clear both stored tokens, drop the user,
//     redirect unless on a public route.
func (gate *Gate) Validate(ctx context.Context) {
	attempt := gate.begin()

	// ── 1. Read the persisted credential ──────────────────────────────────

	token, err := gate.creds.Get(ctx, KeyAccessToken)
	if err != nil {
		// An unreadable store is indistinguishable from a missing
		// credential: fail closed.
		gate.logger.WarnContext(ctx, "gate_credential_read_failed", slog.Any("error", err))
		token = ""
	}

	if token == "" {
		gate.conclude(attempt, "", nil)
		return
	}

	// ── 2. Resolve the profile ────────────────────────────────────────────

	user, err := gate.backend.Profile(ctx, token)
	if err != nil {
		// Rejected and unreachable are deliberately conflated: assume the
		// credential is invalid and reset to a safe state.
		gate.logger.WarnContext(ctx, "gate_profile_validation_failed", slog.Any("error", err))
		gate.clearCredentials(ctx)
		gate.conclude(attempt, "", nil)
		return
	}

	gate.conclude(attempt, token, user)
}

// Login exchanges credentials for a session.
//
// # Ordering
//
// Token persistence strictly precedes any dependent read: both credentials
// are stored before the embedded-user shortcut or the fallback Validate
// runs. On backend rejection nothing is persisted and the error propagates
// unmodified to the presenting form.
func (gate *Gate) Login(ctx context.Context, identifier, secret string) error {
	// ── 1. Credential Exchange ────────────────────────────────────────────

	result, err := gate.backend.Login(ctx, identifier, secret)
	if err != nil {
		return err
	}

	// ── 2. Persist Tokens First ───────────────────────────────────────────

	if err := gate.creds.Set(ctx, KeyAccessToken, result.AccessToken); err != nil {
		return err
	}
	if result.RefreshToken != "" {
		if err := gate.creds.Set(ctx, KeyRefreshToken, result.RefreshToken); err != nil {
			return err
		}
	}

	gate.mu.Lock()
	gate.session.AccessToken = result.AccessToken
	gate.session.RefreshToken = result.RefreshToken
	gate.mu.Unlock()

	// ── 3. Resolve the User ───────────────────────────────────────────────

	if result.User != nil {
		// Shortcut: the login response embedded the profile, no separate
		// validation round-trip is needed.
		gate.mu.Lock()
		gate.session.CurrentUser = result.User
		gate.session.IsLoading = false
		gate.mu.Unlock()
	} else {
		gate.Validate(ctx)
	}

	// ── 4. Navigate to the Landing Route ──────────────────────────────────

	gate.nav.Navigate(gate.routes.Landing)
	return nil
}

// Logout terminates the session.
//
// # Guarantee
//
// The client always ends in the unauthenticated state. Local cleanup and the
// sign-in redirect are deferred so that neither a failing nor a panicking
// backend notification can skip them; the notification's outcome is logged
// and otherwise ignored.
func (gate *Gate) Logout(ctx context.Context) {
	token, err := gate.creds.Get(ctx, KeyAccessToken)
	if err != nil {
		gate.logger.WarnContext(ctx, "gate_credential_read_failed", slog.Any("error", err))
	}

	defer func() {
		gate.clearCredentials(ctx)

		gate.mu.Lock()
		gate.session = Session{}
		gate.mu.Unlock()

		gate.nav.Navigate(gate.routes.SignIn)
	}()

	if token == "" {
		return
	}

	if err := gate.backend.Logout(ctx, token); err != nil {
		gate.logger.WarnContext(ctx, "gate_logout_notify_failed", slog.Any("error", err))
	}
}

// CurrentSession exposes the session to pages.
//
// Consumers must infer authentication only from the resolved user, never
// from token presence.
func (gate *Gate) CurrentSession() Snapshot {
	gate.mu.Lock()
	defer gate.mu.Unlock()

	return Snapshot{
		CurrentUser:     gate.session.CurrentUser,
		IsLoading:       gate.session.IsLoading,
		IsAuthenticated: gate.session.CurrentUser != nil,
	}
}

// BearerToken returns the access token behind the current session, for Core
// API calls made on the admin's behalf. Empty when unauthenticated.
func (gate *Gate) BearerToken() string {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	return gate.session.AccessToken
}

// # Internals

// begin opens a validation attempt and returns its sequence tag.
func (gate *Gate) begin() uint64 {
	gate.mu.Lock()
	defer gate.mu.Unlock()

	gate.seq++
	gate.session.IsLoading = true
	return gate.seq
}

// conclude publishes a validation outcome, unless a newer attempt has been
// issued since — stale results (including their redirects) are discarded.
func (gate *Gate) conclude(attempt uint64, token string, user *User) {
	gate.mu.Lock()
	if attempt != gate.seq {
		gate.mu.Unlock()
		return
	}

	gate.session.AccessToken = token
	if token == "" {
		gate.session.RefreshToken = ""
	}
	gate.session.CurrentUser = user
	gate.session.IsLoading = false
	gate.mu.Unlock()

	if user == nil && !gate.onPublicRoute() {
		gate.nav.Navigate(gate.routes.SignIn)
	}
}

// onPublicRoute reports whether the active route belongs to the public auth
// group. This check is what breaks redirect loops on the sign-in page.
func (gate *Gate) onPublicRoute() bool {
	return strings.HasPrefix(gate.nav.CurrentPath(), gate.routes.PublicPrefix)
}

// clearCredentials removes both persisted tokens. Failures are logged and
// swallowed — cleanup must never abort the reset.
func (gate *Gate) clearCredentials(ctx context.Context) {
	if err := gate.creds.Remove(ctx, KeyAccessToken); err != nil {
		gate.logger.WarnContext(ctx, "gate_credential_clear_failed",
			slog.String("key", KeyAccessToken), slog.Any("error", err))
	}
	if err := gate.creds.Remove(ctx, KeyRefreshToken); err != nil {
		gate.logger.WarnContext(ctx, "gate_credential_clear_failed",
			slog.String("key", KeyRefreshToken), slog.Any("error", err))
	}
}
