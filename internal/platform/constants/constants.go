// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

/*
Package constants provides centralized, immutable values for the back-office console.

It defines default timeouts, rate limits, route anchors, and cross-cutting keys
that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Routing: The public auth route group and the gate's redirect anchors.
  - Security: Browser session cookie configuration and Redis key taxonomy.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "curv-backoffice"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// It also bounds every upstream Core API call made while serving a page.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 75

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Routing

const (
	// PublicRoutePrefix marks the route group reachable without a session.
	// The gate never redirects away from routes under this prefix.
	PublicRoutePrefix = "/auth"

	// SignInPath is where unauthenticated requests are redirected.
	SignInPath = "/auth/sign-in"

	// LandingPath is where the client is navigated after a successful sign-in.
	LandingPath = "/dashboard"
)

// # Authentication

const (
	// SessionCookieName is the browser cookie carrying the signed session ID.
	SessionCookieName = "cc_session"

	// SessionCookieTTL bounds how long a browser session record is retained.
	SessionCookieTTL = 30 * 24 * time.Hour

	// CookieIssuer is the 'iss' claim stamped into the session cookie JWT.
	CookieIssuer = "backoffice.capitalcurv.io"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
	FieldChecks  = "checks"
	FieldMessage = "message"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixCredentials scopes one browser session's sealed token record.
	RedisPrefixCredentials = "gate:creds:"
)

// # Permission Areas
//
// Keys of the permission map resolved from the Core API profile endpoint.
// The set is open-ended on the backend side; these are the areas this
// console currently gates on.

const (
	AreaUserManagement    = "user_management"
	AreaContentManagement = "content_management"
	AreaSupport           = "support"
	AreaRisk              = "risk"
)
