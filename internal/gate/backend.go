// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package gate

import "context"

// LoginResult is the outcome of a credential exchange with the Core API.
type LoginResult struct {
	// AccessToken is always present on success.
	AccessToken string

	// RefreshToken may be absent; the gate persists it when present but
	// never uses it itself.
	RefreshToken string

	// User is the profile embedded in the login response, when the backend
	// chose to include one. A non-nil value lets Login skip the separate
	// profile validation round-trip.
	User *User
}

// BackendClient is the slice of the Core API the gate depends on.
//
// # Why an interface?
//
// The gate's state machine is tested against a fake backend; the production
// implementation lives in internal/upstream and also performs the envelope
// normalization, so the gate only ever sees resolved values.
type BackendClient interface {
	// Profile resolves the admin profile for a bearer credential.
	// Any error — rejection or transport failure — means the credential
	// must be treated as invalid (the gate fails closed).
	Profile(ctx context.Context, accessToken string) (*User, error)

	// Login exchanges credentials for tokens. Errors are returned to the
	// caller unmodified so the sign-in form can surface them.
	Login(ctx context.Context, identifier, secret string) (*LoginResult, error)

	// Logout notifies the backend that the session ended. Best effort; the
	// caller ignores the result beyond logging.
	Logout(ctx context.Context, accessToken string) error
}
