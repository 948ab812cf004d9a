// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package gate

import "context"

// Credential store keys. The gate persists exactly two values.
const (
	// KeyAccessToken is the store key for the Core API bearer credential.
	KeyAccessToken = "access_token"

	// KeyRefreshToken is the store key for the companion refresh credential.
	KeyRefreshToken = "refresh_token"
)

// CredentialStore is durable storage for one browser session's credentials.
//
// # Contract
//
// Values must survive page reloads for the same browser session. Get returns
// an empty string (not an error) when the key is absent; Remove of an absent
// key is a no-op. Only the gate's four operations ever write to it.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
