// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package gate

// Grant is one set of boolean permissions inside a management area.
//
// The shape of a grant is fixed; the set of areas it is keyed under is
// open-ended and owned by the Core API.
type Grant struct {
	Create bool `json:"create"`
	Read   bool `json:"read"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
	Block  bool `json:"block"`
}

// User is the resolved admin profile fetched from the Core API.
//
// It is a value owned by the backend — the console never mutates it locally.
type User struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	Name         string           `json:"name"`
	IsSuperAdmin bool             `json:"is_super_admin"`
	Permissions  map[string]Grant `json:"permissions"`
}

// grant looks up the grant set for an area. Super admins hold every grant.
func (user *User) grant(area string) (Grant, bool) {
	if user == nil {
		return Grant{}, false
	}
	if user.IsSuperAdmin {
		return Grant{Create: true, Read: true, Update: true, Delete: true, Block: true}, true
	}
	g, ok := user.Permissions[area]
	return g, ok
}

// CanRead reports whether the user may view the given management area.
func (user *User) CanRead(area string) bool {
	g, ok := user.grant(area)
	return ok && g.Read
}

// CanCreate reports whether the user may create entities in the area.
func (user *User) CanCreate(area string) bool {
	g, ok := user.grant(area)
	return ok && g.Create
}

// CanUpdate reports whether the user may update entities in the area.
func (user *User) CanUpdate(area string) bool {
	g, ok := user.grant(area)
	return ok && g.Update
}

// CanDelete reports whether the user may delete entities in the area.
func (user *User) CanDelete(area string) bool {
	g, ok := user.grant(area)
	return ok && g.Delete
}

// CanBlock reports whether the user may block/unblock entities in the area.
func (user *User) CanBlock(area string) bool {
	g, ok := user.grant(area)
	return ok && g.Block
}

// Session is the client's current authentication state.
//
// # Invariants
//
//   - CurrentUser is only ever set from a successful profile validation (or
//     a login response that embedded the profile) using the access token
//     current at the time of that call.
//   - Exactly one Session exists per gate; there is no destroy operation,
//     only the logical reset performed by Logout.
type Session struct {
	// AccessToken is the bearer credential for the Core API. Present exactly
	// when a login has succeeded and no logout/invalidation occurred since.
	AccessToken string

	// RefreshToken is persisted alongside AccessToken but never validated
	// independently by the gate (no refresh flow is implemented).
	RefreshToken string

	// CurrentUser is the resolved profile. nil means "not yet checked" or
	// "checked and invalid" — consumers must not distinguish the two.
	CurrentUser *User

	// IsLoading is true from gate construction until the first validation
	// attempt (success or failure) completes.
	IsLoading bool
}

// Snapshot is the read-only view handed to pages.
//
// IsAuthenticated is exactly the truthiness of CurrentUser; token presence
// alone never implies authentication.
type Snapshot struct {
	CurrentUser     *User
	IsLoading       bool
	IsAuthenticated bool
}
