// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package gate

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeBackend struct {
	mu           sync.Mutex
	profileFunc  func(ctx context.Context, token string) (*User, error)
	loginFunc    func(ctx context.Context, identifier, secret string) (*LoginResult, error)
	logoutFunc   func(ctx context.Context, token string) error
	profileCalls int
	logoutCalls  int
}

func (b *fakeBackend) Profile(ctx context.Context, token string) (*User, error) {
	b.mu.Lock()
	b.profileCalls++
	fn := b.profileFunc
	b.mu.Unlock()
	if fn == nil {
		return nil, errors.New("no profile stub")
	}
	return fn(ctx, token)
}

func (b *fakeBackend) Login(ctx context.Context, identifier, secret string) (*LoginResult, error) {
	if b.loginFunc == nil {
		return nil, errors.New("no login stub")
	}
	return b.loginFunc(ctx, identifier, secret)
}

func (b *fakeBackend) Logout(ctx context.Context, token string) error {
	b.mu.Lock()
	b.logoutCalls++
	fn := b.logoutFunc
	b.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(ctx, token)
}

func (b *fakeBackend) profileCallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.profileCalls
}

type fakeNavigator struct {
	mu      sync.Mutex
	current string
	visited []string
}

func (nav *fakeNavigator) Navigate(path string) {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	nav.visited = append(nav.visited, path)
}

func (nav *fakeNavigator) CurrentPath() string {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	return nav.current
}

func (nav *fakeNavigator) paths() []string {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	return append([]string(nil), nav.visited...)
}

// failingStore wraps a working store and fails selected operations.
type failingStore struct {
	inner      CredentialStore
	failGet    bool
	failSet    bool
	failRemove bool
}

func (s *failingStore) Get(ctx context.Context, key string) (string, error) {
	if s.failGet {
		return "", errors.New("store unavailable")
	}
	return s.inner.Get(ctx, key)
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failSet {
		return errors.New("store unavailable")
	}
	return s.inner.Set(ctx, key, value)
}

func (s *failingStore) Remove(ctx context.Context, key string) error {
	if s.failRemove {
		return errors.New("store unavailable")
	}
	return s.inner.Remove(ctx, key)
}

func testRoutes() Routes {
	return Routes{
		PublicPrefix: "/auth",
		SignIn:       "/auth/sign-in",
		Landing:      "/dashboard",
	}
}

func adminUser() *User {
	return &User{
		ID:    "adm_01",
		Email: "ops@capitalcurv.io",
		Name:  "Ops Admin",
		Permissions: map[string]Grant{
			"content_management": {Read: true, Create: true, Update: true},
		},
	}
}

// ── Validate ──────────────────────────────────────────────────────────────────

func TestValidate_NoToken_ProtectedRoute_RedirectsOnce(t *testing.T) {
	backend := &fakeBackend{}
	nav := &fakeNavigator{current: "/news"}
	gate := New(backend, NewMemoryCredentialStore(), nav, testRoutes(), nil)

	gate.Validate(context.Background())

	snapshot := gate.CurrentSession()
	assert.False(t, snapshot.IsAuthenticated)
	assert.False(t, snapshot.IsLoading)
	assert.Nil(t, snapshot.CurrentUser)
	assert.Equal(t, []string{"/auth/sign-in"}, nav.paths())
	assert.Zero(t, backend.profileCallCount(), "no token means no profile fetch")
}

func TestValidate_NoToken_PublicRoute_DoesNotRedirect(t *testing.T) {
	backend := &fakeBackend{}
	nav := &fakeNavigator{current: "/auth/sign-in"}
	gate := New(backend, NewMemoryCredentialStore(), nav, testRoutes(), nil)

	gate.Validate(context.Background())

	assert.False(t, gate.CurrentSession().IsAuthenticated)
	assert.Empty(t, nav.paths(), "sign-in page must stay reachable without a session")
}

func TestValidate_ValidToken_ResolvesUser(t *testing.T) {
	user := adminUser()
	backend := &fakeBackend{
		profileFunc: func(_ context.Context, token string) (*User, error) {
			assert.Equal(t, "tok_valid", token)
			return user, nil
		},
	}
	store := NewMemoryCredentialStore()
	require.NoError(t, store.Set(context.Background(), KeyAccessToken, "tok_valid"))
	nav := &fakeNavigator{current: "/news"}
	gate := New(backend, store, nav, testRoutes(), nil)

	gate.Validate(context.Background())

	snapshot := gate.CurrentSession()
	assert.True(t, snapshot.IsAuthenticated)
	assert.Equal(t, user, snapshot.CurrentUser)
	assert.Empty(t, nav.paths())
}

func TestValidate_RejectedToken_ClearsCredentialsAndRedirects(t *testing.T) {
	backend := &fakeBackend{
		profileFunc: func(context.Context, string) (*User, error) {
			return nil, errors.New("401 unauthorized")
		},
	}
	ctx := context.Background()
	store := NewMemoryCredentialStore()
	require.NoError(t, store.Set(ctx, KeyAccessToken, "tok_stale"))
	require.NoError(t, store.Set(ctx, KeyRefreshToken, "ref_stale"))
	nav := &fakeNavigator{current: "/news"}
	gate := New(backend, store, nav, testRoutes(), nil)

	gate.Validate(ctx)

	access, _ := store.Get(ctx, KeyAccessToken)
	refresh, _ := store.Get(ctx, KeyRefreshToken)
	assert.Empty(t, access, "rejected access token must be purged")
	assert.Empty(t, refresh, "refresh token must be purged alongside")
	assert.False(t, gate.CurrentSession().IsAuthenticated)
	assert.Equal(t, []string{"/auth/sign-in"}, nav.paths())

	// A second validation now takes the no-token path and stays stable.
	gate.Validate(ctx)
	assert.Equal(t, 1, backend.profileCallCount())
	assert.Equal(t, []string{"/auth/sign-in", "/auth/sign-in"}, nav.paths())
}

func TestValidate_NetworkFailure_TreatedAsRejection(t *testing.T) {
	backend := &fakeBackend{
		profileFunc: func(context.Context, string) (*User, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}
	ctx := context.Background()
	store := NewMemoryCredentialStore()
	require.NoError(t, store.Set(ctx, KeyAccessToken, "tok_unreachable"))
	nav := &fakeNavigator{current: "/dashboard"}
	gate := New(backend, store, nav, testRoutes(), nil)

	gate.Validate(ctx)

	access, _ := store.Get(ctx, KeyAccessToken)
	assert.Empty(t, access, "fail closed: transport failure clears the credential")
	assert.False(t, gate.CurrentSession().IsAuthenticated)
}

func TestValidate_StoreReadFailure_FailsClosed(t *testing.T) {
	backend := &fakeBackend{}
	store := &failingStore{inner: NewMemoryCredentialStore(), failGet: true}
	nav := &fakeNavigator{current: "/news"}
	gate := New(backend, store, nav, testRoutes(), nil)

	gate.Validate(context.Background())

	assert.False(t, gate.CurrentSession().IsAuthenticated)
	assert.Equal(t, []string{"/auth/sign-in"}, nav.paths())
	assert.Zero(t, backend.profileCallCount())
}

func TestValidate_Repeated_IsIdempotent(t *testing.T) {
	user := adminUser()
	backend := &fakeBackend{
		profileFunc: func(context.Context, string) (*User, error) { return user, nil },
	}
	ctx := context.Background()
	store := NewMemoryCredentialStore()
	require.NoError(t, store.Set(ctx, KeyAccessToken, "tok_valid"))
	nav := &fakeNavigator{current: "/news"}
	gate := New(backend, store, nav, testRoutes(), nil)

	gate.Validate(ctx)
	first := gate.CurrentSession()
	gate.Validate(ctx)
	second := gate.CurrentSession()

	assert.Equal(t, first, second)
	assert.Equal(t, 2, backend.profileCallCount())
	assert.Empty(t, nav.paths())
}

func TestValidate_StaleResult_IsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	staleUser := &User{ID: "adm_stale", Email: "stale@capitalcurv.io"}
	freshUser := adminUser()

	var calls int32
	backend := &fakeBackend{}
	backend.profileFunc = func(context.Context, string) (*User, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release // hold the first call until a fresher one has finished
			return staleUser, nil
		}
		return freshUser, nil
	}

	ctx := context.Background()
	store := NewMemoryCredentialStore()
	require.NoError(t, store.Set(ctx, KeyAccessToken, "tok_valid"))
	nav := &fakeNavigator{current: "/news"}
	gate := New(backend, store, nav, testRoutes(), nil)

	done := make(chan struct{})
	go func() {
		gate.Validate(ctx)
		close(done)
	}()

	// The slow attempt must reach the backend before being superseded.
	<-started

	gate.Validate(ctx)
	require.Equal(t, freshUser, gate.CurrentSession().CurrentUser)

	close(release)
	<-done

	assert.Equal(t, freshUser, gate.CurrentSession().CurrentUser,
		"the superseded attempt must not overwrite fresher state")
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestLogin_RejectedCredentials_LeaveStateUntouched(t *testing.T) {
	backend := &fakeBackend{
		loginFunc: func(context.Context, string, string) (*LoginResult, error) {
			return nil, errors.New("invalid credentials")
		},
	}
	ctx := context.Background()
	store := NewMemoryCredentialStore()
	nav := &fakeNavigator{current: "/auth/sign-in"}
	gate := New(backend, store, nav, testRoutes(), nil)

	err := gate.Login(ctx, "ops@capitalcurv.io", "wrong")

	require.Error(t, err)
	access, _ := store.Get(ctx, KeyAccessToken)
	assert.Empty(t, access, "nothing may be persisted on a rejected login")
	assert.Empty(t, nav.paths())
	assert.False(t, gate.CurrentSession().IsAuthenticated)
}

func TestLogin_EmbeddedUser_SkipsProfileFetch(t *testing.T) {
	user := adminUser()
	backend := &fakeBackend{
		loginFunc: func(_ context.Context, identifier, secret string) (*LoginResult, error) {
			assert.Equal(t, "ops@capitalcurv.io", identifier)
			return &LoginResult{AccessToken: "tok_new", RefreshToken: "ref_new", User: user}, nil
		},
	}
	ctx := context.Background()
	store := NewMemoryCredentialStore()
	nav := &fakeNavigator{current: "/auth/sign-in"}
	gate := New(backend, store, nav, testRoutes(), nil)

	err := gate.Login(ctx, "ops@capitalcurv.io", "s3cret")

	require.NoError(t, err)
	access, _ := store.Get(ctx, KeyAccessToken)
	refresh, _ := store.Get(ctx, KeyRefreshToken)
	assert.Equal(t, "tok_new", access)
	assert.Equal(t, "ref_new", refresh)
	assert.Zero(t, backend.profileCallCount(), "embedded profile avoids the validation round-trip")

	snapshot := gate.CurrentSession()
	assert.True(t, snapshot.IsAuthenticated)
	assert.Equal(t, user, snapshot.CurrentUser)
	assert.Equal(t, []string{"/dashboard"}, nav.paths())
}

func TestLogin_NoEmbeddedUser_ValidatesAfterPersisting(t *testing.T) {
	user := adminUser()
	backend := &fakeBackend{
		loginFunc: func(context.Context, string, string) (*LoginResult, error) {
			return &LoginResult{AccessToken: "tok_new"}, nil
		},
	}
	ctx := context.Background()
	store := NewMemoryCredentialStore()
	backend.profileFunc = func(_ context.Context, token string) (*User, error) {
		// The token must already be persisted when the dependent read runs.
		stored, err := store.Get(ctx, KeyAccessToken)
		require.NoError(t, err)
		assert.Equal(t, "tok_new", stored)
		assert.Equal(t, "tok_new", token)
		return user, nil
	}
	nav := &fakeNavigator{current: "/auth/sign-in"}
	gate := New(backend, store, nav, testRoutes(), nil)

	err := gate.Login(ctx, "ops@capitalcurv.io", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, 1, backend.profileCallCount())
	assert.True(t, gate.CurrentSession().IsAuthenticated)
	assert.Equal(t, []string{"/dashboard"}, nav.paths())
}

func TestLogin_PersistFailure_SurfacesError(t *testing.T) {
	backend := &fakeBackend{
		loginFunc: func(context.Context, string, string) (*LoginResult, error) {
			return &LoginResult{AccessToken: "tok_new", User: adminUser()}, nil
		},
	}
	store := &failingStore{inner: NewMemoryCredentialStore(), failSet: true}
	nav := &fakeNavigator{current: "/auth/sign-in"}
	gate := New(backend, store, nav, testRoutes(), nil)

	err := gate.Login(context.Background(), "ops@capitalcurv.io", "s3cret")

	require.Error(t, err)
	assert.False(t, gate.CurrentSession().IsAuthenticated)
	assert.Empty(t, nav.paths())
}

// ── Logout ────────────────────────────────────────────────────────────────────

func TestLogout_ClearsSessionAndRedirects(t *testing.T) {
	user := adminUser()
	backend := &fakeBackend{
		profileFunc: func(context.Context, string) (*User, error) { return user, nil },
	}
	ctx := context.Background()
	store := NewMemoryCredentialStore()
	require.NoError(t, store.Set(ctx, KeyAccessToken, "tok_valid"))
	require.NoError(t, store.Set(ctx, KeyRefreshToken, "ref_valid"))
	nav := &fakeNavigator{current: "/dashboard"}
	gate := New(backend, store, nav, testRoutes(), nil)
	gate.Validate(ctx)
	require.True(t, gate.CurrentSession().IsAuthenticated)

	gate.Logout(ctx)

	access, _ := store.Get(ctx, KeyAccessToken)
	refresh, _ := store.Get(ctx, KeyRefreshToken)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
	assert.False(t, gate.CurrentSession().IsAuthenticated)
	assert.Equal(t, 1, backend.logoutCalls)
	assert.Equal(t, []string{"/auth/sign-in"}, nav.paths())
}

func TestLogout_NotifyFailure_StillClearsEverything(t *testing.T) {
	backend := &fakeBackend{
		logoutFunc: func(context.Context, string) error {
			return errors.New("backend unreachable")
		},
	}
	ctx := context.Background()
	store := NewMemoryCredentialStore()
	require.NoError(t, store.Set(ctx, KeyAccessToken, "tok_valid"))
	nav := &fakeNavigator{current: "/dashboard"}
	gate := New(backend, store, nav, testRoutes(), nil)

	gate.Logout(ctx)

	access, _ := store.Get(ctx, KeyAccessToken)
	assert.Empty(t, access, "cleanup must run even when the notification fails")
	assert.False(t, gate.CurrentSession().IsAuthenticated)
	assert.Equal(t, []string{"/auth/sign-in"}, nav.paths())
}

func TestLogout_NoToken_SkipsNotification(t *testing.T) {
	backend := &fakeBackend{}
	nav := &fakeNavigator{current: "/dashboard"}
	gate := New(backend, NewMemoryCredentialStore(), nav, testRoutes(), nil)

	gate.Logout(context.Background())

	assert.Zero(t, backend.logoutCalls)
	assert.Equal(t, []string{"/auth/sign-in"}, nav.paths())
}

// ── Snapshot ──────────────────────────────────────────────────────────────────

func TestCurrentSession_AuthenticationTracksUserOnly(t *testing.T) {
	gate := New(&fakeBackend{}, NewMemoryCredentialStore(), &fakeNavigator{}, testRoutes(), nil)

	// Token present but no resolved user: still unauthenticated.
	gate.mu.Lock()
	gate.session.AccessToken = "tok_orphan"
	gate.session.IsLoading = false
	gate.mu.Unlock()

	snapshot := gate.CurrentSession()
	assert.False(t, snapshot.IsAuthenticated, "token presence alone never implies authentication")
	assert.Nil(t, snapshot.CurrentUser)
}

// ── Permissions ───────────────────────────────────────────────────────────────

func TestUserPermissions(t *testing.T) {
	tests := []struct {
		name      string
		user      *User
		area      string
		canRead   bool
		canBlock  bool
		canDelete bool
	}{
		{
			name:    "nil user has nothing",
			user:    nil,
			area:    "content_management",
			canRead: false,
		},
		{
			name:      "super admin has everything",
			user:      &User{IsSuperAdmin: true},
			area:      "risk",
			canRead:   true,
			canBlock:  true,
			canDelete: true,
		},
		{
			name: "grants are per area",
			user: &User{Permissions: map[string]Grant{
				"support": {Read: true, Block: true},
			}},
			area:     "support",
			canRead:  true,
			canBlock: true,
		},
		{
			name: "missing area grants nothing",
			user: &User{Permissions: map[string]Grant{
				"support": {Read: true},
			}},
			area: "user_management",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canRead, tt.user.CanRead(tt.area))
			assert.Equal(t, tt.canBlock, tt.user.CanBlock(tt.area))
			assert.Equal(t, tt.canDelete, tt.user.CanDelete(tt.area))
		})
	}
}
