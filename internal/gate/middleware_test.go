// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package gate

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalcurv/backoffice/internal/platform/constants"
	"github.com/capitalcurv/backoffice/internal/platform/sec"
)

type plainErrorRenderer struct{}

func (plainErrorRenderer) Error(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, err.Error(), http.StatusForbidden)
}

func newTestFactory(backend BackendClient, store CredentialStore) *Factory {
	return NewFactory(
		backend,
		sec.NewCookieSigner("0123456789abcdef0123456789abcdef", constants.CookieIssuer),
		func(string) CredentialStore { return store },
		testRoutes(),
		plainErrorRenderer{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestMiddleware_Unauthenticated_RedirectsToSignIn(t *testing.T) {
	factory := newTestFactory(&fakeBackend{}, NewMemoryCredentialStore())

	reached := false
	handler := factory.Middleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		reached = true
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/news", nil))

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/auth/sign-in", recorder.Header().Get("Location"))
	assert.False(t, reached, "the chain must stop on redirect")
}

func TestMiddleware_MintsSessionCookie(t *testing.T) {
	factory := newTestFactory(&fakeBackend{}, NewMemoryCredentialStore())

	handler := factory.Middleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/news", nil))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestMiddleware_Authenticated_InjectsSnapshotAndBearer(t *testing.T) {
	user := adminUser()
	backend := &fakeBackend{
		profileFunc: func(context.Context, string) (*User, error) { return user, nil },
	}
	store := NewMemoryCredentialStore()
	require.NoError(t, store.Set(context.Background(), KeyAccessToken, "tok_valid"))
	factory := newTestFactory(backend, store)

	var snapshot Snapshot
	var bearer string
	handler := factory.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot = FromContext(r.Context())
		bearer = BearerFromContext(r.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/news", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, snapshot.IsAuthenticated)
	assert.Equal(t, user, snapshot.CurrentUser)
	assert.Equal(t, "tok_valid", bearer)
}

func TestRequireRead(t *testing.T) {
	factory := newTestFactory(&fakeBackend{}, NewMemoryCredentialStore())
	guard := factory.RequireRead("support")

	reached := false
	handler := guard(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		reached = true
	}))

	t.Run("granted", func(t *testing.T) {
		reached = false
		user := &User{Permissions: map[string]Grant{"support": {Read: true}}}
		request := httptest.NewRequest(http.MethodGet, "/tickets", nil)
		request = request.WithContext(WithSession(request.Context(), Snapshot{CurrentUser: user, IsAuthenticated: true}))

		handler.ServeHTTP(httptest.NewRecorder(), request)
		assert.True(t, reached)
	})

	t.Run("denied", func(t *testing.T) {
		reached = false
		user := &User{Permissions: map[string]Grant{"risk": {Read: true}}}
		request := httptest.NewRequest(http.MethodGet, "/tickets", nil)
		request = request.WithContext(WithSession(request.Context(), Snapshot{CurrentUser: user, IsAuthenticated: true}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.False(t, reached)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
