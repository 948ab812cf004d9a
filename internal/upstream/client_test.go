// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package upstream

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalcurv/backoffice/internal/platform/apperr"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_BearerHeader(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok_valid", r.Header.Get("Authorization"))
		w.Write([]byte(`{"result":{"id":"n1"}}`))
	})

	payload, err := client.Get(context.Background(), "tok_valid", "/admin/news/n1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"n1"}`, string(payload))
}

func TestClient_RejectionMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "401 becomes unauthorized with upstream message",
			status:      http.StatusUnauthorized,
			body:        `{"message":"token expired"}`,
			wantCode:    "UNAUTHORIZED",
			wantMessage: "token expired",
		},
		{
			name:     "404 becomes not found",
			status:   http.StatusNotFound,
			body:     `{}`,
			wantCode: "NOT_FOUND",
		},
		{
			name:        "422 passes the message through verbatim",
			status:      http.StatusUnprocessableEntity,
			body:        `{"message":"title already in use"}`,
			wantCode:    "UPSTREAM_REJECTED",
			wantMessage: "title already in use",
		},
		{
			name:        "nested error message is found",
			status:      http.StatusBadRequest,
			body:        `{"error":{"message":"invalid status transition"}}`,
			wantCode:    "UPSTREAM_REJECTED",
			wantMessage: "invalid status transition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.Get(context.Background(), "tok", "/admin/news")
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, tt.wantCode, appError.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, appError.Message)
			}
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.Get(context.Background(), "tok", "/admin/news")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "SERVICE_UNAVAILABLE", appError.Code)
}

func TestAuthClient_Login_FullEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/auth/login", r.URL.Path)
		w.Write([]byte(`{"result":{
			"accessToken":"tok_new",
			"refreshToken":"ref_new",
			"admin":{"id":"a1","email":"ops@capitalcurv.io","name":"Ops Admin"},
			"permissions":{"support":{"read":true,"block":true}}
		}}`))
	})
	auth := NewAuthClient(client)

	result, err := auth.Login(context.Background(), "ops@capitalcurv.io", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "tok_new", result.AccessToken)
	assert.Equal(t, "ref_new", result.RefreshToken)
	require.NotNil(t, result.User)
	assert.Equal(t, "a1", result.User.ID)
	assert.True(t, result.User.CanBlock("support"), "sibling permissions must be merged into the embedded admin")
}

func TestAuthClient_Login_TokensOnly(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"accessToken":"tok_new"}}`))
	})
	auth := NewAuthClient(client)

	result, err := auth.Login(context.Background(), "ops@capitalcurv.io", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "tok_new", result.AccessToken)
	assert.Nil(t, result.User, "no embedded admin means the gate must validate separately")
}

func TestAuthClient_Login_RejectionKeepsMessage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid email or password"}`))
	})
	auth := NewAuthClient(client)

	_, err := auth.Login(context.Background(), "ops@capitalcurv.io", "wrong")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "invalid email or password", appError.Message)
}

func TestAuthClient_Profile(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/auth/me", r.URL.Path)
		w.Write([]byte(`{"result":{
			"admin":{"id":"a1","email":"ops@capitalcurv.io","isSuperAdmin":true}
		}}`))
	})
	auth := NewAuthClient(client)

	user, err := auth.Profile(context.Background(), "tok_valid")
	require.NoError(t, err)

	assert.Equal(t, "a1", user.ID)
	assert.True(t, user.IsSuperAdmin)
	assert.True(t, user.CanDelete("anything"), "super admins hold every grant")
}
