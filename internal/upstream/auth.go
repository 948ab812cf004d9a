// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package upstream

import (
	stdctx "context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/apperr"
)

// Core API auth endpoints.
const (
	pathProfile = "/admin/auth/me"
	pathLogin   = "/admin/auth/login"
	pathLogout  = "/admin/auth/logout"
)

// AuthClient implements [gate.BackendClient] against the Core API.
//
// All envelope quirks are absorbed here; the gate only ever sees resolved
// users and tokens.
type AuthClient struct {
	client *Client
}

// NewAuthClient wraps a Core API client for the gate.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// adminPayload is the Core API's wire shape for an admin profile.
type adminPayload struct {
	ID           string                `json:"id"`
	Email        string                `json:"email"`
	Name         string                `json:"name"`
	IsSuperAdmin bool                  `json:"isSuperAdmin"`
	Permissions  map[string]gate.Grant `json:"permissions"`
}

func (payload *adminPayload) toUser() *gate.User {
	return &gate.User{
		ID:           payload.ID,
		Email:        payload.Email,
		Name:         payload.Name,
		IsSuperAdmin: payload.IsSuperAdmin,
		Permissions:  payload.Permissions,
	}
}

// Profile resolves the admin profile for a bearer credential.
func (auth *AuthClient) Profile(ctx stdctx.Context, accessToken string) (*gate.User, error) {
	payload, err := auth.client.Get(ctx, accessToken, pathProfile)
	if err != nil {
		return nil, err
	}

	var admin adminPayload
	if err := json.Unmarshal(payload, &admin); err != nil {
		return nil, apperr.Internal(fmt.Errorf("profile_decode_failed: %w", err))
	}
	if admin.ID == "" {
		return nil, apperr.Unauthorized("profile response carried no admin")
	}

	return admin.toUser(), nil
}

// Login exchanges credentials for tokens and, when the Core API embeds one,
// the admin profile.
func (auth *AuthClient) Login(ctx stdctx.Context, identifier, secret string) (*gate.LoginResult, error) {
	// The login envelope keeps tokens and admin side by side, so it must not
	// go through the admin-extraction rule; it is decoded here in full from
	// the raw response.
	raw, err := auth.client.do(ctx, http.MethodPost, "", pathLogin, map[string]string{
		"email":    identifier,
		"password": secret,
	})
	if err != nil {
		return nil, err
	}

	var envelope rawEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, apperr.Internal(fmt.Errorf("login_decode_failed: %w", err))
	}
	payload := envelope.Result
	if payload == nil {
		payload = raw
	}

	var body struct {
		AccessToken  string          `json:"accessToken"`
		RefreshToken string          `json:"refreshToken"`
		Admin        json.RawMessage `json:"admin"`
		Permissions  json.RawMessage `json:"permissions"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, apperr.Internal(fmt.Errorf("login_decode_failed: %w", err))
	}
	if body.AccessToken == "" {
		return nil, apperr.Internal(fmt.Errorf("login response carried no access token"))
	}

	result := &gate.LoginResult{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
	}

	if body.Admin != nil {
		merged, err := mergePermissions(body.Admin, body.Permissions)
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("login_decode_failed: %w", err))
		}
		var admin adminPayload
		if err := json.Unmarshal(merged, &admin); err != nil {
			return nil, apperr.Internal(fmt.Errorf("login_decode_failed: %w", err))
		}
		result.User = admin.toUser()
	}

	return result, nil
}

// Logout notifies the Core API that the session ended.
func (auth *AuthClient) Logout(ctx stdctx.Context, accessToken string) error {
	_, err := auth.client.Post(ctx, accessToken, pathLogout, nil)
	return err
}
