// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

/*
Package upstream is the only place that talks to the Core API.

It owns three concerns so that nothing above it has to:

  - transport: bearer-authenticated JSON over HTTP with a bounded timeout
  - error mapping: upstream rejections become [apperr.AppError] values with
    the Core API's own message preserved for display
  - envelope normalization: the Core API wraps payloads inconsistently
    (result.admin, result.data, bare result); callers receive the payload
    already unwrapped
*/
package upstream

import (
	"bytes"
	stdctx "context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/capitalcurv/backoffice/internal/platform/apperr"
)

const requestTimeout = 15 * time.Second

// Client is a bearer-authenticated JSON client for the Core API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Core API client rooted at baseURL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// Get issues a GET and returns the normalized payload.
func (client *Client) Get(ctx stdctx.Context, token, path string) (json.RawMessage, error) {
	return client.unwrap(client.do(ctx, http.MethodGet, token, path, nil))
}

// GetList issues a GET against a collection endpoint and returns the items
// plus list metadata.
func (client *Client) GetList(ctx stdctx.Context, token, path string) (json.RawMessage, Meta, error) {
	raw, err := client.do(ctx, http.MethodGet, token, path, nil)
	if err != nil {
		return nil, Meta{}, err
	}
	items, meta, err := NormalizeList(raw)
	if err != nil {
		return nil, Meta{}, apperr.Internal(fmt.Errorf("upstream_envelope_invalid: %w", err))
	}
	return items, meta, nil
}

// Post issues a POST with a JSON body and returns the normalized payload.
func (client *Client) Post(ctx stdctx.Context, token, path string, body any) (json.RawMessage, error) {
	return client.unwrap(client.do(ctx, http.MethodPost, token, path, body))
}

// Put issues a PUT with a JSON body and returns the normalized payload.
func (client *Client) Put(ctx stdctx.Context, token, path string, body any) (json.RawMessage, error) {
	return client.unwrap(client.do(ctx, http.MethodPut, token, path, body))
}

// Patch issues a PATCH with a JSON body and returns the normalized payload.
func (client *Client) Patch(ctx stdctx.Context, token, path string, body any) (json.RawMessage, error) {
	return client.unwrap(client.do(ctx, http.MethodPatch, token, path, body))
}

// Delete issues a DELETE and returns the normalized payload (often empty).
func (client *Client) Delete(ctx stdctx.Context, token, path string) (json.RawMessage, error) {
	return client.unwrap(client.do(ctx, http.MethodDelete, token, path, nil))
}

// unwrap applies envelope normalization to a successful raw response.
func (client *Client) unwrap(raw []byte, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	payload, err := Normalize(raw)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("upstream_envelope_invalid: %w", err))
	}
	return payload, nil
}

// do executes the request and returns the raw, still-wrapped body.
func (client *Client) do(ctx stdctx.Context, method, token, path string, body any) ([]byte, error) {
	// ── 1. Build the request ──────────────────────────────────────────────

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("upstream_encode_failed: %w", err))
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("upstream_request_build_failed: %w", err))
	}

	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	// ── 2. Execute ────────────────────────────────────────────────────────

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.WarnContext(ctx, "upstream_unreachable",
			slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return nil, apperr.ServiceUnavailable("core api is unreachable")
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, 4<<20))
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("upstream_read_failed: %w", err))
	}

	// ── 3. Map rejections ─────────────────────────────────────────────────

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, client.rejection(ctx, method, path, response.StatusCode, raw)
	}

	return raw, nil
}

// rejection converts a non-2xx response into an [apperr.AppError], keeping
// the Core API's own message so forms can display it verbatim.
func (client *Client) rejection(ctx stdctx.Context, method, path string, status int, raw []byte) error {
	message := extractMessage(raw)

	client.logger.WarnContext(ctx, "upstream_rejected",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("message", message))

	switch status {
	case http.StatusNotFound:
		return apperr.NotFound("resource")
	case http.StatusUnauthorized:
		return apperr.Unauthorized(nonEmpty(message, "session is no longer valid"))
	case http.StatusForbidden:
		return apperr.Forbidden(nonEmpty(message, "access denied by core api"))
	default:
		return apperr.Upstream(status, nonEmpty(message, "core api rejected the request"))
	}
}

// extractMessage digs the human-readable message out of an error body, which
// arrives either at the top level or nested under "error".
func extractMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error.Message
}

func nonEmpty(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
