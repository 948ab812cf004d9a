// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

// Package files resolves short-lived signed download URLs for attachments
// referenced by tickets and content. The console never proxies file bytes;
// it redirects the browser to the signed URL the Core API mints.
package files

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/platform/render"
	"github.com/capitalcurv/backoffice/internal/upstream"
)

const basePath = "/admin/files"

type Service struct {
	client *upstream.Client
	logger *slog.Logger
}

func NewService(client *upstream.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// SignedURL asks the Core API to mint a short-lived download URL for a file.
func (service *Service) SignedURL(ctx context.Context, fileID string) (string, error) {
	payload, err := service.client.Get(ctx, gate.BearerFromContext(ctx), basePath+"/"+fileID+"/signed-url")
	if err != nil {
		return "", err
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", apperr.Internal(fmt.Errorf("decode_signed_url: %w", err))
	}
	if body.URL == "" {
		return "", apperr.NotFound("File")
	}

	return body.URL, nil
}

type Handler struct {
	service  *Service
	renderer *render.Renderer
}

func NewHandler(service *Service, renderer *render.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}", handler.downloadFile)
}

// downloadFile redirects the browser straight to the signed URL; the bytes
// never flow through the console.
func (handler *Handler) downloadFile(writer http.ResponseWriter, request *http.Request) {
	url, err := handler.service.SignedURL(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	http.Redirect(writer, request, url, http.StatusFound)
}
