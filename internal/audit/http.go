// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capitalcurv/backoffice/internal/platform/render"
	"github.com/capitalcurv/backoffice/pkg/pagination"
)

type Handler struct {
	service  *Service
	renderer *render.Renderer
}

func NewHandler(service *Service, renderer *render.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listEntries)
}

func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	entries, total, err := handler.service.List(request.Context(), params.Limit, params.Offset())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.HTML(writer, request, http.StatusOK, "audit_list.html", map[string]any{
		"Items": entries,
		"Meta":  pagination.NewMeta(params.Page, params.Limit, total),
	})
}
