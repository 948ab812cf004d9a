// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package web

import (
	"net/http"

	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/render"
)

// DashboardHandler serves the landing page behind the gate.
type DashboardHandler struct {
	renderer *render.Renderer
}

func NewDashboardHandler(renderer *render.Renderer) *DashboardHandler {
	return &DashboardHandler{renderer: renderer}
}

func (handler *DashboardHandler) Show(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())

	handler.renderer.HTML(writer, request, http.StatusOK, "dashboard.html", map[string]any{
		"User": session.CurrentUser,
	})
}
