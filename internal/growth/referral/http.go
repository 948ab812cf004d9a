// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package referral

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capitalcurv/backoffice/internal/audit"
	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/platform/constants"
	"github.com/capitalcurv/backoffice/internal/platform/middleware"
	"github.com/capitalcurv/backoffice/internal/platform/render"
	"github.com/capitalcurv/backoffice/pkg/pagination"
)

type Handler struct {
	service  *Service
	renderer *render.Renderer
	auditor  *audit.Service
}

func NewHandler(service *Service, renderer *render.Renderer, auditor *audit.Service) *Handler {
	return &Handler{service: service, renderer: renderer, auditor: auditor}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listReferrals)
	router.Post("/{id}/block", handler.blockReferral)
	router.Post("/{id}/unblock", handler.unblockReferral)
}

func (handler *Handler) listReferrals(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListReferrals(request.Context(), params)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.HTML(writer, request, http.StatusOK, "referral_list.html", map[string]any{
		"Items": items,
		"Meta":  pagination.NewMeta(params.Page, params.Limit, total),
	})
}

func (handler *Handler) blockReferral(writer http.ResponseWriter, request *http.Request) {
	handler.setBlocked(writer, request, true)
}

func (handler *Handler) unblockReferral(writer http.ResponseWriter, request *http.Request) {
	handler.setBlocked(writer, request, false)
}

func (handler *Handler) setBlocked(writer http.ResponseWriter, request *http.Request, blocked bool) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanBlock(constants.AreaUserManagement) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not block or unblock referrals"))
		return
	}

	referralID := chi.URLParam(request, "id")

	var err error
	action := audit.ActionBlock
	if blocked {
		err = handler.service.BlockReferral(request.Context(), referralID)
	} else {
		err = handler.service.UnblockReferral(request.Context(), referralID)
		action = audit.ActionUnblock
	}
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.auditor.Record(session.CurrentUser, action, "referral", referralID, middleware.RealIP(request))
	http.Redirect(writer, request, "/referrals", http.StatusSeeOther)
}
