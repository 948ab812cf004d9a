// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package ticket

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capitalcurv/backoffice/internal/audit"
	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/platform/constants"
	"github.com/capitalcurv/backoffice/internal/platform/middleware"
	"github.com/capitalcurv/backoffice/internal/platform/render"
	"github.com/capitalcurv/backoffice/internal/platform/validate"
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
	router.Get("/", handler.listTickets)
	router.Get("/{id}", handler.showTicket)
	router.Post("/{id}/reply", handler.replyTicket)
	router.Post("/{id}/status", handler.changeStatus)
}

func (handler *Handler) listTickets(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListTickets(request.Context(), params)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.HTML(writer, request, http.StatusOK, "ticket_list.html", map[string]any{
		"Items": items,
		"Meta":  pagination.NewMeta(params.Page, params.Limit, total),
	})
}

func (handler *Handler) showTicket(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetTicket(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}
	handler.renderDetail(writer, request, item, "")
}

func (handler *Handler) replyTicket(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanCreate(constants.AreaSupport) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not reply to tickets"))
		return
	}

	ticketID := chi.URLParam(request, "id")
	if err := request.ParseForm(); err != nil {
		handler.renderer.Error(writer, request, validate.ErrInvalidForm)
		return
	}

	if err := handler.service.Reply(request.Context(), ticketID, request.PostFormValue(FieldBody)); err != nil {
		handler.showWithError(writer, request, ticketID, err)
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionReply, "ticket", ticketID, middleware.RealIP(request))
	http.Redirect(writer, request, "/tickets/"+ticketID, http.StatusSeeOther)
}

func (handler *Handler) changeStatus(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanUpdate(constants.AreaSupport) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not change ticket status"))
		return
	}

	ticketID := chi.URLParam(request, "id")
	if err := request.ParseForm(); err != nil {
		handler.renderer.Error(writer, request, validate.ErrInvalidForm)
		return
	}

	if err := handler.service.SetStatus(request.Context(), ticketID, request.PostFormValue(FieldStatus)); err != nil {
		handler.showWithError(writer, request, ticketID, err)
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionStatus, "ticket", ticketID, middleware.RealIP(request))
	http.Redirect(writer, request, "/tickets/"+ticketID, http.StatusSeeOther)
}

// showWithError re-renders the detail page with the failure inline, falling
// back to the error page when the ticket itself cannot be loaded.
func (handler *Handler) showWithError(writer http.ResponseWriter, request *http.Request, ticketID string, failure error) {
	item, err := handler.service.GetTicket(request.Context(), ticketID)
	if err != nil {
		handler.renderer.Error(writer, request, failure)
		return
	}
	handler.renderDetail(writer, request, item, formMessage(failure))
}

func (handler *Handler) renderDetail(writer http.ResponseWriter, request *http.Request, item *Ticket, message string) {
	handler.renderer.HTML(writer, request, http.StatusOK, "ticket_detail.html", map[string]any{
		"Item":  item,
		"Error": message,
	})
}

// formMessage flattens a service error into one line the page can show.
func formMessage(err error) string {
	appError := apperr.As(err)
	if appError == nil {
		return "An unexpected error occurred"
	}
	if len(appError.Details) > 0 {
		return appError.Details[0].Field + ": " + appError.Details[0].Message
	}
	return appError.Message
}
