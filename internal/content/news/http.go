// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package news

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
	router.Get("/", handler.listNews)
	router.Get("/new", handler.newForm)
	router.Post("/new", handler.createNews)
	router.Get("/{id}/edit", handler.editForm)
	router.Post("/{id}/edit", handler.updateNews)
	router.Post("/{id}/delete", handler.deleteNews)
}

func (handler *Handler) listNews(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListNews(request.Context(), params)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.HTML(writer, request, http.StatusOK, "news_list.html", map[string]any{
		"Items": items,
		"Meta":  pagination.NewMeta(params.Page, params.Limit, total),
	})
}

func (handler *Handler) newForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderForm(writer, request, &News{Status: StatusDraft}, "")
}

func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetNews(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}
	handler.renderForm(writer, request, item, "")
}

func (handler *Handler) createNews(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanCreate(constants.AreaContentManagement) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not create news posts"))
		return
	}

	item, err := handler.formItem(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateNews(request.Context(), item); err != nil {
		handler.renderForm(writer, request, item, formMessage(err))
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionCreate, "news", item.ID, middleware.RealIP(request))
	http.Redirect(writer, request, "/news", http.StatusSeeOther)
}

func (handler *Handler) updateNews(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanUpdate(constants.AreaContentManagement) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not edit news posts"))
		return
	}

	newsID := chi.URLParam(request, "id")
	item, err := handler.formItem(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateNews(request.Context(), newsID, item); err != nil {
		handler.renderForm(writer, request, item, formMessage(err))
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionUpdate, "news", newsID, middleware.RealIP(request))
	http.Redirect(writer, request, "/news", http.StatusSeeOther)
}

func (handler *Handler) deleteNews(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanDelete(constants.AreaContentManagement) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not delete news posts"))
		return
	}

	newsID := chi.URLParam(request, "id")
	if err := handler.service.DeleteNews(request.Context(), newsID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionDelete, "news", newsID, middleware.RealIP(request))
	http.Redirect(writer, request, "/news", http.StatusSeeOther)
}

func (handler *Handler) renderForm(writer http.ResponseWriter, request *http.Request, item *News, message string) {
	handler.renderer.HTML(writer, request, http.StatusOK, "news_form.html", map[string]any{
		"Item":  item,
		"Error": message,
	})
}

func (handler *Handler) formItem(request *http.Request) (*News, error) {
	if err := request.ParseForm(); err != nil {
		return nil, validate.ErrInvalidForm
	}
	return &News{
		Title:  request.PostFormValue(FieldTitle),
		Status: request.PostFormValue(FieldStatus),
		Body:   request.PostFormValue(FieldBody),
	}, nil
}

// formMessage flattens a service error into one line the form can show.
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
