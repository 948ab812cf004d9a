// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package faq

import (
	"net/http"
	"strconv"

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
	router.Get("/", handler.listFAQs)
	router.Get("/new", handler.newForm)
	router.Post("/new", handler.createFAQ)
	router.Get("/{id}/edit", handler.editForm)
	router.Post("/{id}/edit", handler.updateFAQ)
	router.Post("/{id}/delete", handler.deleteFAQ)
}

func (handler *Handler) listFAQs(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListFAQs(request.Context(), params)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.HTML(writer, request, http.StatusOK, "faq_list.html", map[string]any{
		"Items": items,
		"Meta":  pagination.NewMeta(params.Page, params.Limit, total),
	})
}

func (handler *Handler) newForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderForm(writer, request, &FAQ{Category: "general"}, "")
}

func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetFAQ(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}
	handler.renderForm(writer, request, item, "")
}

func (handler *Handler) createFAQ(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanCreate(constants.AreaContentManagement) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not create faq entries"))
		return
	}

	item, err := handler.formItem(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateFAQ(request.Context(), item); err != nil {
		handler.renderForm(writer, request, item, formMessage(err))
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionCreate, "faq", item.ID, middleware.RealIP(request))
	http.Redirect(writer, request, "/faqs", http.StatusSeeOther)
}

func (handler *Handler) updateFAQ(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanUpdate(constants.AreaContentManagement) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not edit faq entries"))
		return
	}

	faqID := chi.URLParam(request, "id")
	item, err := handler.formItem(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateFAQ(request.Context(), faqID, item); err != nil {
		handler.renderForm(writer, request, item, formMessage(err))
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionUpdate, "faq", faqID, middleware.RealIP(request))
	http.Redirect(writer, request, "/faqs", http.StatusSeeOther)
}

func (handler *Handler) deleteFAQ(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanDelete(constants.AreaContentManagement) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not delete faq entries"))
		return
	}

	faqID := chi.URLParam(request, "id")
	if err := handler.service.DeleteFAQ(request.Context(), faqID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionDelete, "faq", faqID, middleware.RealIP(request))
	http.Redirect(writer, request, "/faqs", http.StatusSeeOther)
}

func (handler *Handler) renderForm(writer http.ResponseWriter, request *http.Request, item *FAQ, message string) {
	handler.renderer.HTML(writer, request, http.StatusOK, "faq_form.html", map[string]any{
		"Item":       item,
		"Categories": Categories,
		"Error":      message,
	})
}

func (handler *Handler) formItem(request *http.Request) (*FAQ, error) {
	if err := request.ParseForm(); err != nil {
		return nil, validate.ErrInvalidForm
	}

	sortOrder, _ := strconv.Atoi(request.PostFormValue(FieldSortOrder))
	return &FAQ{
		Question:  request.PostFormValue(FieldQuestion),
		Answer:    request.PostFormValue(FieldAnswer),
		Category:  request.PostFormValue(FieldCategory),
		SortOrder: sortOrder,
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
