// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package blog

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
	router.Get("/", handler.listBlogs)
	router.Get("/new", handler.newForm)
	router.Post("/new", handler.createBlog)
	router.Get("/{id}/edit", handler.editForm)
	router.Post("/{id}/edit", handler.updateBlog)
	router.Post("/{id}/delete", handler.deleteBlog)
}

func (handler *Handler) listBlogs(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListBlogs(request.Context(), params)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.HTML(writer, request, http.StatusOK, "blog_list.html", map[string]any{
		"Items": items,
		"Meta":  pagination.NewMeta(params.Page, params.Limit, total),
	})
}

func (handler *Handler) newForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderForm(writer, request, &Blog{Status: StatusDraft}, "")
}

func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetBlog(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}
	handler.renderForm(writer, request, item, "")
}

func (handler *Handler) createBlog(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanCreate(constants.AreaContentManagement) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not create blog posts"))
		return
	}

	item, err := handler.formItem(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateBlog(request.Context(), item); err != nil {
		handler.renderForm(writer, request, item, formMessage(err))
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionCreate, "blog", item.ID, middleware.RealIP(request))
	http.Redirect(writer, request, "/blogs", http.StatusSeeOther)
}

func (handler *Handler) updateBlog(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanUpdate(constants.AreaContentManagement) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not edit blog posts"))
		return
	}

	blogID := chi.URLParam(request, "id")
	item, err := handler.formItem(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateBlog(request.Context(), blogID, item); err != nil {
		handler.renderForm(writer, request, item, formMessage(err))
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionUpdate, "blog", blogID, middleware.RealIP(request))
	http.Redirect(writer, request, "/blogs", http.StatusSeeOther)
}

func (handler *Handler) deleteBlog(writer http.ResponseWriter, request *http.Request) {
	session := gate.FromContext(request.Context())
	if !session.CurrentUser.CanDelete(constants.AreaContentManagement) {
		handler.renderer.Error(writer, request, apperr.Forbidden("you may not delete blog posts"))
		return
	}

	blogID := chi.URLParam(request, "id")
	if err := handler.service.DeleteBlog(request.Context(), blogID); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.auditor.Record(session.CurrentUser, audit.ActionDelete, "blog", blogID, middleware.RealIP(request))
	http.Redirect(writer, request, "/blogs", http.StatusSeeOther)
}

func (handler *Handler) renderForm(writer http.ResponseWriter, request *http.Request, item *Blog, message string) {
	handler.renderer.HTML(writer, request, http.StatusOK, "blog_form.html", map[string]any{
		"Item":  item,
		"Error": message,
	})
}

func (handler *Handler) formItem(request *http.Request) (*Blog, error) {
	if err := request.ParseForm(); err != nil {
		return nil, validate.ErrInvalidForm
	}
	return &Blog{
		Title:      request.PostFormValue(FieldTitle),
		AuthorName: request.PostFormValue(FieldAuthorName),
		Status:     request.PostFormValue(FieldStatus),
		Body:       request.PostFormValue(FieldBody),
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
