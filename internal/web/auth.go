// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/capitalcurv/backoffice/internal/audit"
	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/platform/middleware"
	"github.com/capitalcurv/backoffice/internal/platform/render"
	"github.com/capitalcurv/backoffice/internal/platform/validate"
)

// AuthHandler serves the public sign-in page and the sign-out action.
//
// These routes live under the public prefix and build their gate directly
// from the factory — they are exactly the routes the session middleware must
// not redirect away from.
type AuthHandler struct {
	gates    *gate.Factory
	renderer *render.Renderer
	auditor  *audit.Service
}

func NewAuthHandler(gates *gate.Factory, renderer *render.Renderer, auditor *audit.Service) *AuthHandler {
	return &AuthHandler{gates: gates, renderer: renderer, auditor: auditor}
}

func (handler *AuthHandler) RegisterRoutes(router chi.Router) {
	router.Get("/sign-in", handler.signInForm)
	router.Post("/sign-in", handler.signIn)
	router.Post("/sign-out", handler.signOut)
}

func (handler *AuthHandler) signInForm(writer http.ResponseWriter, request *http.Request) {
	// An already-authenticated admin has no business on the sign-in page.
	g := handler.gates.ForRequest(writer, request)
	g.Validate(request.Context())
	if g.CurrentSession().IsAuthenticated {
		http.Redirect(writer, request, "/dashboard", http.StatusSeeOther)
		return
	}

	handler.renderForm(writer, request, "", "")
}

func (handler *AuthHandler) signIn(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseForm(); err != nil {
		handler.renderer.Error(writer, request, validate.ErrInvalidForm)
		return
	}

	identifier := request.PostFormValue("identifier")
	secret := request.PostFormValue("secret")

	if identifier == "" || secret == "" {
		handler.renderForm(writer, request, identifier, "Email and password are required")
		return
	}

	g := handler.gates.ForRequest(writer, request)
	if err := g.Login(request.Context(), identifier, secret); err != nil {
		// The Core API's own rejection message is shown verbatim.
		message := "Sign-in failed"
		if appError := apperr.As(err); appError != nil {
			message = appError.Message
		}
		handler.renderForm(writer, request, identifier, message)
		return
	}

	handler.auditor.Record(g.CurrentSession().CurrentUser, audit.ActionSignIn, "session", "", middleware.RealIP(request))
}

func (handler *AuthHandler) signOut(writer http.ResponseWriter, request *http.Request) {
	g := handler.gates.ForRequest(writer, request)

	// Validate first so the audit record can name the actor; the logout
	// below succeeds regardless.
	g.Validate(request.Context())
	actor := g.CurrentSession().CurrentUser

	g.Logout(request.Context())
	handler.auditor.Record(actor, audit.ActionSignOut, "session", "", middleware.RealIP(request))
}

func (handler *AuthHandler) renderForm(writer http.ResponseWriter, request *http.Request, identifier, message string) {
	handler.renderer.HTML(writer, request, http.StatusOK, "sign_in.html", map[string]any{
		"Identifier": identifier,
		"Error":      message,
	})
}
