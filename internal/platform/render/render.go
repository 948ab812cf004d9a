// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

/*
Package render owns the embedded HTML views for the dashboard pages.

It parses all templates once at startup and exposes a small Renderer used by
every page handler. Views are deliberately unstyled tables and forms — the
console's value is the data and the gate, not the chrome.

Usage:

	renderer.HTML(w, r, http.StatusOK, "news_list.html", data)
*/
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/platform/ctxutil"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes named templates from the embedded view set.
type Renderer struct {
	templates *template.Template
	logger    *slog.Logger
}

// New parses the embedded templates and returns a ready Renderer.
//
// Parsing happens once; a malformed template is a startup failure, never a
// per-request one.
func New(logger *slog.Logger) (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse templates: %w", err)
	}

	return &Renderer{templates: templates, logger: logger}, nil
}

// HTML renders the named template with the given data.
//
// The template is executed into a buffer first so that an execution error
// can still produce a clean 500 instead of a half-written page.
func (renderer *Renderer) HTML(writer http.ResponseWriter, request *http.Request, status int, name string, data any) {
	var buffer bytes.Buffer

	if err := renderer.templates.ExecuteTemplate(&buffer, name, data); err != nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "template_render_failed",
			slog.String("template", name),
			slog.Any("error", err),
		)
		http.Error(writer, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

// Error renders the shared error page for any Go error.
//
// AppError statuses and client-safe messages pass through; everything else
// collapses to a logged 500.
func (renderer *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "unhandled_page_error",
			slog.Any("error", err),
		)
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "page_server_error",
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		)
	}

	renderer.HTML(writer, request, appError.HTTPStatus, "error.html", map[string]any{
		"Code":    appError.Code,
		"Message": appError.Message,
	})
}
