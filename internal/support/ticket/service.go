// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package ticket

import (
	"context"
	"log/slog"

	"github.com/capitalcurv/backoffice/internal/platform/validate"
	"github.com/capitalcurv/backoffice/pkg/pagination"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTickets(context context.Context, params pagination.Params) ([]*Ticket, int, error) {
	return service.repo.ListTickets(context, params)
}

func (service *Service) GetTicket(context context.Context, id string) (*Ticket, error) {
	return service.repo.GetTicket(context, id)
}

func (service *Service) Reply(context context.Context, id, body string) error {
	validator := &validate.Validator{}
	validator.Required(FieldBody, body).MaxLen(FieldBody, body, 5000)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Reply(context, id, body); err != nil {
		return err
	}

	service.logger.Info("ticket_replied", slog.String("ticket_id", id))
	return nil
}

func (service *Service) SetStatus(context context.Context, id, status string) error {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, status, Statuses...)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.SetStatus(context, id, status); err != nil {
		return err
	}

	service.logger.Info("ticket_status_changed",
		slog.String("ticket_id", id), slog.String("status", status))
	return nil
}
