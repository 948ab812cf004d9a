// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package faq

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

func (service *Service) ListFAQs(context context.Context, params pagination.Params) ([]*FAQ, int, error) {
	return service.repo.ListFAQs(context, params)
}

func (service *Service) GetFAQ(context context.Context, id string) (*FAQ, error) {
	return service.repo.GetFAQ(context, id)
}

func (service *Service) CreateFAQ(context context.Context, item *FAQ) error {
	if err := service.validate(item); err != nil {
		return err
	}

	if err := service.repo.CreateFAQ(context, item); err != nil {
		return err
	}

	service.logger.Info("faq_created", slog.String("question", item.Question))
	return nil
}

func (service *Service) UpdateFAQ(context context.Context, id string, item *FAQ) error {
	item.ID = id
	if err := service.validate(item); err != nil {
		return err
	}

	if err := service.repo.UpdateFAQ(context, item); err != nil {
		return err
	}

	service.logger.Info("faq_updated", slog.String("faq_id", id))
	return nil
}

func (service *Service) DeleteFAQ(context context.Context, id string) error {
	if err := service.repo.DeleteFAQ(context, id); err != nil {
		return err
	}

	service.logger.Warn("faq_deleted", slog.String("faq_id", id))
	return nil
}

func (service *Service) validate(item *FAQ) error {
	validator := &validate.Validator{}

	validator.Required(FieldQuestion, item.Question).MaxLen(FieldQuestion, item.Question, 300)
	validator.Required(FieldAnswer, item.Answer)
	validator.OneOf(FieldCategory, item.Category, Categories...)
	validator.Custom(FieldSortOrder, item.SortOrder < 0, "Must be zero or positive")

	return validator.Err()
}
