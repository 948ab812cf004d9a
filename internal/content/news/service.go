// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package news

import (
	"context"
	"log/slog"

	"github.com/capitalcurv/backoffice/internal/platform/validate"
	"github.com/capitalcurv/backoffice/pkg/pagination"
	"github.com/capitalcurv/backoffice/pkg/slug"
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

func (service *Service) ListNews(context context.Context, params pagination.Params) ([]*News, int, error) {
	return service.repo.ListNews(context, params)
}

func (service *Service) GetNews(context context.Context, id string) (*News, error) {
	return service.repo.GetNews(context, id)
}

func (service *Service) CreateNews(context context.Context, item *News) error {
	if err := service.validate(item); err != nil {
		return err
	}
	item.Slug = slug.From(item.Title)

	if err := service.repo.CreateNews(context, item); err != nil {
		return err
	}

	service.logger.Info("news_created", slog.String("title", item.Title), slog.String("slug", item.Slug))
	return nil
}

func (service *Service) UpdateNews(context context.Context, id string, item *News) error {
	item.ID = id
	if err := service.validate(item); err != nil {
		return err
	}
	// The slug tracks the title so published URLs stay predictable.
	item.Slug = slug.From(item.Title)

	if err := service.repo.UpdateNews(context, item); err != nil {
		return err
	}

	service.logger.Info("news_updated", slog.String("news_id", id))
	return nil
}

func (service *Service) DeleteNews(context context.Context, id string) error {
	if err := service.repo.DeleteNews(context, id); err != nil {
		return err
	}

	service.logger.Warn("news_deleted", slog.String("news_id", id))
	return nil
}

func (service *Service) validate(item *News) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, item.Title).MaxLen(FieldTitle, item.Title, 200)
	validator.Required(FieldBody, item.Body)
	validator.OneOf(FieldStatus, item.Status, StatusDraft, StatusPublished)

	return validator.Err()
}
