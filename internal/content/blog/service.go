// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package blog

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

func (service *Service) ListBlogs(context context.Context, params pagination.Params) ([]*Blog, int, error) {
	return service.repo.ListBlogs(context, params)
}

func (service *Service) GetBlog(context context.Context, id string) (*Blog, error) {
	return service.repo.GetBlog(context, id)
}

func (service *Service) CreateBlog(context context.Context, item *Blog) error {
	if err := service.validate(item); err != nil {
		return err
	}
	item.Slug = slug.From(item.Title)

	if err := service.repo.CreateBlog(context, item); err != nil {
		return err
	}

	service.logger.Info("blog_created", slog.String("title", item.Title), slog.String("slug", item.Slug))
	return nil
}

func (service *Service) UpdateBlog(context context.Context, id string, item *Blog) error {
	item.ID = id
	if err := service.validate(item); err != nil {
		return err
	}
	item.Slug = slug.From(item.Title)

	if err := service.repo.UpdateBlog(context, item); err != nil {
		return err
	}

	service.logger.Info("blog_updated", slog.String("blog_id", id))
	return nil
}

func (service *Service) DeleteBlog(context context.Context, id string) error {
	if err := service.repo.DeleteBlog(context, id); err != nil {
		return err
	}

	service.logger.Warn("blog_deleted", slog.String("blog_id", id))
	return nil
}

func (service *Service) validate(item *Blog) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, item.Title).MaxLen(FieldTitle, item.Title, 200)
	validator.Required(FieldAuthorName, item.AuthorName).MaxLen(FieldAuthorName, item.AuthorName, 100)
	validator.Required(FieldBody, item.Body)
	validator.OneOf(FieldStatus, item.Status, StatusDraft, StatusPublished)

	return validator.Err()
}
