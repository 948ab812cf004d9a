// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package risk

import (
	"context"
	"log/slog"

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

func (service *Service) ListEvents(context context.Context, params pagination.Params) ([]*Event, int, error) {
	return service.repo.ListEvents(context, params)
}
