// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package referral

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

func (service *Service) ListReferrals(context context.Context, params pagination.Params) ([]*Referral, int, error) {
	return service.repo.ListReferrals(context, params)
}

func (service *Service) BlockReferral(context context.Context, id string) error {
	if err := service.repo.SetBlocked(context, id, true); err != nil {
		return err
	}

	service.logger.Warn("referral_blocked", slog.String("referral_id", id))
	return nil
}

func (service *Service) UnblockReferral(context context.Context, id string) error {
	if err := service.repo.SetBlocked(context, id, false); err != nil {
		return err
	}

	service.logger.Info("referral_unblocked", slog.String("referral_id", id))
	return nil
}
