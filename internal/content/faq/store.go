// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package faq

import (
	"context"

	"github.com/capitalcurv/backoffice/pkg/pagination"
)

// Repository is the data boundary for FAQ entries.
type Repository interface {
	ListFAQs(ctx context.Context, params pagination.Params) ([]*FAQ, int, error)
	GetFAQ(ctx context.Context, id string) (*FAQ, error)
	CreateFAQ(ctx context.Context, item *FAQ) error
	UpdateFAQ(ctx context.Context, item *FAQ) error
	DeleteFAQ(ctx context.Context, id string) error
}
