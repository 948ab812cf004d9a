// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package news

import (
	"context"

	"github.com/capitalcurv/backoffice/pkg/pagination"
)

// Repository is the data boundary for news posts. The production
// implementation proxies the Core API.
type Repository interface {
	ListNews(ctx context.Context, params pagination.Params) ([]*News, int, error)
	GetNews(ctx context.Context, id string) (*News, error)
	CreateNews(ctx context.Context, item *News) error
	UpdateNews(ctx context.Context, item *News) error
	DeleteNews(ctx context.Context, id string) error
}
