// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package blog

import (
	"context"

	"github.com/capitalcurv/backoffice/pkg/pagination"
)

// Repository is the data boundary for blog posts.
type Repository interface {
	ListBlogs(ctx context.Context, params pagination.Params) ([]*Blog, int, error)
	GetBlog(ctx context.Context, id string) (*Blog, error)
	CreateBlog(ctx context.Context, item *Blog) error
	UpdateBlog(ctx context.Context, item *Blog) error
	DeleteBlog(ctx context.Context, id string) error
}
