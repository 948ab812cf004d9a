// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package blog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/upstream"
	"github.com/capitalcurv/backoffice/pkg/pagination"
)

const basePath = "/admin/blogs"

// RESTRepository proxies blog operations to the Core API.
type RESTRepository struct {
	client *upstream.Client
}

func NewRESTRepository(client *upstream.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (repository *RESTRepository) ListBlogs(ctx context.Context, params pagination.Params) ([]*Blog, int, error) {
	path := fmt.Sprintf("%s?page=%d&limit=%d", basePath, params.Page, params.Limit)

	payload, meta, err := repository.client.GetList(ctx, gate.BearerFromContext(ctx), path)
	if err != nil {
		return nil, 0, err
	}

	var items []*Blog
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("decode_blog_list: %w", err))
	}
	return items, meta.Total, nil
}

func (repository *RESTRepository) GetBlog(ctx context.Context, id string) (*Blog, error) {
	payload, err := repository.client.Get(ctx, gate.BearerFromContext(ctx), basePath+"/"+id)
	if err != nil {
		return nil, err
	}

	item := &Blog{}
	if err := json.Unmarshal(payload, item); err != nil {
		return nil, apperr.Internal(fmt.Errorf("decode_blog: %w", err))
	}
	return item, nil
}

func (repository *RESTRepository) CreateBlog(ctx context.Context, item *Blog) error {
	payload, err := repository.client.Post(ctx, gate.BearerFromContext(ctx), basePath, item)
	if err != nil {
		return err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, item); err != nil {
			return apperr.Internal(fmt.Errorf("decode_blog: %w", err))
		}
	}
	return nil
}

func (repository *RESTRepository) UpdateBlog(ctx context.Context, item *Blog) error {
	payload, err := repository.client.Put(ctx, gate.BearerFromContext(ctx), basePath+"/"+item.ID, item)
	if err != nil {
		return err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, item); err != nil {
			return apperr.Internal(fmt.Errorf("decode_blog: %w", err))
		}
	}
	return nil
}

func (repository *RESTRepository) DeleteBlog(ctx context.Context, id string) error {
	_, err := repository.client.Delete(ctx, gate.BearerFromContext(ctx), basePath+"/"+id)
	return err
}
