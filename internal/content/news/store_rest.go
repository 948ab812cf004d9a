// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package news

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/upstream"
	"github.com/capitalcurv/backoffice/pkg/pagination"
)

const basePath = "/admin/news"

// RESTRepository proxies news operations to the Core API on behalf of the
// signed-in admin, using the bearer token the gate put on the context.
type RESTRepository struct {
	client *upstream.Client
}

func NewRESTRepository(client *upstream.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (repository *RESTRepository) ListNews(ctx context.Context, params pagination.Params) ([]*News, int, error) {
	path := fmt.Sprintf("%s?page=%d&limit=%d", basePath, params.Page, params.Limit)

	payload, meta, err := repository.client.GetList(ctx, gate.BearerFromContext(ctx), path)
	if err != nil {
		return nil, 0, err
	}

	var items []*News
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("decode_news_list: %w", err))
	}
	return items, meta.Total, nil
}

func (repository *RESTRepository) GetNews(ctx context.Context, id string) (*News, error) {
	payload, err := repository.client.Get(ctx, gate.BearerFromContext(ctx), basePath+"/"+id)
	if err != nil {
		return nil, err
	}

	item := &News{}
	if err := json.Unmarshal(payload, item); err != nil {
		return nil, apperr.Internal(fmt.Errorf("decode_news: %w", err))
	}
	return item, nil
}

func (repository *RESTRepository) CreateNews(ctx context.Context, item *News) error {
	payload, err := repository.client.Post(ctx, gate.BearerFromContext(ctx), basePath, item)
	if err != nil {
		return err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, item); err != nil {
			return apperr.Internal(fmt.Errorf("decode_news: %w", err))
		}
	}
	return nil
}

func (repository *RESTRepository) UpdateNews(ctx context.Context, item *News) error {
	payload, err := repository.client.Put(ctx, gate.BearerFromContext(ctx), basePath+"/"+item.ID, item)
	if err != nil {
		return err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, item); err != nil {
			return apperr.Internal(fmt.Errorf("decode_news: %w", err))
		}
	}
	return nil
}

func (repository *RESTRepository) DeleteNews(ctx context.Context, id string) error {
	_, err := repository.client.Delete(ctx, gate.BearerFromContext(ctx), basePath+"/"+id)
	return err
}
