// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package faq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/upstream"
	"github.com/capitalcurv/backoffice/pkg/pagination"
)

const basePath = "/admin/faqs"

// RESTRepository proxies FAQ operations to the Core API.
type RESTRepository struct {
	client *upstream.Client
}

func NewRESTRepository(client *upstream.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (repository *RESTRepository) ListFAQs(ctx context.Context, params pagination.Params) ([]*FAQ, int, error) {
	path := fmt.Sprintf("%s?page=%d&limit=%d", basePath, params.Page, params.Limit)

	payload, meta, err := repository.client.GetList(ctx, gate.BearerFromContext(ctx), path)
	if err != nil {
		return nil, 0, err
	}

	var items []*FAQ
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("decode_faq_list: %w", err))
	}
	return items, meta.Total, nil
}

func (repository *RESTRepository) GetFAQ(ctx context.Context, id string) (*FAQ, error) {
	payload, err := repository.client.Get(ctx, gate.BearerFromContext(ctx), basePath+"/"+id)
	if err != nil {
		return nil, err
	}

	item := &FAQ{}
	if err := json.Unmarshal(payload, item); err != nil {
		return nil, apperr.Internal(fmt.Errorf("decode_faq: %w", err))
	}
	return item, nil
}

func (repository *RESTRepository) CreateFAQ(ctx context.Context, item *FAQ) error {
	payload, err := repository.client.Post(ctx, gate.BearerFromContext(ctx), basePath, item)
	if err != nil {
		return err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, item); err != nil {
			return apperr.Internal(fmt.Errorf("decode_faq: %w", err))
		}
	}
	return nil
}

func (repository *RESTRepository) UpdateFAQ(ctx context.Context, item *FAQ) error {
	payload, err := repository.client.Put(ctx, gate.BearerFromContext(ctx), basePath+"/"+item.ID, item)
	if err != nil {
		return err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, item); err != nil {
			return apperr.Internal(fmt.Errorf("decode_faq: %w", err))
		}
	}
	return nil
}

func (repository *RESTRepository) DeleteFAQ(ctx context.Context, id string) error {
	_, err := repository.client.Delete(ctx, gate.BearerFromContext(ctx), basePath+"/"+id)
	return err
}
