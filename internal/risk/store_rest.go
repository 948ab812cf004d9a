// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package risk

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/upstream"
	"github.com/capitalcurv/backoffice/pkg/pagination"
)

const basePath = "/admin/risk/events"

// RESTRepository proxies risk event reads to the Core API.
type RESTRepository struct {
	client *upstream.Client
}

func NewRESTRepository(client *upstream.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (repository *RESTRepository) ListEvents(ctx context.Context, params pagination.Params) ([]*Event, int, error) {
	path := fmt.Sprintf("%s?page=%d&limit=%d", basePath, params.Page, params.Limit)

	payload, meta, err := repository.client.GetList(ctx, gate.BearerFromContext(ctx), path)
	if err != nil {
		return nil, 0, err
	}

	var items []*Event
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("decode_risk_events: %w", err))
	}
	return items, meta.Total, nil
}
