// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package ticket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/capitalcurv/backoffice/internal/gate"
	"github.com/capitalcurv/backoffice/internal/platform/apperr"
	"github.com/capitalcurv/backoffice/internal/upstream"
	"github.com/capitalcurv/backoffice/pkg/pagination"
)

const basePath = "/admin/tickets"

// RESTRepository proxies ticket operations to the Core API.
type RESTRepository struct {
	client *upstream.Client
}

func NewRESTRepository(client *upstream.Client) *RESTRepository {
	return &RESTRepository{client: client}
}

func (repository *RESTRepository) ListTickets(ctx context.Context, params pagination.Params) ([]*Ticket, int, error) {
	path := fmt.Sprintf("%s?page=%d&limit=%d", basePath, params.Page, params.Limit)

	payload, meta, err := repository.client.GetList(ctx, gate.BearerFromContext(ctx), path)
	if err != nil {
		return nil, 0, err
	}

	var items []*Ticket
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("decode_ticket_list: %w", err))
	}
	return items, meta.Total, nil
}

func (repository *RESTRepository) GetTicket(ctx context.Context, id string) (*Ticket, error) {
	payload, err := repository.client.Get(ctx, gate.BearerFromContext(ctx), basePath+"/"+id)
	if err != nil {
		return nil, err
	}

	item := &Ticket{}
	if err := json.Unmarshal(payload, item); err != nil {
		return nil, apperr.Internal(fmt.Errorf("decode_ticket: %w", err))
	}
	return item, nil
}

func (repository *RESTRepository) Reply(ctx context.Context, id, body string) error {
	_, err := repository.client.Post(ctx, gate.BearerFromContext(ctx), basePath+"/"+id+"/messages", map[string]string{
		"body": body,
	})
	return err
}

func (repository *RESTRepository) SetStatus(ctx context.Context, id, status string) error {
	_, err := repository.client.Patch(ctx, gate.BearerFromContext(ctx), basePath+"/"+id+"/status", map[string]string{
		"status": status,
	})
	return err
}
