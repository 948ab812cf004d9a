// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package ticket

import (
	"context"

	"github.com/capitalcurv/backoffice/pkg/pagination"
)

// Repository is the data boundary for support tickets.
type Repository interface {
	ListTickets(ctx context.Context, params pagination.Params) ([]*Ticket, int, error)
	GetTicket(ctx context.Context, id string) (*Ticket, error)

	// Reply appends an admin message to the conversation.
	Reply(ctx context.Context, id, body string) error

	// SetStatus moves the ticket to a new lifecycle status.
	SetStatus(ctx context.Context, id, status string) error
}
