// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package referral

import (
	"context"

	"github.com/capitalcurv/backoffice/pkg/pagination"
)

// Repository is the data boundary for the referral program.
type Repository interface {
	ListReferrals(ctx context.Context, params pagination.Params) ([]*Referral, int, error)

	// SetBlocked blocks or unblocks one referral pair.
	SetBlocked(ctx context.Context, id string, blocked bool) error
}
