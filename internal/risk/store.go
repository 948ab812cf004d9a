// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package risk

import (
	"context"

	"github.com/capitalcurv/backoffice/pkg/pagination"
)

// Repository is the data boundary for risk events. Read-only.
type Repository interface {
	ListEvents(ctx context.Context, params pagination.Params) ([]*Event, int, error)
}
