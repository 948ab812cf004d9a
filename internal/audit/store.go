// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package audit

import "context"

// Repository is the persistence boundary for the audit trail.
type Repository interface {
	// Insert appends one entry. The trail is append-only.
	Insert(ctx context.Context, entry *Entry) error

	// List returns entries newest first, with the total count for paging.
	List(ctx context.Context, limit, offset int) ([]*Entry, int, error)
}
