// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

// Package risk surfaces the fraud and compliance events raised by the Core
// API's monitoring. The console is a read-only window on them.
package risk

import "time"

// Event is one risk signal, as exposed by the Core API.
type Event struct {
	ID         string    `json:"id"`
	Severity   string    `json:"severity"`
	Kind       string    `json:"kind"`
	Subject    string    `json:"subject"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurredAt"`
}
