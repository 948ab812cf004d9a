// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

// Package referral manages the refer-a-friend program: reviewing conversions
// and blocking abusive referrers.
package referral

import "time"

// Referral is one referrer/referee pair, as exposed by the Core API.
//
// Reward is a formatted amount ("25.00 EUR"); the console displays it and
// never does arithmetic on it.
type Referral struct {
	ID            string    `json:"id"`
	ReferrerEmail string    `json:"referrerEmail"`
	RefereeEmail  string    `json:"refereeEmail"`
	Code          string    `json:"code"`
	Reward        string    `json:"reward"`
	Status        string    `json:"status"`
	IsBlocked     bool      `json:"isBlocked"`
	CreatedAt     time.Time `json:"createdAt"`
}
