// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

/*
Package audit records every admin mutation performed through the console.

The trail is the console's own — it lives in local Postgres, not in the Core
API — so it survives upstream incidents and answers "who changed what from
where" without a round-trip. Recording is best effort and must never slow
down or fail the action it describes.
*/
package audit

import "time"

// Actions recorded in the trail.
const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionBlock   = "block"
	ActionUnblock = "unblock"
	ActionReply   = "reply"
	ActionStatus  = "status_change"
	ActionSignIn  = "sign_in"
	ActionSignOut = "sign_out"
)

// Entry is one recorded admin action.
type Entry struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	ActorEmail string    `json:"actor_email"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
}
