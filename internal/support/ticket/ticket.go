// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

// Package ticket manages customer support conversations: reading threads,
// replying on behalf of the support team, and moving tickets through their
// lifecycle.
package ticket

import "time"

// Ticket lifecycle statuses.
const (
	StatusOpen     = "open"
	StatusPending  = "pending"
	StatusResolved = "resolved"
	StatusClosed   = "closed"
)

// Statuses lists every lifecycle status, in display order.
var Statuses = []string{StatusOpen, StatusPending, StatusResolved, StatusClosed}

// Form field names.
const (
	FieldBody   = "body"
	FieldStatus = "status"
)

// Message is one entry in a ticket conversation.
type Message struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	FromAdmin  bool      `json:"fromAdmin"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sentAt"`
}

// Ticket is one support conversation, as exposed by the Core API.
//
// Messages is only populated on detail fetches; list responses carry the
// ticket head alone.
type Ticket struct {
	ID             string     `json:"id"`
	Subject        string     `json:"subject"`
	RequesterEmail string     `json:"requesterEmail"`
	Status         string     `json:"status"`
	Messages       []*Message `json:"messages"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
