// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

// Package news manages the platform announcement posts shown to end users.
package news

import "time"

// Publication statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Form field names, shared by validation and the edit templates.
const (
	FieldTitle  = "title"
	FieldStatus = "status"
	FieldBody   = "body"
)

// News is one announcement post, as exposed by the Core API.
type News struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
