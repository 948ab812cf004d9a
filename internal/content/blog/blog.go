// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

// Package blog manages the marketing blog posts shown on the public site.
package blog

import "time"

// Publication statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Form field names, shared by validation and the edit templates.
const (
	FieldTitle      = "title"
	FieldAuthorName = "author_name"
	FieldStatus     = "status"
	FieldBody       = "body"
)

// Blog is one marketing post, as exposed by the Core API.
type Blog struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	AuthorName string    `json:"authorName"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
