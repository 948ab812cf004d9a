// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

// Package faq manages the help-center questions shown to end users.
package faq

import "time"

// Categories is the fixed set of help-center sections, in display order.
var Categories = []string{"accounts", "payments", "cards", "security", "general"}

// Form field names, shared by validation and the edit templates.
const (
	FieldQuestion  = "question"
	FieldAnswer    = "answer"
	FieldCategory  = "category"
	FieldSortOrder = "sort_order"
)

// FAQ is one help-center entry, as exposed by the Core API.
type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
