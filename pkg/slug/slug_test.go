// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/capitalcurv/backoffice/pkg/slug"
)

/*
TestFrom covers the slug transformation pipeline used for news/blog titles.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_title", "Q3 Fee Update", "q3-fee-update"},
		{"accents_removed", "Référral Café", "referral-cafe"},
		{"punctuation_collapsed", "New!! Limits -- apply?", "new-limits-apply"},
		{"trims_hyphens", "  --Edge case-- ", "edge-case"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
