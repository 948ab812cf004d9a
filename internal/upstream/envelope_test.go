// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package upstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "admin extraction",
			body: `{"result":{"admin":{"id":"a1","email":"ops@capitalcurv.io"}}}`,
			want: `{"id":"a1","email":"ops@capitalcurv.io"}`,
		},
		{
			name: "admin with sibling permissions merged",
			body: `{"result":{"admin":{"id":"a1"},"permissions":{"support":{"read":true}}}}`,
			want: `{"id":"a1","permissions":{"support":{"read":true}}}`,
		},
		{
			name: "embedded permissions win over sibling",
			body: `{"result":{"admin":{"id":"a1","permissions":{"risk":{"read":true}}},"permissions":{"support":{"read":true}}}}`,
			want: `{"id":"a1","permissions":{"risk":{"read":true}}}`,
		},
		{
			name: "data extraction",
			body: `{"result":{"data":[{"id":"n1"}],"total":7}}`,
			want: `[{"id":"n1"}]`,
		},
		{
			name: "bare result",
			body: `{"result":{"id":"n1","title":"Q3 Fee Update"}}`,
			want: `{"id":"n1","title":"Q3 Fee Update"}`,
		},
		{
			name: "admin takes precedence over data",
			body: `{"result":{"admin":{"id":"a1"},"data":[{"id":"n1"}]}}`,
			want: `{"id":"a1"}`,
		},
		{
			name: "scalar result",
			body: `{"result":true}`,
			want: `true`,
		},
		{
			name: "no result key passes through",
			body: `{"status":"ok"}`,
			want: `{"status":"ok"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Normalize([]byte(tt.body))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(payload))
		})
	}
}

func TestNormalize_NonObjectBody(t *testing.T) {
	_, err := Normalize([]byte(`not json`))
	assert.Error(t, err)
}

func TestNormalizeList(t *testing.T) {
	t.Run("wrapped collection keeps metadata", func(t *testing.T) {
		items, meta, err := NormalizeList([]byte(`{"result":{"data":[{"id":"n1"},{"id":"n2"}],"total":42,"page":3,"limit":20}}`))
		require.NoError(t, err)

		var decoded []map[string]string
		require.NoError(t, json.Unmarshal(items, &decoded))
		assert.Len(t, decoded, 2)
		assert.Equal(t, Meta{Total: 42, Page: 3, Limit: 20}, meta)
	})

	t.Run("bare array synthesizes total", func(t *testing.T) {
		items, meta, err := NormalizeList([]byte(`{"result":[{"id":"n1"},{"id":"n2"},{"id":"n3"}]}`))
		require.NoError(t, err)

		var decoded []map[string]string
		require.NoError(t, json.Unmarshal(items, &decoded))
		assert.Len(t, decoded, 3)
		assert.Equal(t, 3, meta.Total)
	})

	t.Run("non-collection payload is an error", func(t *testing.T) {
		_, _, err := NormalizeList([]byte(`{"result":{"id":"n1"}}`))
		assert.Error(t, err)
	})
}
