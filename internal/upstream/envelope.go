// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package upstream

import (
	"encoding/json"
	"fmt"
)

// rawEnvelope mirrors the Core API's top-level response wrapper.
type rawEnvelope struct {
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message"`
}

/*
Normalize unwraps a Core API response body into its payload.

The Core API is inconsistent about where it puts the payload, so the rules
are applied in a fixed order:

 1. result.admin   → the admin object is the payload; a sibling
    result.permissions object is merged into it when the admin object does
    not already carry one.
 2. result.data    → the data value is the payload (sibling fields such as
    result.total stay available via [Meta]).
 3. otherwise      → result itself is the payload.

A body with no "result" key at all is passed through unchanged, which keeps
endpoints that respond with bare objects working.
*/
func Normalize(body []byte) (json.RawMessage, error) {
	var envelope rawEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("not a json object: %w", err)
	}
	if envelope.Result == nil {
		return body, nil
	}

	// The rules only apply when result is itself an object.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(envelope.Result, &fields); err != nil {
		return envelope.Result, nil
	}

	if admin, ok := fields["admin"]; ok {
		return mergePermissions(admin, fields["permissions"])
	}

	if data, ok := fields["data"]; ok {
		return data, nil
	}

	return envelope.Result, nil
}

// mergePermissions folds a sibling permissions object into the admin payload
// when the admin object does not already carry its own.
func mergePermissions(admin, permissions json.RawMessage) (json.RawMessage, error) {
	if permissions == nil {
		return admin, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(admin, &fields); err != nil {
		return nil, fmt.Errorf("admin payload is not an object: %w", err)
	}

	if _, ok := fields["permissions"]; ok {
		// The embedded permissions win; the sibling is a legacy duplicate.
		return admin, nil
	}

	fields["permissions"] = permissions
	merged, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("merge permissions: %w", err)
	}
	return merged, nil
}

// Meta is the list metadata some collection endpoints put beside the data.
type Meta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NormalizeList unwraps a collection response into its items plus metadata.
//
// When the payload is a bare array the metadata is synthesized with Total set
// to the item count.
func NormalizeList(body []byte) (json.RawMessage, Meta, error) {
	var envelope rawEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, Meta{}, fmt.Errorf("not a json object: %w", err)
	}

	result := envelope.Result
	if result == nil {
		result = body
	}

	var fields struct {
		Data  json.RawMessage `json:"data"`
		Total int             `json:"total"`
		Page  int             `json:"page"`
		Limit int             `json:"limit"`
	}
	if err := json.Unmarshal(result, &fields); err == nil && fields.Data != nil {
		return fields.Data, Meta{Total: fields.Total, Page: fields.Page, Limit: fields.Limit}, nil
	}

	// Bare array: count the items ourselves.
	var items []json.RawMessage
	if err := json.Unmarshal(result, &items); err != nil {
		return nil, Meta{}, fmt.Errorf("collection payload is neither wrapped nor an array")
	}
	return result, Meta{Total: len(items)}, nil
}
