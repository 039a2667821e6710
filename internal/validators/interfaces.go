// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks portal records (users, posts, contact
// messages) before they reach the store.
//
// Validation can be scoped to a subset of fields by passing field names,
// e.g. an edit that keeps the stored password skips [FieldPassword].
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
