// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before they reach the services.
//
// Rules live in `validate` struct tags on the models and are evaluated by
// go-playground/validator; failures come back as [ValidationErrors] with
// the per-field messages API clients expect.
package validators

import "context"

// Validator checks a request model. Passing field names limits the check
// to those struct fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
