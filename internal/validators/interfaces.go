// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request models before they reach the
// service implementations.
//
// A Validator accepts any value and an optional list of field names; with no
// fields it applies the default rule set for the value's type. Services are
// wrapped by validating decorators, so transport and storage code never
// repeat these checks.
package validators

import "context"

// Validator validates an arbitrary input value.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
