// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FileSelector: checks a user-picked path against the kind a role
//     requires and turns it into a models.SelectedFile.
//
// Validators have no side effects. Callers own workflow state and the
// messages shown to the user.
package validators

import (
	"context"

	"github.com/MKhiriev/stegasaur/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// FileSelector validates a single file selection for a role.
type FileSelector interface {
	Validator

	// Select checks path against the kind role requires and returns the
	// accepted file.
	Select(path string, role models.Role) (models.SelectedFile, error)
}
