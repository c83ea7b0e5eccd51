// Package common defines sentinel errors shared by the repository, service
// and transport layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Validation errors. Field-specific failures wrap ErrorValidation.
	ErrorValidation = errors.New("validation error")

	// Uniqueness errors, returned both by the pre-insert check and when the
	// store rejects a write on its unique index.
	ErrorDuplicateEmail  = errors.New("email already exists")
	ErrorDuplicateMobile = errors.New("mobile already exists")
)
