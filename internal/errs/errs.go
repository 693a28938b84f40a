// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

// Package errs holds the error taxonomy shared by the workspace and work order
// services. Callers match with errors.Is, the HTTP layer maps each class to a
// status code.
package errs

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrNotImplemented = errors.New("not implemented")
	ErrConflict       = errors.New("conflict")
	ErrPrecondition   = errors.New("precondition failed")
	ErrConfiguration  = errors.New("configuration error")
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
)

// ValidationError reports malformed input together with the offending field
// and value.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, fmt.Sprint(e.Value), e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// NotImplemented marks a recognized feature or business kind that has no
// implementation yet.
func NotImplemented(what string) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, what)
}

// ConflictError keeps the storage cause out of its message, the message is
// rendered to clients as is. The cause stays reachable through errors.Is and
// is printed by the %+v verb for logs.
type ConflictError struct {
	What  string
	Cause error
}

func (e *ConflictError) Error() string {
	return ErrConflict.Error() + ": " + e.What
}

func (e *ConflictError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrConflict}
	}
	return []error{ErrConflict, e.Cause}
}

func (e *ConflictError) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+') && e.Cause != nil:
		fmt.Fprintf(f, "%s: %v", e.Error(), e.Cause)
	case verb == 'q':
		fmt.Fprintf(f, "%q", e.Error())
	default:
		io.WriteString(f, e.Error())
	}
}

func Conflict(what string, cause error) error {
	return &ConflictError{What: what, Cause: cause}
}

func Precondition(what string) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, what)
}

func Configuration(what string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, what)
}

func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}
