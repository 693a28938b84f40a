// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

// Package validation wraps go-playground/validator so request payloads report
// failures as errs.ValidationError keyed by their JSON field path.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
)

type Validator struct {
	validate *validator.Validate
}

// Struct validates v and returns the first failing field as a
// *errs.ValidationError. Nested fields are reported as "section.field".
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate payload: %w", err)
	}

	fe := fieldErrs[0]

	var value any
	if fe.Kind() != reflect.Ptr && fe.Kind() != reflect.Struct {
		value = fe.Value()
		if s, ok := value.(string); ok && s == "" {
			value = nil
		}
	}

	return errs.NewValidationError(fieldPath(fe.Namespace()), value, reason(fe))
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "timezone":
		return "must be an IANA time zone"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "oneof":
		return "must be one of " + fe.Param()
	case "uuid":
		return "must be a UUID"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func NewValidator() *Validator {
	v := new(Validator)

	v.validate = validator.New(validator.WithRequiredStructEnabled())
	v.validate.RegisterTagNameFunc(jsonName)

	return v
}
