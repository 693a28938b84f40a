// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// ConstraintName returns the name of the violated constraint, empty when err
// is not a PostgreSQL error.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return pgErrorCode(err) == pgErrCodeUniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgErrCodeForeignKeyViolation
}

// IsCheckViolation checks if the error is a PostgreSQL check constraint violation.
func IsCheckViolation(err error) bool {
	return pgErrorCode(err) == pgErrCodeCheckViolation
}

// wrapWriteError maps constraint violations to the storage sentinels, keeping
// the driver error in the chain for constraint inspection.
func wrapWriteError(err error, context string) error {
	switch {
	case IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w: %w", context, ErrDuplicateKey, err)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: %w", context, ErrForeignKeyViolation, err)
	case IsCheckViolation(err):
		return fmt.Errorf("%s: %w: %w", context, ErrCheckViolation, err)
	}
	return fmt.Errorf("%s: %w", context, err)
}
