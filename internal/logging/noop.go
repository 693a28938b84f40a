// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// NewNoopLogger discards every entry, security events included.
func NewNoopLogger() *Logger {
	z := zap.NewNop()

	return &Logger{
		SugaredLogger: z.Sugar(),
		security:      newSecurityLogger(z),
	}
}
