// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewObservedLogger keeps every entry in memory, security events included,
// so tests can assert on what was written.
func NewObservedLogger() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	z := zap.New(core)

	return &Logger{
		SugaredLogger: z.Sugar(),
		security:      newSecurityLogger(z),
	}, logs
}
