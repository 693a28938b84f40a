// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerSecurityEvents(t *testing.T) {
	l := NewNoopLogger()

	l.Security().WorkspaceProvisioned("ws-1", "acc-1")
	l.Security().MembershipGranted("ws-1", "acc-1", "OWNER")
	l.Security().MembershipRevoked("ws-1", "acc-1")
	l.Security().AuthzFailure("acc-1", "workspace:ws-1")

	if err := l.Sync(); err != nil {
		t.Errorf("unexpected sync error on noop logger: %v", err)
	}
}
