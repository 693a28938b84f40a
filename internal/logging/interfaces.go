// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Sync() error
	Security() SecurityLoggerInterface
}

type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	WorkspaceProvisioned(workspaceID, accountID string)
	MembershipGranted(workspaceID, accountID, role string)
	MembershipRevoked(workspaceID, accountID string)
	AuthzFailure(accountID, resource string)
}
