// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	securityEventKey = "event"
	appID            = "falquor-backend"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger writes audit events as structured entries on a dedicated
// logger so they can be routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Warn("system startup", zap.String(securityEventKey, "sys_startup:"+appID))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Warn("system shutdown", zap.String(securityEventKey, "sys_shutdown:"+appID))
}

func (s *SecurityLogger) WorkspaceProvisioned(workspaceID, accountID string) {
	s.l.Info(
		"workspace provisioned",
		zap.String(securityEventKey, "workspace_provisioned:"+workspaceID),
		zap.String("account_id", accountID),
	)
}

func (s *SecurityLogger) MembershipGranted(workspaceID, accountID, role string) {
	s.l.Info(
		"membership granted",
		zap.String(securityEventKey, "authz_admin:"+accountID+","+role),
		zap.String("workspace_id", workspaceID),
	)
}

func (s *SecurityLogger) MembershipRevoked(workspaceID, accountID string) {
	s.l.Info(
		"membership revoked",
		zap.String(securityEventKey, "authz_revoke:"+accountID),
		zap.String("workspace_id", workspaceID),
	)
}

func (s *SecurityLogger) AuthzFailure(accountID, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String(securityEventKey, "authz_fail:"+accountID+","+resource),
	)
}

func newSecurityLogger(z *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: z.Named("security")}
}
