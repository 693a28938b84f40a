// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/storage"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// AdminRoles are the roles allowed to manage a workspace.
var AdminRoles = []types.MembershipRole{types.MembershipRoleOwner, types.MembershipRoleAdmin}

type Service struct {
	storage StorageInterface
	tx      TxCheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Grant gives the account the role on the workspace, reactivating a revoked
// grant if there is one. The returned flag is true when a new row was written.
// Inside a caller's transaction the audit event is left to the caller, it
// must only be written once the grant commits.
func (s *Service) Grant(ctx context.Context, workspaceID, accountID string, role types.MembershipRole, canManageBilling bool) (*types.Membership, bool, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Grant")
	defer span.End()

	if err := validatePair(workspaceID, accountID); err != nil {
		return nil, false, err
	}
	if !role.IsValid() {
		return nil, false, errs.NewValidationError("role", string(role), "unknown membership role")
	}

	m, created, err := s.storage.UpsertMembership(ctx, &types.Membership{
		WorkspaceID:      workspaceID,
		AccountID:        accountID,
		Role:             role,
		CanManageBilling: canManageBilling,
		IsActive:         true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, false, errs.NotFound(fmt.Sprintf("workspace %s", workspaceID))
		}
		return nil, false, err
	}

	if !s.tx.InTx(ctx) {
		s.logger.Security().MembershipGranted(workspaceID, accountID, string(role))
	}

	return m, created, nil
}

func (s *Service) IsMember(ctx context.Context, accountID, workspaceID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.IsMember")
	defer span.End()

	return s.storage.IsMember(ctx, accountID, workspaceID)
}

func (s *Service) IsMemberWithRole(ctx context.Context, accountID, workspaceID string, roles []types.MembershipRole) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.IsMemberWithRole")
	defer span.End()

	return s.storage.IsMemberWithRole(ctx, accountID, workspaceID, roles)
}

func (s *Service) ListAdministered(ctx context.Context, accountID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListAdministered")
	defer span.End()

	workspaces, err := s.storage.ListAdministeredWorkspaces(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return workspaces, nil
}

// Revoke deactivates the grant. The row is kept.
func (s *Service) Revoke(ctx context.Context, workspaceID, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Revoke")
	defer span.End()

	if err := validatePair(workspaceID, accountID); err != nil {
		return err
	}

	err := s.storage.DeactivateMembership(ctx, workspaceID, accountID)
	if errors.Is(err, storage.ErrNotFound) {
		return errs.NotFound(fmt.Sprintf("membership of %s in %s", accountID, workspaceID))
	}
	if err != nil {
		return err
	}

	s.logger.Security().MembershipRevoked(workspaceID, accountID)

	active, err := s.storage.HasActiveMembership(ctx, workspaceID)
	if err != nil {
		s.logger.Errorf("failed to check remaining members of %s: %v", workspaceID, err)
		return nil
	}
	if !active {
		s.logger.Warnf("workspace %s has no active members left", workspaceID)
	}

	return nil
}

func validatePair(workspaceID, accountID string) error {
	if workspaceID == "" {
		return errs.NewValidationError("workspace_id", nil, "required")
	}
	if accountID == "" {
		return errs.NewValidationError("account_id", nil, "required")
	}
	if _, err := uuid.Parse(accountID); err != nil {
		return errs.NewValidationError("account_id", accountID, "must be a UUID")
	}
	return nil
}

func NewService(storage StorageInterface, tx TxCheckerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
