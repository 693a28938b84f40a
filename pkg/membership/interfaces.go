// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

type ServiceInterface interface {
	Grant(ctx context.Context, workspaceID, accountID string, role types.MembershipRole, canManageBilling bool) (*types.Membership, bool, error)
	IsMember(ctx context.Context, accountID, workspaceID string) (bool, error)
	IsMemberWithRole(ctx context.Context, accountID, workspaceID string, roles []types.MembershipRole) (bool, error)
	ListAdministered(ctx context.Context, accountID string) ([]*types.Workspace, error)
	Revoke(ctx context.Context, workspaceID, accountID string) error
}

type StorageInterface interface {
	UpsertMembership(ctx context.Context, membership *types.Membership) (*types.Membership, bool, error)
	IsMember(ctx context.Context, accountID, workspaceID string) (bool, error)
	IsMemberWithRole(ctx context.Context, accountID, workspaceID string, roles []types.MembershipRole) (bool, error)
	ListAdministeredWorkspaces(ctx context.Context, accountID string) ([]*types.Workspace, error)
	DeactivateMembership(ctx context.Context, workspaceID, accountID string) error
	HasActiveMembership(ctx context.Context, workspaceID string) (bool, error)
}

type TxCheckerInterface interface {
	InTx(ctx context.Context) bool
}
