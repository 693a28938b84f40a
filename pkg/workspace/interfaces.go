// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

type ServiceInterface interface {
	Provision(ctx context.Context, accountID string, req *ProvisionRequest) (*types.Workspace, error)
	GetWorkspace(ctx context.Context, wid string) (*types.Workspace, error)
	IsMember(ctx context.Context, accountID, wid string) (bool, error)
}

type StorageInterface interface {
	CreateMechanicWorkshop(ctx context.Context, workshop *types.MechanicWorkshop) (*types.MechanicWorkshop, error)
	SetMechanicWorkshopWorkspace(ctx context.Context, workshopID, wid string) error
	CreateWorkspace(ctx context.Context, workspace *types.Workspace) (*types.Workspace, error)
	GetWorkspaceByWID(ctx context.Context, wid string) (*types.Workspace, error)
	SetWorkspaceManifest(ctx context.Context, wid, manifestID string) (bool, error)
	CreateWorkspaceModule(ctx context.Context, module *types.WorkspaceModule) (*types.WorkspaceModule, error)
	ListModulesByWorkspace(ctx context.Context, wid string) ([]*types.WorkspaceModule, error)
	UpsertWorkspaceMember(ctx context.Context, member *types.WorkspaceMember) (*types.WorkspaceMember, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type MembershipInterface interface {
	Grant(ctx context.Context, workspaceID, accountID string, role types.MembershipRole, canManageBilling bool) (*types.Membership, bool, error)
	IsMember(ctx context.Context, accountID, workspaceID string) (bool, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, kind types.BusinessKind, id string) (types.Business, error)
}

type ManifestInterface interface {
	DefaultManifest(ctx context.Context) (*types.SidebarManifest, error)
}

// PricingInterface quotes the recurring price of an add-on module.
type PricingInterface interface {
	AddonPrice(ctx context.Context, addon string) (decimal.Decimal, error)
}
