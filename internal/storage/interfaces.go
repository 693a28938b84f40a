// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

type StorageInterface interface {
	CreateMechanicWorkshop(ctx context.Context, m *types.MechanicWorkshop) (*types.MechanicWorkshop, error)
	GetMechanicWorkshop(ctx context.Context, id string) (*types.MechanicWorkshop, error)
	SetMechanicWorkshopWorkspace(ctx context.Context, workshopID, wid string) error

	CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	GetWorkspaceByWID(ctx context.Context, wid string) (*types.Workspace, error)
	SetWorkspaceManifest(ctx context.Context, wid, manifestID string) (bool, error)
	CreateWorkspaceModule(ctx context.Context, m *types.WorkspaceModule) (*types.WorkspaceModule, error)
	ListModulesByWorkspace(ctx context.Context, wid string) ([]*types.WorkspaceModule, error)

	UpsertMembership(ctx context.Context, m *types.Membership) (*types.Membership, bool, error)
	IsMember(ctx context.Context, accountID, workspaceID string) (bool, error)
	IsMemberWithRole(ctx context.Context, accountID, workspaceID string, roles []types.MembershipRole) (bool, error)
	HasActiveMembership(ctx context.Context, workspaceID string) (bool, error)
	ListAdministeredWorkspaces(ctx context.Context, accountID string) ([]*types.Workspace, error)
	DeactivateMembership(ctx context.Context, workspaceID, accountID string) error
	UpsertWorkspaceMember(ctx context.Context, m *types.WorkspaceMember) (*types.WorkspaceMember, error)

	GetManifestByName(ctx context.Context, name string) (*types.SidebarManifest, error)

	GetVehicleWorkshopID(ctx context.Context, vehicleID string) (string, error)
	LockWorkshop(ctx context.Context, workshopID string) error
	LockWorkOrders(ctx context.Context, workshopID string) error
	MaxWorkshopNumber(ctx context.Context, workshopID string) (int64, error)
	CreateWorkOrder(ctx context.Context, o *types.WorkOrder) (*types.WorkOrder, error)
	GetWorkOrder(ctx context.Context, id string) (*types.WorkOrder, error)

	CreateAssignment(ctx context.Context, a *types.WorkOrderAssignment) (*types.WorkOrderAssignment, error)
	GetAssignment(ctx context.Context, id string) (*types.WorkOrderAssignment, error)
	ListAssignmentsByWorkOrder(ctx context.Context, workOrderID string) ([]*types.WorkOrderAssignment, error)
	CloseAssignment(ctx context.Context, id string, endedAt time.Time) (*types.WorkOrderAssignment, error)
}
