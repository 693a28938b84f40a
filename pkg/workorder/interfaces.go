// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workorder

import (
	"context"
	"time"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

type ServiceInterface interface {
	ResolveWorkshop(ctx context.Context, workshopID, vehicleID string) (string, error)
	Authorize(ctx context.Context, accountID, workshopID string) error
	CreateWorkOrder(ctx context.Context, req *CreateWorkOrderRequest) (*types.WorkOrder, error)
	GetWorkOrder(ctx context.Context, id string) (*types.WorkOrder, error)
	AddAssignment(ctx context.Context, workOrderID string, req *AssignmentRequest) (*types.WorkOrderAssignment, error)
	CloseAssignment(ctx context.Context, workOrderID, assignmentID string, endedAt time.Time) (*types.WorkOrderAssignment, error)
	ActiveAssignments(ctx context.Context, workOrderID string, now time.Time) ([]*types.WorkOrderAssignment, error)
	CurrentAssignees(ctx context.Context, workOrderID string, now time.Time) ([]string, error)
}

type StorageInterface interface {
	GetMechanicWorkshop(ctx context.Context, id string) (*types.MechanicWorkshop, error)
	GetVehicleWorkshopID(ctx context.Context, vehicleID string) (string, error)
	LockWorkshop(ctx context.Context, workshopID string) error
	LockWorkOrders(ctx context.Context, workshopID string) error
	MaxWorkshopNumber(ctx context.Context, workshopID string) (int64, error)
	CreateWorkOrder(ctx context.Context, order *types.WorkOrder) (*types.WorkOrder, error)
	GetWorkOrder(ctx context.Context, id string) (*types.WorkOrder, error)

	CreateAssignment(ctx context.Context, assignment *types.WorkOrderAssignment) (*types.WorkOrderAssignment, error)
	GetAssignment(ctx context.Context, id string) (*types.WorkOrderAssignment, error)
	ListAssignmentsByWorkOrder(ctx context.Context, workOrderID string) ([]*types.WorkOrderAssignment, error)
	CloseAssignment(ctx context.Context, id string, endedAt time.Time) (*types.WorkOrderAssignment, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	InTx(ctx context.Context) bool
}

type MembershipInterface interface {
	IsMember(ctx context.Context, accountID, workspaceID string) (bool, error)
}
