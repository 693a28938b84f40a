// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workorder

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

// CreateWorkOrderRequest describes a new work order. WorkshopID may be left
// empty to use the vehicle's main workshop, WorkshopNumber to have one
// allocated.
type CreateWorkOrderRequest struct {
	WorkshopID        string                  `json:"workshop_id" validate:"omitempty,uuid"`
	CustomerVehicleID string                  `json:"customer_vehicle_id" validate:"required,uuid"`
	WorkshopNumber    *int64                  `json:"workshop_number" validate:"omitempty,min=1"`
	AttendedByID      *string                 `json:"attended_by_id" validate:"omitempty,uuid"`
	CustomerTelephone string                  `json:"customer_telephone" validate:"max=32"`
	Description       string                  `json:"description"`
	Observations      string                  `json:"observations"`
	StartMileage      *int64                  `json:"start_mileage" validate:"omitempty,min=0"`
	Stage             types.WorkOrderStage    `json:"stage"`
	Status            types.WorkOrderStatus   `json:"status"`
	Priority          types.WorkOrderPriority `json:"priority"`
	PricePerHour      decimal.NullDecimal     `json:"price_per_hour"`
	Currency          string                  `json:"currency" validate:"omitempty,len=3"`
	CarEntered        *time.Time              `json:"car_entered"`
	CarLeft           *time.Time              `json:"car_left"`
}

type AssignmentRequest struct {
	AssigneeID   *string             `json:"assignee_id" validate:"omitempty,uuid"`
	StartedAt    *time.Time          `json:"started_at"`
	EndedAt      *time.Time          `json:"ended_at"`
	PricePerHour decimal.NullDecimal `json:"price_per_hour"`
	Notes        string              `json:"notes"`
	WorkDone     string              `json:"work_done"`
}

type CloseAssignmentRequest struct {
	EndedAt *time.Time `json:"ended_at"`
}
