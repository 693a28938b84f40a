// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkOrderStage string

const (
	StageCheckIn   WorkOrderStage = "CHECKIN"
	StageDiagnosis WorkOrderStage = "DIAGNOSIS"
	StageRepair    WorkOrderStage = "REPAIR"
	StageQA        WorkOrderStage = "QA"
	StageReady     WorkOrderStage = "READY"
	StageDelivered WorkOrderStage = "DELIVERED"
)

func (s WorkOrderStage) IsValid() bool {
	switch s {
	case StageCheckIn, StageDiagnosis, StageRepair, StageQA, StageReady, StageDelivered:
		return true
	}
	return false
}

type WorkOrderStatus string

const (
	StatusOpen      WorkOrderStatus = "OPEN"
	StatusOnHold    WorkOrderStatus = "ON_HOLD"
	StatusBilled    WorkOrderStatus = "BILLED"
	StatusCancelled WorkOrderStatus = "CANCELLED"
	StatusClosed    WorkOrderStatus = "CLOSED"
)

func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusOnHold, StatusBilled, StatusCancelled, StatusClosed:
		return true
	}
	return false
}

type WorkOrderPriority string

const (
	PriorityLow    WorkOrderPriority = "LOW"
	PriorityNormal WorkOrderPriority = "NORMAL"
	PriorityHigh   WorkOrderPriority = "HIGH"
	PriorityUrgent WorkOrderPriority = "URGENT"
)

func (p WorkOrderPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type CustomerVehicle struct {
	ID             string    `db:"id" json:"id"`
	MainWorkshopID string    `db:"main_workshop_id" json:"main_workshop_id"`
	LicensePlate   string    `db:"license_plate" json:"license_plate"`
	VINNumber      string    `db:"vin_number" json:"vin_number"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// WorkOrder is one repair job. WorkshopNumber is nil until the order is
// first persisted.
type WorkOrder struct {
	ID                string              `db:"id" json:"id"`
	WorkshopID        string              `db:"workshop_id" json:"workshop_id"`
	CustomerVehicleID string              `db:"customer_vehicle_id" json:"customer_vehicle_id"`
	WorkshopNumber    *int64              `db:"workshop_number" json:"workshop_number"`
	AttendedByID      *string             `db:"attended_by_id" json:"attended_by_id"`
	CustomerTelephone string              `db:"customer_telephone" json:"customer_telephone"`
	Description       string              `db:"description" json:"description"`
	Observations      string              `db:"observations" json:"observations"`
	StartMileage      *int64              `db:"start_mileage" json:"start_mileage"`
	Stage             WorkOrderStage      `db:"stage" json:"stage"`
	Status            WorkOrderStatus     `db:"status" json:"status"`
	Priority          WorkOrderPriority   `db:"priority" json:"priority"`
	PricePerHour      decimal.NullDecimal `db:"price_per_hour" json:"price_per_hour"`
	Currency          string              `db:"currency" json:"currency"`
	CarEntered        time.Time           `db:"car_entered" json:"car_entered"`
	CarLeft           *time.Time          `db:"car_left" json:"car_left"`
	CreatedAt         time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at" json:"updated_at"`
}

// WorkOrderAssignment is a technician labor interval on a work order. Either
// bound may be unset, an unset EndedAt means the work is still ongoing.
type WorkOrderAssignment struct {
	ID           string              `db:"id" json:"id"`
	WorkOrderID  string              `db:"work_order_id" json:"work_order_id"`
	AssigneeID   *string             `db:"assignee_id" json:"assignee_id"`
	StartedAt    *time.Time          `db:"started_at" json:"started_at"`
	EndedAt      *time.Time          `db:"ended_at" json:"ended_at"`
	PricePerHour decimal.NullDecimal `db:"price_per_hour" json:"price_per_hour"`
	Notes        string              `db:"notes" json:"notes"`
	WorkDone     string              `db:"work_done" json:"work_done"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at" json:"updated_at"`
}
