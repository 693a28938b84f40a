// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

var workOrderColumns = []string{
	"id", "workshop_id", "customer_vehicle_id", "workshop_number", "attended_by_id", "customer_telephone",
	"description", "observations", "start_mileage", "stage", "status", "priority", "price_per_hour",
	"currency", "car_entered", "car_left", "created_at", "updated_at",
}

// GetVehicleWorkshopID returns the vehicle's registered workshop, empty when
// the vehicle has none.
func (s *Storage) GetVehicleWorkshopID(ctx context.Context, vehicleID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetVehicleWorkshopID")
	defer span.End()

	var workshopID sql.NullString
	err := s.db.Statement(ctx).
		Select("main_workshop_id").
		From("customer_vehicles").
		Where(sq.Eq{"id": vehicleID}).
		QueryRowContext(ctx).
		Scan(&workshopID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get vehicle workshop: %w", err)
	}

	return workshopID.String, nil
}

// LockWorkshop takes a row lock on the workshop until the current transaction
// ends. It serializes numbering for a workshop that has no work orders yet.
func (s *Storage) LockWorkshop(ctx context.Context, workshopID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LockWorkshop")
	defer span.End()

	var id string
	err := s.db.Statement(ctx).
		Select("id").
		From("mechanic_workshops").
		Where(sq.Eq{"id": workshopID}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock workshop: %w", err)
	}

	return nil
}

// LockWorkOrders takes row locks on every work order of the workshop until
// the current transaction ends.
func (s *Storage) LockWorkOrders(ctx context.Context, workshopID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LockWorkOrders")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id").
		From("work_orders").
		Where(sq.Eq{"workshop_id": workshopID}).
		Suffix("FOR UPDATE").
		QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to lock work orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows iteration error: %w", err)
	}

	return nil
}

// MaxWorkshopNumber returns the highest number used in the workshop, zero when
// it has no work orders.
func (s *Storage) MaxWorkshopNumber(ctx context.Context, workshopID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MaxWorkshopNumber")
	defer span.End()

	var current int64
	err := s.db.Statement(ctx).
		Select("COALESCE(MAX(workshop_number), 0)").
		From("work_orders").
		Where(sq.Eq{"workshop_id": workshopID}).
		QueryRowContext(ctx).
		Scan(&current)

	if err != nil {
		return 0, fmt.Errorf("failed to compute workshop number: %w", err)
	}

	return current, nil
}

func (s *Storage) CreateWorkOrder(ctx context.Context, o *types.WorkOrder) (*types.WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkOrder")
	defer span.End()

	if o.WorkshopNumber == nil {
		return nil, fmt.Errorf("work order has no workshop number")
	}

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate work order ID: %w", err)
	}

	created := *o
	created.ID = id

	err = s.db.Statement(ctx).
		Insert("work_orders").
		Columns(
			"id", "workshop_id", "customer_vehicle_id", "workshop_number", "attended_by_id",
			"customer_telephone", "description", "observations", "start_mileage", "stage", "status",
			"priority", "price_per_hour", "currency", "car_entered", "car_left",
		).
		Values(
			created.ID, created.WorkshopID, created.CustomerVehicleID, *created.WorkshopNumber, created.AttendedByID,
			created.CustomerTelephone, created.Description, created.Observations, created.StartMileage,
			string(created.Stage), string(created.Status), string(created.Priority), created.PricePerHour,
			created.Currency, created.CarEntered, created.CarLeft,
		).
		Suffix("RETURNING created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert work order")
	}

	return &created, nil
}

func (s *Storage) GetWorkOrder(ctx context.Context, id string) (*types.WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkOrder")
	defer span.End()

	var o types.WorkOrder
	err := s.db.Statement(ctx).
		Select(workOrderColumns...).
		From("work_orders").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(
			&o.ID, &o.WorkshopID, &o.CustomerVehicleID, &o.WorkshopNumber, &o.AttendedByID,
			&o.CustomerTelephone, &o.Description, &o.Observations, &o.StartMileage, &o.Stage, &o.Status,
			&o.Priority, &o.PricePerHour, &o.Currency, &o.CarEntered, &o.CarLeft, &o.CreatedAt, &o.UpdatedAt,
		)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}

	return &o, nil
}
