// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

var assignmentColumns = []string{
	"id", "work_order_id", "assignee_id", "started_at", "ended_at", "price_per_hour",
	"notes", "work_done", "created_at", "updated_at",
}

func scanAssignment(row sq.RowScanner) (*types.WorkOrderAssignment, error) {
	var a types.WorkOrderAssignment
	err := row.Scan(
		&a.ID, &a.WorkOrderID, &a.AssigneeID, &a.StartedAt, &a.EndedAt, &a.PricePerHour,
		&a.Notes, &a.WorkDone, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Storage) CreateAssignment(ctx context.Context, a *types.WorkOrderAssignment) (*types.WorkOrderAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAssignment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate assignment ID: %w", err)
	}

	created := *a
	created.ID = id

	err = s.db.Statement(ctx).
		Insert("work_order_assignments").
		Columns("id", "work_order_id", "assignee_id", "started_at", "ended_at", "price_per_hour", "notes", "work_done").
		Values(
			created.ID, created.WorkOrderID, created.AssigneeID, created.StartedAt, created.EndedAt,
			created.PricePerHour, created.Notes, created.WorkDone,
		).
		Suffix("RETURNING created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert assignment")
	}

	return &created, nil
}

func (s *Storage) GetAssignment(ctx context.Context, id string) (*types.WorkOrderAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAssignment")
	defer span.End()

	a, err := scanAssignment(
		s.db.Statement(ctx).
			Select(assignmentColumns...).
			From("work_order_assignments").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

func (s *Storage) ListAssignmentsByWorkOrder(ctx context.Context, workOrderID string) ([]*types.WorkOrderAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAssignmentsByWorkOrder")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(assignmentColumns...).
		From("work_order_assignments").
		Where(sq.Eq{"work_order_id": workOrderID}).
		OrderBy("started_at NULLS LAST", "created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*types.WorkOrderAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}

// CloseAssignment sets ended_at on an open assignment. ErrNotFound covers both
// a missing row and one that is already closed.
func (s *Storage) CloseAssignment(ctx context.Context, id string, endedAt time.Time) (*types.WorkOrderAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CloseAssignment")
	defer span.End()

	a, err := scanAssignment(
		s.db.Statement(ctx).
			Update("work_order_assignments").
			Set("ended_at", endedAt).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id, "ended_at": nil}).
			Suffix("RETURNING "+joinColumns(assignmentColumns)).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapWriteError(err, "failed to close assignment")
	}

	return a, nil
}
