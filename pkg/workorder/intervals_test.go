// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workorder

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

var (
	t0 = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	t1 = t0.Add(2 * time.Hour)
	t2 = t0.Add(4 * time.Hour)
)

func ptr[T any](v T) *T {
	return &v
}

func TestValidateInterval(t *testing.T) {
	testCases := []struct {
		name      string
		startedAt *time.Time
		endedAt   *time.Time
		wantErr   bool
	}{
		{name: "both unset"},
		{name: "open ended", startedAt: &t0},
		{name: "end only", endedAt: &t0},
		{name: "zero length", startedAt: &t0, endedAt: &t0},
		{name: "ordered", startedAt: &t0, endedAt: &t1},
		{name: "reversed", startedAt: &t1, endedAt: &t0, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateInterval(tc.startedAt, tc.endedAt)

			if tc.wantErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr && !errors.Is(err, errs.ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	testCases := []struct {
		name       string
		assignment *types.WorkOrderAssignment
		now        time.Time
		expected   bool
	}{
		{name: "not started", assignment: &types.WorkOrderAssignment{}, now: t1},
		{name: "not started but ended", assignment: &types.WorkOrderAssignment{EndedAt: &t2}, now: t1},
		{name: "starts later", assignment: &types.WorkOrderAssignment{StartedAt: &t2}, now: t1},
		{name: "open ended", assignment: &types.WorkOrderAssignment{StartedAt: &t0}, now: t2, expected: true},
		{name: "at start", assignment: &types.WorkOrderAssignment{StartedAt: &t0, EndedAt: &t2}, now: t0, expected: true},
		{name: "inside", assignment: &types.WorkOrderAssignment{StartedAt: &t0, EndedAt: &t2}, now: t1, expected: true},
		{name: "at end", assignment: &types.WorkOrderAssignment{StartedAt: &t0, EndedAt: &t2}, now: t2, expected: true},
		{name: "after end", assignment: &types.WorkOrderAssignment{StartedAt: &t0, EndedAt: &t1}, now: t2},
		{name: "nil", now: t1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsActive(tc.assignment, tc.now); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestAssignees(t *testing.T) {
	alice, bob := "0190a6f6-0000-7000-8000-00000000000a", "0190a6f6-0000-7000-8000-00000000000b"

	assignments := []*types.WorkOrderAssignment{
		{ID: "1", AssigneeID: &alice, StartedAt: &t0},
		{ID: "2", StartedAt: &t0},
		{ID: "3", AssigneeID: &bob, StartedAt: &t0, EndedAt: &t2},
		{ID: "4", AssigneeID: ptr(alice), StartedAt: &t1},
		{ID: "5", AssigneeID: &bob, StartedAt: &t0, EndedAt: &t0},
	}

	active := FilterActive(assignments, t1)
	if len(active) != 4 {
		t.Fatalf("expected 4 active assignments, got %d", len(active))
	}

	got := Assignees(active)
	if !reflect.DeepEqual(got, []string{alice, bob}) {
		t.Fatalf("unexpected assignees %v", got)
	}

	if got := Assignees(FilterActive(assignments, t0.Add(-time.Minute))); len(got) != 0 {
		t.Fatalf("expected nobody before work starts, got %v", got)
	}
}
