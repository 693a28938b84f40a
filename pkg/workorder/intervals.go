// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workorder

import (
	"time"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

// ValidateInterval rejects an interval that ends before it starts. Either
// bound may be unset.
func ValidateInterval(startedAt, endedAt *time.Time) error {
	if startedAt == nil || endedAt == nil {
		return nil
	}

	if endedAt.Before(*startedAt) {
		return errs.NewValidationError("ended_at", endedAt.Format(time.RFC3339), "must not be before started_at")
	}

	return nil
}

// IsActive reports whether now falls inside the assignment interval. Both
// bounds are inclusive and an unset end never expires. An assignment that has
// not started is never active.
func IsActive(a *types.WorkOrderAssignment, now time.Time) bool {
	if a == nil || a.StartedAt == nil || a.StartedAt.After(now) {
		return false
	}

	return a.EndedAt == nil || !now.After(*a.EndedAt)
}

// FilterActive keeps the assignments active at now, in their original order.
func FilterActive(assignments []*types.WorkOrderAssignment, now time.Time) []*types.WorkOrderAssignment {
	active := make([]*types.WorkOrderAssignment, 0, len(assignments))
	for _, a := range assignments {
		if IsActive(a, now) {
			active = append(active, a)
		}
	}
	return active
}

// Assignees returns the distinct assignee ids in first seen order, skipping
// unassigned rows.
func Assignees(assignments []*types.WorkOrderAssignment) []string {
	seen := make(map[string]struct{}, len(assignments))
	ids := make([]string, 0, len(assignments))

	for _, a := range assignments {
		if a == nil || a.AssigneeID == nil {
			continue
		}
		if _, ok := seen[*a.AssigneeID]; ok {
			continue
		}
		seen[*a.AssigneeID] = struct{}{}
		ids = append(ids, *a.AssigneeID)
	}

	return ids
}
