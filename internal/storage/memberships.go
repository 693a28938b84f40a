// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

// UpsertMembership writes the (workspace, account) grant in a single
// statement. The returned flag is true when the row did not exist before.
func (s *Storage) UpsertMembership(ctx context.Context, m *types.Membership) (*types.Membership, bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertMembership")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var (
		out     types.Membership
		created bool
	)

	err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "workspace_id", "account_id", "role", "can_manage_billing", "is_active").
		Values(id, m.WorkspaceID, m.AccountID, string(m.Role), m.CanManageBilling, true).
		Suffix(
			"ON CONFLICT (workspace_id, account_id) DO UPDATE SET " +
				"role = EXCLUDED.role, can_manage_billing = EXCLUDED.can_manage_billing, " +
				"is_active = TRUE, updated_at = NOW() " +
				"RETURNING id, workspace_id, account_id, role, can_manage_billing, is_active, created_at, updated_at, (xmax = 0) AS created",
		).
		QueryRowContext(ctx).
		Scan(
			&out.ID, &out.WorkspaceID, &out.AccountID, &out.Role, &out.CanManageBilling,
			&out.IsActive, &out.CreatedAt, &out.UpdatedAt, &created,
		)

	if err != nil {
		return nil, false, wrapWriteError(err, "failed to upsert membership")
	}

	return &out, created, nil
}

func (s *Storage) IsMember(ctx context.Context, accountID, workspaceID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsMember")
	defer span.End()

	return s.exists(ctx, s.db.Statement(ctx).
		Select("1").
		From("memberships").
		Where(sq.Eq{"account_id": accountID, "workspace_id": workspaceID, "is_active": true}),
	)
}

func (s *Storage) IsMemberWithRole(ctx context.Context, accountID, workspaceID string, roles []types.MembershipRole) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsMemberWithRole")
	defer span.End()

	if len(roles) == 0 {
		return false, nil
	}

	return s.exists(ctx, s.db.Statement(ctx).
		Select("1").
		From("memberships").
		Where(sq.Eq{
			"account_id":   accountID,
			"workspace_id": workspaceID,
			"is_active":    true,
			"role":         roleStrings(roles),
		}),
	)
}

// HasActiveMembership reports whether anyone still holds an active grant on
// the workspace.
func (s *Storage) HasActiveMembership(ctx context.Context, workspaceID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasActiveMembership")
	defer span.End()

	return s.exists(ctx, s.db.Statement(ctx).
		Select("1").
		From("memberships").
		Where(sq.Eq{"workspace_id": workspaceID, "is_active": true}),
	)
}

func (s *Storage) exists(ctx context.Context, q sq.SelectBuilder) (bool, error) {
	var found bool
	err := q.Prefix("SELECT EXISTS (").Suffix(")").
		QueryRowContext(ctx).
		Scan(&found)

	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}

	return found, nil
}

// ListAdministeredWorkspaces returns the distinct live workspaces where the
// account holds an active OWNER or ADMIN grant.
func (s *Storage) ListAdministeredWorkspaces(ctx context.Context, accountID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAdministeredWorkspaces")
	defer span.End()

	columns := make([]string, 0, len(workspaceColumns))
	for _, c := range workspaceColumns {
		columns = append(columns, "w."+c)
	}

	rows, err := s.db.Statement(ctx).
		Select(columns...).
		Distinct().
		From("workspaces w").
		Join("memberships m ON m.workspace_id = w.wid").
		Where(sq.Eq{
			"m.account_id": accountID,
			"m.is_active":  true,
			"m.role":       roleStrings([]types.MembershipRole{types.MembershipRoleOwner, types.MembershipRoleAdmin}),
			"w.is_deleted": false,
		}).
		OrderBy("w.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list administered workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []*types.Workspace
	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workspaces, nil
}

// DeactivateMembership soft deletes the grant, the row is kept for audit.
func (s *Storage) DeactivateMembership(ctx context.Context, workspaceID, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("is_active", false).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"workspace_id": workspaceID, "account_id": accountID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to deactivate membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// UpsertWorkspaceMember creates or refreshes the operational member row of a
// workshop workspace.
func (s *Storage) UpsertWorkspaceMember(ctx context.Context, m *types.WorkspaceMember) (*types.WorkspaceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertWorkspaceMember")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workspace member ID: %w", err)
	}

	var out types.WorkspaceMember
	err = s.db.Statement(ctx).
		Insert("workspace_members").
		Columns("id", "workspace_id", "account_id", "role", "is_active", "is_owner", "is_admin", "invited_by").
		Values(id, m.WorkspaceID, m.AccountID, string(m.Role), m.IsActive, m.IsOwner, m.IsAdmin, m.InvitedBy).
		Suffix(
			"ON CONFLICT (workspace_id, account_id) DO UPDATE SET " +
				"role = EXCLUDED.role, is_active = EXCLUDED.is_active, is_owner = EXCLUDED.is_owner, " +
				"is_admin = EXCLUDED.is_admin, invited_by = EXCLUDED.invited_by, updated_at = NOW() " +
				"RETURNING id, workspace_id, account_id, role, is_active, is_owner, is_admin, invited_by, created_at, updated_at",
		).
		QueryRowContext(ctx).
		Scan(
			&out.ID, &out.WorkspaceID, &out.AccountID, &out.Role, &out.IsActive,
			&out.IsOwner, &out.IsAdmin, &out.InvitedBy, &out.CreatedAt, &out.UpdatedAt,
		)

	if err != nil {
		return nil, wrapWriteError(err, "failed to upsert workspace member")
	}

	return &out, nil
}

func roleStrings(roles []types.MembershipRole) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
