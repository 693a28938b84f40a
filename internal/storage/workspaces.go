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

var mechanicWorkshopColumns = []string{
	"id", "workspace_id", "business_name", "description", "tax_id", "email", "phone", "fax", "website",
	"address", "street", "postal_code", "city", "state", "country", "time_zone",
	"has_towing_service", "has_car_service", "latitude", "longitude",
	"is_active", "is_suspended", "is_deleted", "created_at", "updated_at",
}

var workspaceColumns = []string{
	"wid", "short_name", "workspace_type", "main_business_kind", "main_business_id", "sidebar_manifest_id",
	"price", "contract_starts_at", "expires_at", "grace_days_period", "time_zone",
	"is_active", "is_deleted", "created_at", "updated_at",
}

var workspaceModuleColumns = []string{
	"wid", "name", "workspace_id", "sidebar_manifest_id", "price", "contract_starts_at", "expires_at",
	"grace_days_period", "is_active", "is_deleted", "created_at", "updated_at",
}

func (s *Storage) CreateMechanicWorkshop(ctx context.Context, m *types.MechanicWorkshop) (*types.MechanicWorkshop, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMechanicWorkshop")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workshop ID: %w", err)
	}

	created := *m
	created.ID = id

	err = s.db.Statement(ctx).
		Insert("mechanic_workshops").
		Columns(
			"id", "business_name", "description", "tax_id", "email", "phone", "fax", "website",
			"address", "street", "postal_code", "city", "state", "country", "time_zone",
			"has_towing_service", "has_car_service", "latitude", "longitude", "is_active",
		).
		Values(
			created.ID, created.BusinessName, created.Description, created.TaxID, created.Email, created.Phone,
			created.Fax, created.Website, created.Address, created.Street, created.PostalCode, created.City,
			created.State, created.Country, created.TimeZone, created.HasTowingService, created.HasCarService,
			created.Latitude, created.Longitude, created.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert mechanic workshop")
	}

	return &created, nil
}

func (s *Storage) GetMechanicWorkshop(ctx context.Context, id string) (*types.MechanicWorkshop, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMechanicWorkshop")
	defer span.End()

	var m types.MechanicWorkshop
	err := s.db.Statement(ctx).
		Select(mechanicWorkshopColumns...).
		From("mechanic_workshops").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(
			&m.ID, &m.WorkspaceID, &m.BusinessName, &m.Description, &m.TaxID, &m.Email, &m.Phone, &m.Fax,
			&m.Website, &m.Address, &m.Street, &m.PostalCode, &m.City, &m.State, &m.Country, &m.TimeZone,
			&m.HasTowingService, &m.HasCarService, &m.Latitude, &m.Longitude,
			&m.IsActive, &m.IsSuspended, &m.IsDeleted, &m.CreatedAt, &m.UpdatedAt,
		)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mechanic workshop: %w", err)
	}

	return &m, nil
}

// SetMechanicWorkshopWorkspace points the workshop back at the workspace that
// owns it.
func (s *Storage) SetMechanicWorkshopWorkspace(ctx context.Context, workshopID, wid string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetMechanicWorkshopWorkspace")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("mechanic_workshops").
		Set("workspace_id", wid).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": workshopID}).
		ExecContext(ctx)

	if err != nil {
		return wrapWriteError(err, "failed to set workshop workspace")
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

// CreateWorkspace inserts w with a freshly generated wid. The workspace type is
// always derived from the bound business kind, the value carried by w is
// ignored.
func (s *Storage) CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkspace")
	defer span.End()

	created := *w
	created.WorkspaceType = types.WorkspaceTypeOther
	if created.HasBusiness() {
		created.WorkspaceType = created.MainBusinessKind.WorkspaceType()
	}

	wid, err := s.insertWithWID(ctx, func(wid string) sq.InsertBuilder {
		return s.db.Statement(ctx).
			Insert("workspaces").
			Columns(
				"wid", "short_name", "workspace_type", "main_business_kind", "main_business_id",
				"sidebar_manifest_id", "price", "contract_starts_at", "expires_at", "grace_days_period",
				"time_zone", "is_active",
			).
			Values(
				wid, created.ShortName, string(created.WorkspaceType), nullableString(string(created.MainBusinessKind)),
				nullableString(created.MainBusinessID), created.SidebarManifestID, created.Price, created.ContractStartsAt,
				created.ExpiresAt, created.GraceDaysPeriod, created.TimeZone, created.IsActive,
			).
			Suffix("ON CONFLICT (wid) DO NOTHING RETURNING created_at, updated_at")
	}, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert workspace")
	}

	created.WID = wid

	return &created, nil
}

// SetWorkspaceManifest attaches manifestID to the workspace only while the
// manifest row still exists. The EXISTS clause takes a key share lock so the
// manifest cannot be deleted between the check and the foreign key check.
// It reports false when nothing was attached.
func (s *Storage) SetWorkspaceManifest(ctx context.Context, wid, manifestID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetWorkspaceManifest")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspaces").
		Set("sidebar_manifest_id", manifestID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"wid": wid}).
		Where(sq.Expr("EXISTS (SELECT 1 FROM sidebar_manifests WHERE id = ? FOR KEY SHARE)", manifestID)).
		ExecContext(ctx)

	if err != nil {
		return false, wrapWriteError(err, "failed to set workspace manifest")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}

func (s *Storage) GetWorkspaceByWID(ctx context.Context, wid string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspaceByWID")
	defer span.End()

	w, err := scanWorkspace(
		s.db.Statement(ctx).
			Select(workspaceColumns...).
			From("workspaces").
			Where(sq.Eq{"wid": wid, "is_deleted": false}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return w, nil
}

func scanWorkspace(row sq.RowScanner) (*types.Workspace, error) {
	var (
		w          types.Workspace
		kind       sql.NullString
		businessID sql.NullString
	)

	err := row.Scan(
		&w.WID, &w.ShortName, &w.WorkspaceType, &kind, &businessID, &w.SidebarManifestID,
		&w.Price, &w.ContractStartsAt, &w.ExpiresAt, &w.GraceDaysPeriod, &w.TimeZone,
		&w.IsActive, &w.IsDeleted, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.MainBusinessKind = types.BusinessKind(kind.String)
	w.MainBusinessID = businessID.String

	return &w, nil
}

func (s *Storage) CreateWorkspaceModule(ctx context.Context, m *types.WorkspaceModule) (*types.WorkspaceModule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkspaceModule")
	defer span.End()

	created := *m

	wid, err := s.insertWithWID(ctx, func(wid string) sq.InsertBuilder {
		return s.db.Statement(ctx).
			Insert("workspace_modules").
			Columns(
				"wid", "name", "workspace_id", "sidebar_manifest_id", "price", "contract_starts_at",
				"expires_at", "grace_days_period", "is_active",
			).
			Values(
				wid, created.Name, created.WorkspaceID, created.SidebarManifestID, created.Price,
				created.ContractStartsAt, created.ExpiresAt, created.GraceDaysPeriod, created.IsActive,
			).
			Suffix("ON CONFLICT (wid) DO NOTHING RETURNING created_at, updated_at")
	}, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert workspace module")
	}

	created.WID = wid

	return &created, nil
}

func (s *Storage) ListModulesByWorkspace(ctx context.Context, wid string) ([]*types.WorkspaceModule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListModulesByWorkspace")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(workspaceModuleColumns...).
		From("workspace_modules").
		Where(sq.Eq{"workspace_id": wid}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace modules: %w", err)
	}
	defer rows.Close()

	var modules []*types.WorkspaceModule
	for rows.Next() {
		var m types.WorkspaceModule
		if err := rows.Scan(
			&m.WID, &m.Name, &m.WorkspaceID, &m.SidebarManifestID, &m.Price, &m.ContractStartsAt,
			&m.ExpiresAt, &m.GraceDaysPeriod, &m.IsActive, &m.IsDeleted, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workspace module: %w", err)
		}
		modules = append(modules, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return modules, nil
}
