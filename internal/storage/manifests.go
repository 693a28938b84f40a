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

// GetManifestByName returns the active manifest with the given name and the
// highest priority.
func (s *Storage) GetManifestByName(ctx context.Context, name string) (*types.SidebarManifest, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetManifestByName")
	defer span.End()

	var (
		m   types.SidebarManifest
		raw []byte
	)

	err := s.db.Statement(ctx).
		Select("id", "name", "scope", "manifest", "version", "priority", "is_active", "checksum", "created_at").
		From("sidebar_manifests").
		Where(sq.Eq{"name": name, "is_active": true}).
		OrderBy("priority DESC", "created_at DESC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.Name, &m.Scope, &raw, &m.Version, &m.Priority, &m.IsActive, &m.Checksum, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get manifest: %w", err)
	}

	m.Manifest = raw

	return &m, nil
}
