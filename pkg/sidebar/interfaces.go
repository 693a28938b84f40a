// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package sidebar

import (
	"context"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

type ServiceInterface interface {
	DefaultManifest(ctx context.Context) (*types.SidebarManifest, error)
}

type StorageInterface interface {
	GetManifestByName(ctx context.Context, name string) (*types.SidebarManifest, error)
}

type CacheInterface interface {
	Get(ctx context.Context, name string) (*types.SidebarManifest, error)
	Set(ctx context.Context, manifest *types.SidebarManifest) error
}
