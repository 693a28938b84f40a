// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package business

import (
	"context"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

type ResolverInterface interface {
	Resolve(ctx context.Context, kind types.BusinessKind, id string) (types.Business, error)
}

type StorageInterface interface {
	GetMechanicWorkshop(ctx context.Context, id string) (*types.MechanicWorkshop, error)
}
