// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package business

import (
	"context"
	"errors"
	"fmt"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/storage"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

var _ ResolverInterface = (*Resolver)(nil)

// Resolver turns a (kind, id) reference stored on a workspace into the
// business record it points at.
type Resolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Resolver) Resolve(ctx context.Context, kind types.BusinessKind, id string) (types.Business, error) {
	ctx, span := r.tracer.Start(ctx, "business.Resolver.Resolve")
	defer span.End()

	switch kind {
	case types.BusinessKindMechanicWorkshop:
		if id == "" {
			return nil, errs.NotFound("mechanic workshop without id")
		}

		m, err := r.storage.GetMechanicWorkshop(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, errs.NotFound(fmt.Sprintf("mechanic workshop %s", id))
		}
		if err != nil {
			return nil, err
		}

		return m, nil
	case types.BusinessKindHoreca:
		return nil, errs.NotImplemented("horeca businesses")
	default:
		r.logger.Errorf("workspace references unregistered business kind %q", kind)
		return nil, errs.Configuration(fmt.Sprintf("unregistered business kind %q", kind))
	}
}

func NewResolver(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)

	r.storage = storage

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
