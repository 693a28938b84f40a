// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package sidebar

import (
	"context"
	"errors"

	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/storage"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	cache   CacheInterface
	name    string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// DefaultManifest returns the manifest new workspaces start with, or nil when
// none is installed. Cache failures fall back to the database.
func (s *Service) DefaultManifest(ctx context.Context) (*types.SidebarManifest, error) {
	ctx, span := s.tracer.Start(ctx, "sidebar.Service.DefaultManifest")
	defer span.End()

	if s.cache != nil {
		m, err := s.cache.Get(ctx, s.name)
		if err != nil {
			s.logger.Warnf("manifest cache lookup failed: %v", err)
		}
		if m != nil {
			return m, nil
		}
	}

	m, err := s.storage.GetManifestByName(ctx, s.name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, m); err != nil {
			s.logger.Warnf("failed to cache manifest %s: %v", s.name, err)
		}
	}

	return m, nil
}

// NewService builds the lookup for the manifest called name. cache may be nil.
func NewService(storage StorageInterface, cache CacheInterface, name string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.cache = cache
	s.name = name

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
