// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/SrVladyslav/falquor-backend/internal/config"
	"github.com/SrVladyslav/falquor-backend/internal/db"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/storage"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/pkg/business"
	"github.com/SrVladyslav/falquor-backend/pkg/membership"
	"github.com/SrVladyslav/falquor-backend/pkg/sidebar"
	"github.com/SrVladyslav/falquor-backend/pkg/web"
	"github.com/SrVladyslav/falquor-backend/pkg/workorder"
	"github.com/SrVladyslav/falquor-backend/pkg/workspace"
)

// app holds the services shared by the server and the admin commands.
type app struct {
	dbClient *db.DBClient
	redis    *redis.Client

	workspaces  *workspace.Service
	memberships *membership.Service
	workOrders  *workorder.Service
}

func (a *app) services() web.Services {
	return web.Services{
		Workspaces:  a.workspaces,
		Memberships: a.memberships,
		WorkOrders:  a.workOrders,
	}
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	a.dbClient.Close()
}

func newApp(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*app, error) {
	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %v", err)
	}

	a := &app{dbClient: dbClient}
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var cache sidebar.CacheInterface
	if specs.RedisAddr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		})
		if err := a.redis.Ping(context.Background()).Err(); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis: %v", err)
		}
		cache = sidebar.NewRedisCache(a.redis, specs.ManifestCacheTTL)
		logger.Info("Manifest cache is enabled")
	} else {
		logger.Info("Manifest cache is disabled")
	}

	a.memberships = membership.NewService(s, dbClient, tracer, monitor, logger)
	a.workspaces = workspace.NewService(
		s,
		dbClient,
		a.memberships,
		business.NewResolver(s, tracer, monitor, logger),
		sidebar.NewService(s, cache, specs.DefaultManifestName, tracer, monitor, logger),
		nil,
		specs.DefaultTimeZone,
		tracer,
		monitor,
		logger,
	)
	a.workOrders = workorder.NewService(s, dbClient, a.memberships, tracer, monitor, logger)

	return a, nil
}
