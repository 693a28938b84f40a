// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/SrVladyslav/falquor-backend/internal/db"
	"github.com/SrVladyslav/falquor-backend/internal/identity"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/pkg/membership"
	"github.com/SrVladyslav/falquor-backend/pkg/metrics"
	"github.com/SrVladyslav/falquor-backend/pkg/status"
	"github.com/SrVladyslav/falquor-backend/pkg/workorder"
	"github.com/SrVladyslav/falquor-backend/pkg/workspace"
)

type Services struct {
	Workspaces  workspace.ServiceInterface
	Memberships membership.ServiceInterface
	WorkOrders  workorder.ServiceInterface
}

// NewRouter serves metrics and status unauthenticated, every other route
// requires the account id header.
func NewRouter(
	services Services,
	dbClient db.DBClientInterface,
	allowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(allowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	domain := chi.NewMux()
	domain.Use(identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware)

	workspace.NewAPI(services.Workspaces, tracer, logger).RegisterEndpoints(domain)
	membership.NewAPI(services.Memberships, tracer, logger).RegisterEndpoints(domain)
	workorder.NewAPI(services.WorkOrders, tracer, logger).RegisterEndpoints(domain)

	router.Mount("/", domain)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
