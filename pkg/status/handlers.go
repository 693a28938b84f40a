// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/SrVladyslav/falquor-backend/internal/http/types"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/version"
)

const (
	okValue          = "ok"
	degradedValue    = "degraded"
	unavailableValue = "unavailable"

	pingTimeout = 2 * time.Second
)

type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

type API struct {
	database DatabaseInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	s := Status{Status: okValue, Database: okValue, Version: version.Version}
	code := http.StatusOK

	if err := a.pingDatabase(ctx); err != nil {
		a.logger.Errorf("database ping failed: %v", err)

		s.Status = degradedValue
		s.Database = unavailableValue
		code = http.StatusServiceUnavailable
	}

	httpTypes.WriteJSON(w, code, s, s.Status)
}

func (a *API) pingDatabase(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return a.database.Ping(ctx)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httpTypes.WriteJSON(w, http.StatusOK, map[string]string{"version": version.Version}, okValue)
}

func NewAPI(database DatabaseInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.database = database

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
