// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	httpTypes "github.com/SrVladyslav/falquor-backend/internal/http/types"
	"github.com/SrVladyslav/falquor-backend/internal/identity"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

// WorkspaceResponse is a workspace together with its computed base price.
type WorkspaceResponse struct {
	*types.Workspace

	BasePrice decimal.Decimal `json:"base_price"`
}

func newWorkspaceResponse(ws *types.Workspace) WorkspaceResponse {
	return WorkspaceResponse{Workspace: ws, BasePrice: ws.BasePrice()}
}

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/workspaces", a.provision)
	mux.Get("/api/v0/workspaces/{wid}", a.get)
}

func (a *API) provision(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.provision")
	defer span.End()

	accountID, ok := identity.RequireAccountID(w, r)
	if !ok {
		return
	}

	req := new(ProvisionRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httpTypes.WriteError(w, errs.NewValidationError("body", nil, "invalid request body"))
		return
	}

	ws, err := a.service.Provision(ctx, accountID, req)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, newWorkspaceResponse(ws), "Workspace created")
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.get")
	defer span.End()

	accountID, ok := identity.RequireAccountID(w, r)
	if !ok {
		return
	}

	wid := chi.URLParam(r, "wid")

	member, err := a.service.IsMember(ctx, accountID, wid)
	if err != nil {
		a.logger.Errorf("failed to check membership: %v", err)
		httpTypes.WriteError(w, err)
		return
	}
	if !member {
		a.logger.Security().AuthzFailure(accountID, "workspace:"+wid)
		httpTypes.WriteError(w, errs.ErrForbidden)
		return
	}

	ws, err := a.service.GetWorkspace(ctx, wid)
	if err != nil {
		a.logger.Errorf("failed to get workspace %s: %v", wid, err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, newWorkspaceResponse(ws), "Workspace details")
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}
