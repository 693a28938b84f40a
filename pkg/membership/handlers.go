// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	httpTypes "github.com/SrVladyslav/falquor-backend/internal/http/types"
	"github.com/SrVladyslav/falquor-backend/internal/identity"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

type GrantRequest struct {
	Role             types.MembershipRole `json:"role"`
	CanManageBilling bool                 `json:"can_manage_billing"`
}

type GrantResponse struct {
	Membership *types.Membership `json:"membership"`
	Created    bool              `json:"created"`
}

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/me/workspaces", a.listAdministered)
	mux.Put("/api/v0/workspaces/{wid}/memberships/{accountID}", a.grant)
	mux.Delete("/api/v0/workspaces/{wid}/memberships/{accountID}", a.revoke)
}

func (a *API) listAdministered(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.listAdministered")
	defer span.End()

	accountID, ok := identity.RequireAccountID(w, r)
	if !ok {
		return
	}

	workspaces, err := a.service.ListAdministered(ctx, accountID)
	if err != nil {
		a.logger.Errorf("failed to list administered workspaces: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	if workspaces == nil {
		workspaces = []*types.Workspace{}
	}

	httpTypes.WriteJSON(w, http.StatusOK, workspaces, "List of administered workspaces")
}

func (a *API) grant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.grant")
	defer span.End()

	wid := chi.URLParam(r, "wid")
	if !a.authorizeAdmin(w, r, wid) {
		return
	}

	var req GrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteError(w, errs.NewValidationError("body", nil, "invalid request body"))
		return
	}

	m, created, err := a.service.Grant(ctx, wid, chi.URLParam(r, "accountID"), req.Role, req.CanManageBilling)
	if err != nil {
		a.logger.Errorf("failed to grant membership: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	httpTypes.WriteJSON(w, status, GrantResponse{Membership: m, Created: created}, "Membership granted")
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.revoke")
	defer span.End()

	wid := chi.URLParam(r, "wid")
	if !a.authorizeAdmin(w, r, wid) {
		return
	}

	if err := a.service.Revoke(ctx, wid, chi.URLParam(r, "accountID")); err != nil {
		a.logger.Errorf("failed to revoke membership: %v", err)
		httpTypes.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizeAdmin lets the request through only when the caller is an active
// OWNER or ADMIN of the workspace.
func (a *API) authorizeAdmin(w http.ResponseWriter, r *http.Request, wid string) bool {
	accountID, ok := identity.RequireAccountID(w, r)
	if !ok {
		return false
	}

	allowed, err := a.service.IsMemberWithRole(r.Context(), accountID, wid, AdminRoles)
	if err != nil {
		a.logger.Errorf("failed to check membership: %v", err)
		httpTypes.WriteError(w, err)
		return false
	}

	if !allowed {
		a.logger.Security().AuthzFailure(accountID, "workspace:"+wid)
		httpTypes.WriteError(w, errs.ErrForbidden)
		return false
	}

	return true
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}
