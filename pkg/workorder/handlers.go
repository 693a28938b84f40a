// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workorder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	httpTypes "github.com/SrVladyslav/falquor-backend/internal/http/types"
	"github.com/SrVladyslav/falquor-backend/internal/identity"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

type AssigneesResponse struct {
	WorkOrderID string   `json:"work_order_id"`
	At          string   `json:"at"`
	Assignees   []string `json:"assignees"`
}

type API struct {
	service ServiceInterface

	now func() time.Time

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/work-orders", a.create)
	mux.Get("/api/v0/work-orders/{id}", a.get)
	mux.Post("/api/v0/work-orders/{id}/assignments", a.addAssignment)
	mux.Post("/api/v0/work-orders/{id}/assignments/{assignmentID}/close", a.closeAssignment)
	mux.Get("/api/v0/work-orders/{id}/assignees", a.assignees)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workorder.API.create")
	defer span.End()

	accountID, ok := identity.RequireAccountID(w, r)
	if !ok {
		return
	}

	req := new(CreateWorkOrderRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httpTypes.WriteError(w, errs.NewValidationError("body", nil, "invalid request body"))
		return
	}

	workshopID, err := a.service.ResolveWorkshop(ctx, req.WorkshopID, req.CustomerVehicleID)
	if err != nil {
		httpTypes.WriteError(w, err)
		return
	}
	if !a.authorize(ctx, w, accountID, workshopID) {
		return
	}
	req.WorkshopID = workshopID

	order, err := a.service.CreateWorkOrder(ctx, req)
	if err != nil {
		a.logger.Errorf("failed to create work order: %+v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, order, "Work order created")
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workorder.API.get")
	defer span.End()

	order, ok := a.authorizedOrder(ctx, w, r)
	if !ok {
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, order, "Work order details")
}

func (a *API) addAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workorder.API.addAssignment")
	defer span.End()

	order, ok := a.authorizedOrder(ctx, w, r)
	if !ok {
		return
	}

	req := new(AssignmentRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httpTypes.WriteError(w, errs.NewValidationError("body", nil, "invalid request body"))
		return
	}

	assignment, err := a.service.AddAssignment(ctx, order.ID, req)
	if err != nil {
		a.logger.Errorf("failed to add assignment to %s: %v", order.ID, err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusCreated, assignment, "Assignment created")
}

func (a *API) closeAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workorder.API.closeAssignment")
	defer span.End()

	order, ok := a.authorizedOrder(ctx, w, r)
	if !ok {
		return
	}

	var req CloseAssignmentRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpTypes.WriteError(w, errs.NewValidationError("body", nil, "invalid request body"))
			return
		}
	}

	endedAt := a.now()
	if req.EndedAt != nil {
		endedAt = *req.EndedAt
	}

	assignment, err := a.service.CloseAssignment(ctx, order.ID, chi.URLParam(r, "assignmentID"), endedAt)
	if err != nil {
		a.logger.Errorf("failed to close assignment: %+v", err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, assignment, "Assignment closed")
}

// assignees answers who is working on the order, now or at the RFC 3339 time
// given in the "at" query parameter.
func (a *API) assignees(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workorder.API.assignees")
	defer span.End()

	order, ok := a.authorizedOrder(ctx, w, r)
	if !ok {
		return
	}

	at := a.now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httpTypes.WriteError(w, errs.NewValidationError("at", raw, "must be an RFC 3339 timestamp"))
			return
		}
		at = parsed
	}

	ids, err := a.service.CurrentAssignees(ctx, order.ID, at)
	if err != nil {
		a.logger.Errorf("failed to list assignees of %s: %v", order.ID, err)
		httpTypes.WriteError(w, err)
		return
	}

	httpTypes.WriteJSON(w, http.StatusOK, AssigneesResponse{
		WorkOrderID: order.ID,
		At:          at.Format(time.RFC3339),
		Assignees:   ids,
	}, "Current assignees")
}

// authorizedOrder loads the work order named in the path and checks the
// caller belongs to the workspace owning its workshop.
func (a *API) authorizedOrder(ctx context.Context, w http.ResponseWriter, r *http.Request) (*types.WorkOrder, bool) {
	accountID, ok := identity.RequireAccountID(w, r)
	if !ok {
		return nil, false
	}

	order, err := a.service.GetWorkOrder(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httpTypes.WriteError(w, err)
		return nil, false
	}

	if !a.authorize(ctx, w, accountID, order.WorkshopID) {
		return nil, false
	}

	return order, true
}

func (a *API) authorize(ctx context.Context, w http.ResponseWriter, accountID, workshopID string) bool {
	err := a.service.Authorize(ctx, accountID, workshopID)
	if err == nil {
		return true
	}

	if errors.Is(err, errs.ErrForbidden) {
		a.logger.Security().AuthzFailure(accountID, "workshop:"+workshopID)
	} else {
		a.logger.Errorf("failed to authorize %s on workshop %s: %v", accountID, workshopID, err)
	}

	httpTypes.WriteError(w, err)
	return false
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		now:     time.Now,
		tracer:  tracer,
		logger:  logger,
	}
}
