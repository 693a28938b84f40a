// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/storage"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
	"github.com/SrVladyslav/falquor-backend/internal/validation"
)

const (
	numberConstraint = "work_orders_workshop_number_unique"
	defaultCurrency  = "EUR"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	tx          TxRunnerInterface
	memberships MembershipInterface
	validator   *validation.Validator

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolveWorkshop returns workshopID, or the main workshop of the vehicle
// when workshopID is empty.
func (s *Service) ResolveWorkshop(ctx context.Context, workshopID, vehicleID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "workorder.Service.ResolveWorkshop")
	defer span.End()

	if workshopID != "" {
		return workshopID, nil
	}
	if _, err := uuid.Parse(vehicleID); err != nil {
		return "", errs.NewValidationError("customer_vehicle_id", vehicleID, "must be a UUID")
	}

	id, err := s.storage.GetVehicleWorkshopID(ctx, vehicleID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", errs.Precondition(fmt.Sprintf("vehicle %s does not exist, workshop cannot be derived", vehicleID))
	}
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errs.Precondition(fmt.Sprintf("work order has no workshop and vehicle %s has no main workshop", vehicleID))
	}

	return id, nil
}

// Authorize checks that accountID is an active member of the workspace owning
// the workshop.
func (s *Service) Authorize(ctx context.Context, accountID, workshopID string) error {
	ctx, span := s.tracer.Start(ctx, "workorder.Service.Authorize")
	defer span.End()

	if _, err := uuid.Parse(workshopID); err != nil {
		return errs.NewValidationError("workshop_id", workshopID, "must be a UUID")
	}

	workshop, err := s.storage.GetMechanicWorkshop(ctx, workshopID)
	if errors.Is(err, storage.ErrNotFound) {
		return errs.NotFound(fmt.Sprintf("workshop %s", workshopID))
	}
	if err != nil {
		return err
	}

	if workshop.WorkspaceID == nil {
		return errs.ErrForbidden
	}

	member, err := s.memberships.IsMember(ctx, accountID, *workshop.WorkspaceID)
	if err != nil {
		return err
	}
	if !member {
		return errs.ErrForbidden
	}

	return nil
}

// CreateWorkOrder persists a new work order. Unless the request carries a
// number, the next one for the workshop is allocated under a lock held until
// the insert commits. A lost race on the number retries the whole transaction
// once when this call owns it.
func (s *Service) CreateWorkOrder(ctx context.Context, req *CreateWorkOrderRequest) (*types.WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "workorder.Service.CreateWorkOrder")
	defer span.End()

	order, err := s.newWorkOrder(req)
	if err != nil {
		return nil, err
	}

	order.WorkshopID, err = s.ResolveWorkshop(ctx, order.WorkshopID, order.CustomerVehicleID)
	if err != nil {
		return nil, err
	}

	owned := !s.tx.InTx(ctx)
	manual := order.WorkshopNumber != nil
	attempts := 1
	if owned && !manual {
		attempts = 2
	}

	for attempt := 1; ; attempt++ {
		created, err := s.createWorkOrder(ctx, order)
		if err == nil {
			return created, nil
		}

		if !isNumberConflict(err) {
			return nil, err
		}
		if manual {
			return nil, errs.Conflict(fmt.Sprintf("workshop number %d is already used in workshop %s", *order.WorkshopNumber, order.WorkshopID), err)
		}
		if attempt >= attempts {
			return nil, errs.Conflict(fmt.Sprintf("could not allocate a workshop number in workshop %s", order.WorkshopID), err)
		}

		s.logger.Warnf("workshop number collision in workshop %s, retrying", order.WorkshopID)
		if err := s.monitor.IncWorkOrderNumberRetry(map[string]string{"workshop": order.WorkshopID}); err != nil {
			s.logger.Debugf("failed to record retry metric: %v", err)
		}
	}
}

func (s *Service) createWorkOrder(ctx context.Context, order *types.WorkOrder) (*types.WorkOrder, error) {
	var created *types.WorkOrder

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		o := *order

		if o.WorkshopNumber == nil {
			next, err := s.nextNumber(ctx, o.WorkshopID)
			if err != nil {
				return err
			}
			o.WorkshopNumber = &next
		}

		var err error
		created, err = s.storage.CreateWorkOrder(ctx, &o)
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return errs.NotFound(fmt.Sprintf("vehicle %s", o.CustomerVehicleID))
		}
		return err
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

// nextNumber must run inside a transaction, the locks it takes are released
// on commit.
func (s *Service) nextNumber(ctx context.Context, workshopID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "workorder.Service.nextNumber")
	defer span.End()

	if err := s.storage.LockWorkshop(ctx, workshopID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, errs.NotFound(fmt.Sprintf("workshop %s", workshopID))
		}
		return 0, err
	}

	if err := s.storage.LockWorkOrders(ctx, workshopID); err != nil {
		return 0, err
	}

	current, err := s.storage.MaxWorkshopNumber(ctx, workshopID)
	if err != nil {
		return 0, err
	}

	return current + 1, nil
}

func isNumberConflict(err error) bool {
	return errors.Is(err, storage.ErrDuplicateKey) && storage.ConstraintName(err) == numberConstraint
}

func (s *Service) newWorkOrder(req *CreateWorkOrderRequest) (*types.WorkOrder, error) {
	if req == nil {
		return nil, errs.NewValidationError("body", nil, "required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	o := &types.WorkOrder{
		WorkshopID:        req.WorkshopID,
		CustomerVehicleID: req.CustomerVehicleID,
		WorkshopNumber:    req.WorkshopNumber,
		AttendedByID:      req.AttendedByID,
		CustomerTelephone: req.CustomerTelephone,
		Description:       req.Description,
		Observations:      req.Observations,
		StartMileage:      req.StartMileage,
		Stage:             types.StageCheckIn,
		Status:            types.StatusOpen,
		Priority:          types.PriorityNormal,
		PricePerHour:      req.PricePerHour,
		Currency:          defaultCurrency,
		CarLeft:           req.CarLeft,
	}

	if req.Stage != "" {
		if !req.Stage.IsValid() {
			return nil, errs.NewValidationError("stage", string(req.Stage), "unknown stage")
		}
		o.Stage = req.Stage
	}
	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, errs.NewValidationError("status", string(req.Status), "unknown status")
		}
		o.Status = req.Status
	}
	if req.Priority != "" {
		if !req.Priority.IsValid() {
			return nil, errs.NewValidationError("priority", string(req.Priority), "unknown priority")
		}
		o.Priority = req.Priority
	}
	if req.Currency != "" {
		o.Currency = req.Currency
	}

	if req.CarEntered != nil {
		o.CarEntered = *req.CarEntered
	} else {
		y, m, d := s.now().Date()
		o.CarEntered = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	if o.CarLeft != nil && o.CarLeft.Before(o.CarEntered) {
		return nil, errs.NewValidationError("car_left", o.CarLeft.Format(time.DateOnly), "must not be before car_entered")
	}

	return o, nil
}

func (s *Service) GetWorkOrder(ctx context.Context, id string) (*types.WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "workorder.Service.GetWorkOrder")
	defer span.End()

	if _, err := uuid.Parse(id); err != nil {
		return nil, errs.NotFound(fmt.Sprintf("work order %s", id))
	}

	o, err := s.storage.GetWorkOrder(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errs.NotFound(fmt.Sprintf("work order %s", id))
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}

// AddAssignment records a labor interval on the work order.
func (s *Service) AddAssignment(ctx context.Context, workOrderID string, req *AssignmentRequest) (*types.WorkOrderAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "workorder.Service.AddAssignment")
	defer span.End()

	if req == nil {
		return nil, errs.NewValidationError("body", nil, "required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if err := ValidateInterval(req.StartedAt, req.EndedAt); err != nil {
		return nil, err
	}

	a, err := s.storage.CreateAssignment(ctx, &types.WorkOrderAssignment{
		WorkOrderID:  workOrderID,
		AssigneeID:   req.AssigneeID,
		StartedAt:    req.StartedAt,
		EndedAt:      req.EndedAt,
		PricePerHour: req.PricePerHour,
		Notes:        req.Notes,
		WorkDone:     req.WorkDone,
	})

	switch {
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return nil, errs.NotFound(fmt.Sprintf("work order %s", workOrderID))
	case errors.Is(err, storage.ErrCheckViolation):
		return nil, errs.NewValidationError("ended_at", nil, "must not be before started_at")
	case err != nil:
		return nil, err
	}

	return a, nil
}

// CloseAssignment ends an open assignment of the work order at endedAt.
func (s *Service) CloseAssignment(ctx context.Context, workOrderID, assignmentID string, endedAt time.Time) (*types.WorkOrderAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "workorder.Service.CloseAssignment")
	defer span.End()

	if _, err := uuid.Parse(assignmentID); err != nil {
		return nil, errs.NotFound(fmt.Sprintf("assignment %s of work order %s", assignmentID, workOrderID))
	}

	a, err := s.storage.GetAssignment(ctx, assignmentID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && a.WorkOrderID != workOrderID) {
		return nil, errs.NotFound(fmt.Sprintf("assignment %s of work order %s", assignmentID, workOrderID))
	}
	if err != nil {
		return nil, err
	}

	if a.EndedAt != nil {
		return nil, errs.Conflict(fmt.Sprintf("assignment %s is already closed", assignmentID), nil)
	}
	if err := ValidateInterval(a.StartedAt, &endedAt); err != nil {
		return nil, err
	}

	closed, err := s.storage.CloseAssignment(ctx, assignmentID, endedAt)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, errs.Conflict(fmt.Sprintf("assignment %s is already closed", assignmentID), nil)
	case errors.Is(err, storage.ErrCheckViolation):
		return nil, errs.NewValidationError("ended_at", endedAt.Format(time.RFC3339), "must not be before started_at")
	case err != nil:
		return nil, err
	}

	return closed, nil
}

func (s *Service) ActiveAssignments(ctx context.Context, workOrderID string, now time.Time) ([]*types.WorkOrderAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "workorder.Service.ActiveAssignments")
	defer span.End()

	assignments, err := s.storage.ListAssignmentsByWorkOrder(ctx, workOrderID)
	if err != nil {
		return nil, err
	}

	return FilterActive(assignments, now), nil
}

// CurrentAssignees returns who is working on the order at now.
func (s *Service) CurrentAssignees(ctx context.Context, workOrderID string, now time.Time) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "workorder.Service.CurrentAssignees")
	defer span.End()

	active, err := s.ActiveAssignments(ctx, workOrderID, now)
	if err != nil {
		return nil, err
	}

	return Assignees(active), nil
}

func NewService(storage StorageInterface, tx TxRunnerInterface, memberships MembershipInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.memberships = memberships
	s.validator = validation.NewValidator()
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
