// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/storage"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
	"github.com/SrVladyslav/falquor-backend/internal/validation"
	"github.com/SrVladyslav/falquor-backend/pkg/business"
)

const DefaultTimeZone = "Europe/Madrid"

var _ ServiceInterface = (*Service)(nil)

// ZeroPricing quotes every add-on at zero until billing plans exist.
type ZeroPricing struct{}

func (ZeroPricing) AddonPrice(context.Context, string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type Service struct {
	storage     StorageInterface
	tx          TxRunnerInterface
	memberships MembershipInterface
	resolver    ResolverInterface
	manifests   ManifestInterface
	pricing     PricingInterface
	validator   *validation.Validator

	defaultTimeZone string
	now             func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Provision onboards a new business for accountID. Every row it writes is
// created in one transaction, a failure at any step leaves nothing behind.
func (s *Service) Provision(ctx context.Context, accountID string, req *ProvisionRequest) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.Provision")
	defer span.End()

	if _, err := uuid.Parse(accountID); err != nil {
		return nil, errs.NewValidationError("account_id", accountID, "must be a UUID")
	}
	if req == nil {
		return nil, errs.NewValidationError("body", nil, "required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	workspaceType, err := business.NormalizeBusinessType(req.Business.BusinessType)
	if err != nil {
		return nil, err
	}
	if workspaceType != types.WorkspaceTypeMechanicalWorkshop {
		return nil, errs.NotImplemented(fmt.Sprintf("provisioning of %s workspaces", workspaceType))
	}

	manifest := s.defaultManifest(ctx)

	var provisioned *types.Workspace
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		workshop, err := s.storage.CreateMechanicWorkshop(ctx, s.mechanicWorkshop(req))
		if err != nil {
			return err
		}

		ws := &types.Workspace{
			ShortName: req.ShortName,
			TimeZone:  workshop.TimeZone,
			IsActive:  true,
		}
		if ws.ShortName == "" {
			ws.ShortName = workshop.BusinessName
		}
		business.Bind(ws, workshop)

		created, err := s.storage.CreateWorkspace(ctx, ws)
		if err != nil {
			if storage.IsDuplicateKeyError(err) {
				return errs.Conflict("business is already bound to a workspace", err)
			}
			return err
		}

		if manifest != nil {
			attached, err := s.storage.SetWorkspaceManifest(ctx, created.WID, manifest.ID)
			if err != nil {
				return err
			}
			if attached {
				created.SidebarManifestID = &manifest.ID
			} else {
				s.logger.Warnf("sidebar manifest %s is gone, workspace %s starts without one", manifest.ID, created.WID)
			}
		}

		if err := s.storage.SetMechanicWorkshopWorkspace(ctx, workshop.ID, created.WID); err != nil {
			return err
		}
		workshop.WorkspaceID = &created.WID
		created.MainBusiness = workshop

		if _, _, err := s.memberships.Grant(ctx, created.WID, accountID, types.MembershipRoleOwner, true); err != nil {
			return err
		}

		modules, err := s.enableModules(ctx, created.WID, req.enabledModules())
		if err != nil {
			return err
		}
		created.Modules = modules

		if _, err := s.storage.UpsertWorkspaceMember(ctx, &types.WorkspaceMember{
			WorkspaceID: created.WID,
			AccountID:   accountID,
			Role:        types.WorkspaceRoleOwner,
			IsActive:    true,
			IsOwner:     true,
			IsAdmin:     true,
			InvitedBy:   &accountID,
		}); err != nil {
			return err
		}

		provisioned = created
		return nil
	})

	if err != nil {
		s.logger.Errorf("failed to provision workspace for %s: %+v", accountID, err)
		return nil, err
	}

	s.logger.Security().MembershipGranted(provisioned.WID, accountID, string(types.MembershipRoleOwner))
	s.logger.Security().WorkspaceProvisioned(provisioned.WID, accountID)

	return provisioned, nil
}

// defaultManifest looks the manifest up before any write so that a failed
// lookup cannot abort the provisioning transaction.
func (s *Service) defaultManifest(ctx context.Context) *types.SidebarManifest {
	if s.manifests == nil {
		return nil
	}

	m, err := s.manifests.DefaultManifest(ctx)
	if err != nil {
		s.logger.Warnf("default sidebar manifest unavailable: %v", err)
		return nil
	}

	return m
}

func (s *Service) mechanicWorkshop(req *ProvisionRequest) *types.MechanicWorkshop {
	b, a := req.Business, req.Address

	return &types.MechanicWorkshop{
		BusinessOrganization: types.BusinessOrganization{
			BusinessName: b.BusinessName,
			Description:  b.Description,
			TaxID:        b.TaxID,
			Email:        b.Email,
			Phone:        b.Phone,
			Fax:          b.Fax,
			Website:      b.Website,
			Address:      a.Address,
			Street:       a.Street,
			PostalCode:   a.PostalCode,
			City:         a.City,
			State:        a.State,
			Country:      a.Country,
			TimeZone:     req.timeZone(s.defaultTimeZone),
			IsActive:     true,
		},
	}
}

func (s *Service) enableModules(ctx context.Context, wid string, names []string) ([]*types.WorkspaceModule, error) {
	modules := make([]*types.WorkspaceModule, 0, len(names))

	for _, name := range names {
		price, err := s.pricing.AddonPrice(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to price add-on %s: %w", name, err)
		}

		startsAt := s.now()
		m, err := s.storage.CreateWorkspaceModule(ctx, &types.WorkspaceModule{
			Name:             name,
			WorkspaceID:      wid,
			Price:            decimal.NewNullDecimal(price),
			ContractStartsAt: &startsAt,
			IsActive:         true,
		})
		if err != nil {
			return nil, err
		}

		modules = append(modules, m)
	}

	return modules, nil
}

// GetWorkspace returns the workspace with its bound business and modules.
func (s *Service) GetWorkspace(ctx context.Context, wid string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.GetWorkspace")
	defer span.End()

	ws, err := s.storage.GetWorkspaceByWID(ctx, wid)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errs.NotFound(fmt.Sprintf("workspace %s", wid))
	}
	if err != nil {
		return nil, err
	}

	if ws.HasBusiness() {
		b, err := s.resolver.Resolve(ctx, ws.MainBusinessKind, ws.MainBusinessID)
		if err != nil {
			return nil, err
		}
		ws.MainBusiness = b
	}

	modules, err := s.storage.ListModulesByWorkspace(ctx, wid)
	if err != nil {
		return nil, err
	}
	ws.Modules = modules

	return ws, nil
}

func (s *Service) IsMember(ctx context.Context, accountID, wid string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.IsMember")
	defer span.End()

	return s.memberships.IsMember(ctx, accountID, wid)
}

// NewService wires the provisioner. manifests may be nil, pricing defaults to
// ZeroPricing and an empty defaultTimeZone to DefaultTimeZone.
func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	memberships MembershipInterface,
	resolver ResolverInterface,
	manifests ManifestInterface,
	pricing PricingInterface,
	defaultTimeZone string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.memberships = memberships
	s.resolver = resolver
	s.manifests = manifests
	s.pricing = pricing
	s.validator = validation.NewValidator()
	s.defaultTimeZone = defaultTimeZone
	s.now = time.Now

	if s.pricing == nil {
		s.pricing = ZeroPricing{}
	}
	if s.defaultTimeZone == "" {
		s.defaultTimeZone = DefaultTimeZone
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
