// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type WorkspaceType string

const (
	WorkspaceTypeMechanicalWorkshop WorkspaceType = "MECHANICAL_WORKSHOP"
	WorkspaceTypeHoreca             WorkspaceType = "HORECA"
	WorkspaceTypeOther              WorkspaceType = "OTHER"
)

// Workspace is the tenant container. WorkspaceType is always derived from
// MainBusinessKind, see BusinessKind.WorkspaceType.
type Workspace struct {
	WID               string              `db:"wid" json:"wid"`
	ShortName         string              `db:"short_name" json:"short_name"`
	WorkspaceType     WorkspaceType       `db:"workspace_type" json:"workspace_type"`
	MainBusinessKind  BusinessKind        `db:"main_business_kind" json:"main_business_kind"`
	MainBusinessID    string              `db:"main_business_id" json:"main_business_id"`
	SidebarManifestID *string             `db:"sidebar_manifest_id" json:"sidebar_manifest_id"`
	Price             decimal.NullDecimal `db:"price" json:"price"`
	ContractStartsAt  *time.Time          `db:"contract_starts_at" json:"contract_starts_at"`
	ExpiresAt         *time.Time          `db:"expires_at" json:"expires_at"`
	GraceDaysPeriod   int                 `db:"grace_days_period" json:"grace_days_period"`
	TimeZone          string              `db:"time_zone" json:"time_zone"`
	IsActive          bool                `db:"is_active" json:"is_active"`
	IsDeleted         bool                `db:"is_deleted" json:"is_deleted"`
	CreatedAt         time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at" json:"updated_at"`

	MainBusiness Business           `db:"-" json:"main_business,omitempty"`
	Modules      []*WorkspaceModule `db:"-" json:"modules,omitempty"`
}

// BasePrice is the workspace own price plus the price of every active module.
func (w *Workspace) BasePrice() decimal.Decimal {
	total := decimal.Zero
	if w.Price.Valid {
		total = w.Price.Decimal
	}

	for _, m := range w.Modules {
		if m == nil || !m.IsActive || m.IsDeleted || !m.Price.Valid {
			continue
		}
		total = total.Add(m.Price.Decimal)
	}

	return total
}

// HasBusiness reports whether both halves of the business reference are set.
func (w *Workspace) HasBusiness() bool {
	return w.MainBusinessKind != "" && w.MainBusinessID != ""
}

type WorkspaceModule struct {
	WID               string              `db:"wid" json:"wid"`
	Name              string              `db:"name" json:"name"`
	WorkspaceID       string              `db:"workspace_id" json:"workspace_id"`
	SidebarManifestID *string             `db:"sidebar_manifest_id" json:"sidebar_manifest_id"`
	Price             decimal.NullDecimal `db:"price" json:"price"`
	ContractStartsAt  *time.Time          `db:"contract_starts_at" json:"contract_starts_at"`
	ExpiresAt         *time.Time          `db:"expires_at" json:"expires_at"`
	GraceDaysPeriod   int                 `db:"grace_days_period" json:"grace_days_period"`
	IsActive          bool                `db:"is_active" json:"is_active"`
	IsDeleted         bool                `db:"is_deleted" json:"is_deleted"`
	CreatedAt         time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at" json:"updated_at"`
}

type MembershipRole string

const (
	MembershipRoleOwner   MembershipRole = "OWNER"
	MembershipRoleAdmin   MembershipRole = "ADMIN"
	MembershipRoleMember  MembershipRole = "MEMBER"
	MembershipRoleBilling MembershipRole = "BILLING"
)

func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleOwner, MembershipRoleAdmin, MembershipRoleMember, MembershipRoleBilling:
		return true
	}
	return false
}

// Membership is the tenant level access grant of an account on a workspace.
type Membership struct {
	ID               string         `db:"id" json:"id"`
	WorkspaceID      string         `db:"workspace_id" json:"workspace_id"`
	AccountID        string         `db:"account_id" json:"account_id"`
	Role             MembershipRole `db:"role" json:"role"`
	CanManageBilling bool           `db:"can_manage_billing" json:"can_manage_billing"`
	IsActive         bool           `db:"is_active" json:"is_active"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

type WorkspaceRole string

const (
	WorkspaceRoleOwner      WorkspaceRole = "OWNER"
	WorkspaceRoleAdmin      WorkspaceRole = "ADMIN"
	WorkspaceRoleManager    WorkspaceRole = "MANAGER"
	WorkspaceRoleTechnician WorkspaceRole = "TECHNICIAN"
	WorkspaceRoleCustomer   WorkspaceRole = "CUSTOMER"
	WorkspaceRoleGuest      WorkspaceRole = "GUEST"
	WorkspaceRoleInvited    WorkspaceRole = "INVITED"
	WorkspaceRoleOnHold     WorkspaceRole = "ON_HOLD"
	WorkspaceRoleViewer     WorkspaceRole = "VIEWER"
)

// WorkspaceMember is the operational role of an account inside a workshop,
// separate from the tenant level Membership.
type WorkspaceMember struct {
	ID          string        `db:"id" json:"id"`
	WorkspaceID string        `db:"workspace_id" json:"workspace_id"`
	AccountID   string        `db:"account_id" json:"account_id"`
	Role        WorkspaceRole `db:"role" json:"role"`
	IsActive    bool          `db:"is_active" json:"is_active"`
	IsOwner     bool          `db:"is_owner" json:"is_owner"`
	IsAdmin     bool          `db:"is_admin" json:"is_admin"`
	InvitedBy   *string       `db:"invited_by" json:"invited_by"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

type SidebarScope string

const (
	SidebarScopeGlobal    SidebarScope = "GLOBAL"
	SidebarScopeWorkspace SidebarScope = "WORKSPACE"
	SidebarScopeModule    SidebarScope = "MODULE"
	SidebarScopeUser      SidebarScope = "USER"
)

type SidebarManifest struct {
	ID        string          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Scope     SidebarScope    `db:"scope" json:"scope"`
	Manifest  json.RawMessage `db:"manifest" json:"manifest,omitempty"`
	Version   string          `db:"version" json:"version"`
	Priority  int             `db:"priority" json:"priority"`
	IsActive  bool            `db:"is_active" json:"is_active"`
	Checksum  *string         `db:"checksum" json:"checksum,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
