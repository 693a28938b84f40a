// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessKind is the stable type tag stored next to a workspace business id.
type BusinessKind string

const (
	BusinessKindMechanicWorkshop BusinessKind = "mechanic_workshop"
	BusinessKindHoreca           BusinessKind = "horeca"
)

// WorkspaceType maps a kind onto the workspace classification. Unknown kinds
// classify as OTHER.
func (k BusinessKind) WorkspaceType() WorkspaceType {
	switch k {
	case BusinessKindMechanicWorkshop:
		return WorkspaceTypeMechanicalWorkshop
	case BusinessKindHoreca:
		return WorkspaceTypeHoreca
	default:
		return WorkspaceTypeOther
	}
}

// Business is the closed set of concrete records a workspace can bind to.
// Only types in this package can implement it.
type Business interface {
	BusinessID() string
	Kind() BusinessKind
	DisplayName() string
	Organization() *BusinessOrganization

	isBusiness()
}

// BusinessOrganization carries the attributes shared by every business kind.
type BusinessOrganization struct {
	ID           string    `db:"id" json:"id"`
	WorkspaceID  *string   `db:"workspace_id" json:"workspace_id"`
	BusinessName string    `db:"business_name" json:"business_name"`
	Description  string    `db:"description" json:"description"`
	TaxID        string    `db:"tax_id" json:"tax_id"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	Fax          string    `db:"fax" json:"fax"`
	Website      string    `db:"website" json:"website"`
	Address      string    `db:"address" json:"address"`
	Street       string    `db:"street" json:"street"`
	PostalCode   string    `db:"postal_code" json:"postal_code"`
	City         string    `db:"city" json:"city"`
	State        string    `db:"state" json:"state"`
	Country      string    `db:"country" json:"country"`
	TimeZone     string    `db:"time_zone" json:"time_zone"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	IsSuspended  bool      `db:"is_suspended" json:"is_suspended"`
	IsDeleted    bool      `db:"is_deleted" json:"is_deleted"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type MechanicWorkshop struct {
	BusinessOrganization

	HasTowingService bool                `db:"has_towing_service" json:"has_towing_service"`
	HasCarService    bool                `db:"has_car_service" json:"has_car_service"`
	Latitude         decimal.NullDecimal `db:"latitude" json:"latitude"`
	Longitude        decimal.NullDecimal `db:"longitude" json:"longitude"`
}

var _ Business = (*MechanicWorkshop)(nil)

func (m *MechanicWorkshop) BusinessID() string {
	return m.ID
}

func (m *MechanicWorkshop) Kind() BusinessKind {
	return BusinessKindMechanicWorkshop
}

func (m *MechanicWorkshop) DisplayName() string {
	return m.BusinessName
}

func (m *MechanicWorkshop) Organization() *BusinessOrganization {
	return &m.BusinessOrganization
}

func (m *MechanicWorkshop) isBusiness() {}
