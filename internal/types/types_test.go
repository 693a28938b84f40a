// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBusinessKindWorkspaceType(t *testing.T) {
	testCases := []struct {
		kind     BusinessKind
		expected WorkspaceType
	}{
		{kind: BusinessKindMechanicWorkshop, expected: WorkspaceTypeMechanicalWorkshop},
		{kind: BusinessKindHoreca, expected: WorkspaceTypeHoreca},
		{kind: BusinessKind("bakery"), expected: WorkspaceTypeOther},
		{kind: BusinessKind(""), expected: WorkspaceTypeOther},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			if got := tc.kind.WorkspaceType(); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestWorkspaceBasePrice(t *testing.T) {
	price := func(v string) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.RequireFromString(v))
	}

	ws := &Workspace{
		Price: price("19.90"),
		Modules: []*WorkspaceModule{
			{Name: "warehouse", Price: price("5.00"), IsActive: true},
			{Name: "working_hours", Price: price("3.10"), IsActive: true},
			{Name: "expired", Price: price("100"), IsActive: false},
			{Name: "deleted", Price: price("100"), IsActive: true, IsDeleted: true},
			{Name: "free", IsActive: true},
			nil,
		},
	}

	if got := ws.BasePrice(); !got.Equal(decimal.RequireFromString("28.00")) {
		t.Errorf("expected base price 28.00, got %s", got)
	}

	if got := (&Workspace{}).BasePrice(); !got.IsZero() {
		t.Errorf("expected zero base price, got %s", got)
	}
}

func TestMechanicWorkshopIsBusiness(t *testing.T) {
	var b Business = &MechanicWorkshop{
		BusinessOrganization: BusinessOrganization{ID: "biz-1", BusinessName: "Natir Iberica"},
	}

	if b.Kind() != BusinessKindMechanicWorkshop {
		t.Errorf("unexpected kind %s", b.Kind())
	}
	if b.BusinessID() != "biz-1" || b.DisplayName() != "Natir Iberica" {
		t.Errorf("unexpected business identity %s %s", b.BusinessID(), b.DisplayName())
	}

	b.Organization().City = "Valencia"
	if b.(*MechanicWorkshop).City != "Valencia" {
		t.Error("expected Organization to expose the embedded record")
	}
}

func TestEnumValidation(t *testing.T) {
	if !MembershipRoleBilling.IsValid() || MembershipRole("ROOT").IsValid() {
		t.Error("unexpected membership role validation")
	}
	if !StageQA.IsValid() || WorkOrderStage("PAINT").IsValid() {
		t.Error("unexpected stage validation")
	}
	if !StatusOnHold.IsValid() || WorkOrderStatus("LOST").IsValid() {
		t.Error("unexpected status validation")
	}
	if !PriorityUrgent.IsValid() || WorkOrderPriority("MEH").IsValid() {
		t.Error("unexpected priority validation")
	}
}
