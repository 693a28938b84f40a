// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package business

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/storage"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package business -destination ./mock_business.go -source=./interfaces.go

func TestNormalizeBusinessType(t *testing.T) {
	testCases := []struct {
		raw      string
		expected types.WorkspaceType
	}{
		{raw: "workshop", expected: types.WorkspaceTypeMechanicalWorkshop},
		{raw: "mechanical_workshop", expected: types.WorkspaceTypeMechanicalWorkshop},
		{raw: "  Mechanic_Workshop ", expected: types.WorkspaceTypeMechanicalWorkshop},
		{raw: "Mechanical Workshop", expected: types.WorkspaceTypeMechanicalWorkshop},
		{raw: "HORECA", expected: types.WorkspaceTypeHoreca},
		{raw: "restaurant", expected: types.WorkspaceTypeHoreca},
		{raw: "bar", expected: types.WorkspaceTypeHoreca},
		{raw: "cafe", expected: types.WorkspaceTypeHoreca},
		{raw: "other", expected: types.WorkspaceTypeOther},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := NormalizeBusinessType(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestNormalizeBusinessTypeUnknown(t *testing.T) {
	for _, raw := range []string{"spaceship", "", "mechanical_hanical_workshop"} {
		_, err := NormalizeBusinessType(raw)
		if !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", raw, err)
		}

		var vErr *errs.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "business_type" || vErr.Value != raw {
			t.Fatalf("expected error naming %q, got %v", raw, err)
		}
	}
}

func TestClassifyAndBind(t *testing.T) {
	if got := Classify(nil); got != types.WorkspaceTypeOther {
		t.Fatalf("expected OTHER for nil business, got %s", got)
	}

	m := &types.MechanicWorkshop{BusinessOrganization: types.BusinessOrganization{ID: "biz-1"}}
	w := &types.Workspace{WorkspaceType: types.WorkspaceTypeHoreca}

	Bind(w, m)

	if w.WorkspaceType != types.WorkspaceTypeMechanicalWorkshop {
		t.Fatalf("expected derived type, got %s", w.WorkspaceType)
	}
	if w.MainBusinessKind != types.BusinessKindMechanicWorkshop || w.MainBusinessID != "biz-1" {
		t.Fatalf("unexpected binding %s/%s", w.MainBusinessKind, w.MainBusinessID)
	}

	Bind(w, nil)

	if w.HasBusiness() || w.WorkspaceType != types.WorkspaceTypeOther {
		t.Fatalf("expected unbound workspace, got %+v", w)
	}
}

func TestResolverResolve(t *testing.T) {
	workshop := &types.MechanicWorkshop{BusinessOrganization: types.BusinessOrganization{ID: "biz-1", BusinessName: "Taller Pepe"}}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		kind        types.BusinessKind
		id          string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "mechanic workshop",
			kind: types.BusinessKindMechanicWorkshop,
			id:   "biz-1",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMechanicWorkshop(gomock.Any(), "biz-1").Return(workshop, nil)
			},
		},
		{
			name: "missing record",
			kind: types.BusinessKindMechanicWorkshop,
			id:   "biz-2",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMechanicWorkshop(gomock.Any(), "biz-2").Return(nil, storage.ErrNotFound)
			},
			expectedErr: errs.ErrNotFound,
		},
		{
			name:        "missing id",
			kind:        types.BusinessKindMechanicWorkshop,
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: errs.ErrNotFound,
		},
		{
			name: "storage error",
			kind: types.BusinessKindMechanicWorkshop,
			id:   "biz-1",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMechanicWorkshop(gomock.Any(), "biz-1").Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
		{
			name:        "horeca",
			kind:        types.BusinessKindHoreca,
			id:          "biz-1",
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: errs.ErrNotImplemented,
		},
		{
			name:        "unregistered kind",
			kind:        types.BusinessKind("django.contenttype.42"),
			id:          "biz-1",
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: errs.ErrConfiguration,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			r := NewResolver(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			b, err := r.Resolve(context.Background(), tc.kind, tc.id)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				if errors.Is(err, errs.ErrNotFound) && errors.Is(err, errs.ErrConfiguration) {
					t.Fatalf("not found and configuration errors must stay distinct: %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Kind() != types.BusinessKindMechanicWorkshop || b.DisplayName() != "Taller Pepe" {
				t.Fatalf("unexpected business %+v", b)
			}
			if Classify(b) != types.WorkspaceTypeMechanicalWorkshop {
				t.Fatalf("resolved business must classify as mechanical workshop")
			}
		})
	}
}
