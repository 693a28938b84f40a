// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package membership

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

//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_membership.go -source=./interfaces.go

const (
	accountID = "0190a6f6-0000-7000-8000-0000000000a1"
	otherID   = "0190a6f6-0000-7000-8000-0000000000a2"
)

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxCheckerInterface(ctrl)
	mockTx.EXPECT().InTx(gomock.Any()).Return(false).AnyTimes()

	return NewService(mockStorage, mockTx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()), mockStorage
}

func TestService_Grant(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name            string
		workspaceID     string
		accountID       string
		role            types.MembershipRole
		setupMocks      func(*MockStorageInterface)
		expectedCreated bool
		expectedErr     error
	}{
		{
			name:        "new grant",
			workspaceID: "ws-1",
			accountID:   accountID,
			role:        types.MembershipRoleOwner,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().
					UpsertMembership(gomock.Any(), &types.Membership{
						WorkspaceID:      "ws-1",
						AccountID:        accountID,
						Role:             types.MembershipRoleOwner,
						CanManageBilling: true,
						IsActive:         true,
					}).
					Return(&types.Membership{ID: "m-1", WorkspaceID: "ws-1", AccountID: accountID, Role: types.MembershipRoleOwner, IsActive: true}, true, nil)
			},
			expectedCreated: true,
		},
		{
			name:        "existing grant is updated",
			workspaceID: "ws-1",
			accountID:   accountID,
			role:        types.MembershipRoleOwner,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpsertMembership(gomock.Any(), gomock.Any()).
					Return(&types.Membership{ID: "m-1", Role: types.MembershipRoleOwner, IsActive: true}, false, nil)
			},
			expectedCreated: false,
		},
		{
			name:        "unknown role",
			workspaceID: "ws-1",
			accountID:   accountID,
			role:        types.MembershipRole("SUPERUSER"),
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: errs.ErrValidation,
		},
		{
			name:        "missing account",
			workspaceID: "ws-1",
			role:        types.MembershipRoleMember,
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: errs.ErrValidation,
		},
		{
			name:        "unknown workspace",
			workspaceID: "ws-404",
			accountID:   accountID,
			role:        types.MembershipRoleMember,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpsertMembership(gomock.Any(), gomock.Any()).Return(nil, false, storage.ErrForeignKeyViolation)
			},
			expectedErr: errs.ErrNotFound,
		},
		{
			name:        "storage error",
			workspaceID: "ws-1",
			accountID:   accountID,
			role:        types.MembershipRoleMember,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpsertMembership(gomock.Any(), gomock.Any()).Return(nil, false, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl)
			tc.setupMocks(mockStorage)

			m, created, err := s.Grant(context.Background(), tc.workspaceID, tc.accountID, tc.role, tc.role == types.MembershipRoleOwner)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created != tc.expectedCreated {
				t.Fatalf("expected created %v, got %v", tc.expectedCreated, created)
			}
			if !m.IsActive {
				t.Fatal("expected an active membership")
			}
		})
	}
}

func TestService_IsMemberWithRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage := newTestService(ctrl)

	mockStorage.EXPECT().IsMemberWithRole(gomock.Any(), accountID, "ws-1", AdminRoles).Return(true, nil)
	mockStorage.EXPECT().IsMember(gomock.Any(), otherID, "ws-1").Return(false, nil)

	ok, err := s.IsMemberWithRole(context.Background(), accountID, "ws-1", AdminRoles)
	if err != nil || !ok {
		t.Fatalf("expected admin membership, got %v, %v", ok, err)
	}

	ok, err = s.IsMember(context.Background(), otherID, "ws-1")
	if err != nil || ok {
		t.Fatalf("expected no membership, got %v, %v", ok, err)
	}
}

func TestService_ListAdministered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage := newTestService(ctrl)

	expected := []*types.Workspace{{WID: "ws-1"}, {WID: "ws-2"}}
	mockStorage.EXPECT().ListAdministeredWorkspaces(gomock.Any(), accountID).Return(expected, nil)

	workspaces, err := s.ListAdministered(context.Background(), accountID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(workspaces) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(workspaces))
	}
}

func TestService_Revoke(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeactivateMembership(gomock.Any(), "ws-1", accountID).Return(nil)
				mockStorage.EXPECT().HasActiveMembership(gomock.Any(), "ws-1").Return(true, nil)
			},
		},
		{
			name: "last member",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeactivateMembership(gomock.Any(), "ws-1", accountID).Return(nil)
				mockStorage.EXPECT().HasActiveMembership(gomock.Any(), "ws-1").Return(false, nil)
			},
		},
		{
			name: "remaining members unknown",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeactivateMembership(gomock.Any(), "ws-1", accountID).Return(nil)
				mockStorage.EXPECT().HasActiveMembership(gomock.Any(), "ws-1").Return(false, errors.New("connection reset"))
			},
		},
		{
			name: "no such membership",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeactivateMembership(gomock.Any(), "ws-1", accountID).Return(storage.ErrNotFound)
			},
			expectedErr: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl)
			tc.setupMocks(mockStorage)

			err := s.Revoke(context.Background(), "ws-1", accountID)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_GrantAuditEvent(t *testing.T) {
	testCases := []struct {
		name           string
		inTx           bool
		expectedEvents int
	}{
		{name: "own transaction", expectedEvents: 1},
		{name: "caller transaction", inTx: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxCheckerInterface(ctrl)
			logger, logs := logging.NewObservedLogger()

			mockStorage.EXPECT().UpsertMembership(gomock.Any(), gomock.Any()).Return(&types.Membership{ID: "m-1", IsActive: true}, true, nil)
			mockTx.EXPECT().InTx(gomock.Any()).Return(tc.inTx)

			s := NewService(mockStorage, mockTx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logger)

			if _, _, err := s.Grant(context.Background(), "ws-1", accountID, types.MembershipRoleAdmin, false); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := logs.FilterMessage("membership granted").Len(); got != tc.expectedEvents {
				t.Fatalf("expected %d grant events, got %d", tc.expectedEvents, got)
			}
		})
	}
}

func TestService_RejectsMalformedAccountID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no storage call is expected, the id never reaches the uuid column
	s, _ := newTestService(ctrl)

	_, _, err := s.Grant(context.Background(), "ws-1", "not-a-uuid", types.MembershipRoleMember, false)
	assertAccountIDValidation(t, err)

	err = s.Revoke(context.Background(), "ws-1", "not-a-uuid")
	assertAccountIDValidation(t, err)
}

func assertAccountIDValidation(t *testing.T, err error) {
	t.Helper()

	var vErr *errs.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "account_id" {
		t.Fatalf("expected a validation error on account_id, got %v", err)
	}
}
