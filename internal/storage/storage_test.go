// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SrVladyslav/falquor-backend/internal/db"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")

	return NewStorage(db.NewDBClientFromDB(conn, tracer, monitor, logger), tracer, monitor, logger), mock
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

func TestCreateWorkspaceDerivesTypeAndRetriesCollidingWID(t *testing.T) {
	s, mock := newTestStorage(t)

	wids := []string{"AAAAAAAAAAAA", "BBBBBBBBBBBB"}
	s.newWID = func() (string, error) {
		wid := wids[0]
		wids = wids[1:]
		return wid, nil
	}

	now := time.Now()
	insert := q("INSERT INTO workspaces") + ".*" + q("ON CONFLICT (wid) DO NOTHING RETURNING created_at, updated_at")

	mock.ExpectQuery(insert).
		WithArgs("AAAAAAAAAAAA", "Taller Pepe", "MECHANICAL_WORKSHOP", "mechanic_workshop", "biz-1",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))
	mock.ExpectQuery(insert).
		WithArgs("BBBBBBBBBBBB", "Taller Pepe", "MECHANICAL_WORKSHOP", "mechanic_workshop", "biz-1",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	w, err := s.CreateWorkspace(context.Background(), &types.Workspace{
		ShortName:        "Taller Pepe",
		WorkspaceType:    types.WorkspaceTypeHoreca,
		MainBusinessKind: types.BusinessKindMechanicWorkshop,
		MainBusinessID:   "biz-1",
		TimeZone:         "Europe/Madrid",
		IsActive:         true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.WID != "BBBBBBBBBBBB" {
		t.Fatalf("expected second wid, got %s", w.WID)
	}
	if w.WorkspaceType != types.WorkspaceTypeMechanicalWorkshop {
		t.Fatalf("expected derived workspace type, got %s", w.WorkspaceType)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateWorkspaceGivesUpAfterMaxAttempts(t *testing.T) {
	s, mock := newTestStorage(t)
	s.newWID = func() (string, error) { return "CCCCCCCCCCCC", nil }

	for i := 0; i < widMaxAttempts; i++ {
		mock.ExpectQuery(q("INSERT INTO workspaces")).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))
	}

	_, err := s.CreateWorkspace(context.Background(), &types.Workspace{ShortName: "x"})
	if !errors.Is(err, ErrWIDExhausted) {
		t.Fatalf("expected ErrWIDExhausted, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateWorkspaceDuplicateBusinessBinding(t *testing.T) {
	s, mock := newTestStorage(t)
	s.newWID = func() (string, error) { return "DDDDDDDDDDDD", nil }

	mock.ExpectQuery(q("INSERT INTO workspaces")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "workspaces_main_business_unique"})

	_, err := s.CreateWorkspace(context.Background(), &types.Workspace{
		ShortName:        "x",
		MainBusinessKind: types.BusinessKindMechanicWorkshop,
		MainBusinessID:   "biz-1",
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestUpsertMembership(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "workspace_id", "account_id", "role", "can_manage_billing", "is_active", "created_at", "updated_at", "created"}

	testCases := []struct {
		name    string
		created bool
	}{
		{name: "new row", created: true},
		{name: "existing row", created: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)

			mock.ExpectQuery(q("INSERT INTO memberships") + ".*" + q("ON CONFLICT (workspace_id, account_id) DO UPDATE SET")).
				WithArgs(sqlmock.AnyArg(), "ws-1", "acc-1", "ADMIN", false, true).
				WillReturnRows(sqlmock.NewRows(columns).AddRow("m-1", "ws-1", "acc-1", "ADMIN", false, true, now, now, tc.created))

			m, created, err := s.UpsertMembership(context.Background(), &types.Membership{
				WorkspaceID: "ws-1",
				AccountID:   "acc-1",
				Role:        types.MembershipRoleAdmin,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if created != tc.created {
				t.Fatalf("expected created %v, got %v", tc.created, created)
			}
			if m.Role != types.MembershipRoleAdmin || !m.IsActive {
				t.Fatalf("unexpected membership %+v", m)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestIsMemberWithRole(t *testing.T) {
	testCases := []struct {
		name       string
		roles      []types.MembershipRole
		setupMocks func(sqlmock.Sqlmock)
		expected   bool
	}{
		{
			name:       "no roles",
			roles:      nil,
			setupMocks: func(sqlmock.Sqlmock) {},
			expected:   false,
		},
		{
			name:  "matching role",
			roles: []types.MembershipRole{types.MembershipRoleOwner, types.MembershipRoleAdmin},
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q("SELECT EXISTS ( SELECT 1 FROM memberships WHERE")).
					WithArgs("acc-1", true, "OWNER", "ADMIN", "ws-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tc.setupMocks(mock)

			ok, err := s.IsMemberWithRole(context.Background(), "acc-1", "ws-1", tc.roles)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, ok)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestDeactivateMembershipNotFound(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(q("UPDATE memberships SET is_active = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeactivateMembership(context.Background(), "ws-1", "acc-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetWorkspaceManifest(t *testing.T) {
	testCases := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "manifest exists", affected: 1, expected: true},
		{name: "manifest deleted concurrently", affected: 0, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)

			mock.ExpectExec(q("UPDATE workspaces SET sidebar_manifest_id = $1, updated_at = NOW() WHERE wid = $2 AND EXISTS (SELECT 1 FROM sidebar_manifests WHERE id = $3 FOR KEY SHARE)")).
				WithArgs("man-1", "ws-1", "man-1").
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			attached, err := s.SetWorkspaceManifest(context.Background(), "ws-1", "man-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if attached != tc.expected {
				t.Fatalf("expected attached=%v, got %v", tc.expected, attached)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestLockWorkshopMissing(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(q("SELECT id FROM mechanic_workshops WHERE id = $1 FOR UPDATE")).
		WithArgs("w-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if err := s.LockWorkshop(context.Background(), "w-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLockWorkOrdersAndMax(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(q("SELECT id FROM work_orders WHERE workshop_id = $1 FOR UPDATE")).
		WithArgs("w-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("o-1").AddRow("o-2"))
	mock.ExpectQuery(q("SELECT COALESCE(MAX(workshop_number), 0) FROM work_orders WHERE workshop_id = $1")).
		WithArgs("w-1").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(7)))

	ctx := context.Background()
	if err := s.LockWorkOrders(ctx, "w-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := s.MaxWorkshopNumber(ctx, "w-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Fatalf("expected 7, got %d", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateWorkOrder(t *testing.T) {
	number := int64(3)

	testCases := []struct {
		name       string
		order      *types.WorkOrder
		setupMocks func(sqlmock.Sqlmock)
		expected   error
	}{
		{
			name:       "missing number",
			order:      &types.WorkOrder{WorkshopID: "w-1"},
			setupMocks: func(sqlmock.Sqlmock) {},
		},
		{
			name:  "duplicate number",
			order: &types.WorkOrder{WorkshopID: "w-1", WorkshopNumber: &number},
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q("INSERT INTO work_orders")).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "work_orders_workshop_number_unique"})
			},
			expected: ErrDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tc.setupMocks(mock)

			_, err := s.CreateWorkOrder(context.Background(), tc.order)
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.expected != nil && !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestCloseAssignmentAlreadyClosed(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(q("UPDATE work_order_assignments SET ended_at = $1") + ".*" + q("ended_at IS NULL")).
		WillReturnRows(sqlmock.NewRows(assignmentColumns))

	_, err := s.CloseAssignment(context.Background(), "a-1", time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAssignmentsByWorkOrder(t *testing.T) {
	s, mock := newTestStorage(t)

	started := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(q("FROM work_order_assignments WHERE work_order_id = $1")).
		WithArgs("o-1").
		WillReturnRows(sqlmock.NewRows(assignmentColumns).
			AddRow("a-1", "o-1", "t-1", started, nil, nil, "", "", started, started).
			AddRow("a-2", "o-1", nil, nil, nil, "25.50", "", "", started, started))

	assignments, err := s.ListAssignmentsByWorkOrder(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(assignments))
	}
	if assignments[0].AssigneeID == nil || *assignments[0].AssigneeID != "t-1" || assignments[0].EndedAt != nil {
		t.Fatalf("unexpected first assignment %+v", assignments[0])
	}
	if assignments[1].AssigneeID != nil || assignments[1].StartedAt != nil {
		t.Fatalf("unexpected second assignment %+v", assignments[1])
	}
	if !assignments[1].PricePerHour.Valid || assignments[1].PricePerHour.Decimal.String() != "25.5" {
		t.Fatalf("unexpected price %v", assignments[1].PricePerHour)
	}
}

func TestGetManifestByName(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	mock.ExpectQuery(q("FROM sidebar_manifests WHERE") + ".*" + q("ORDER BY priority DESC, created_at DESC LIMIT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "scope", "manifest", "version", "priority", "is_active", "checksum", "created_at"}).
			AddRow("man-1", "DEFAULT_MANIFEST", "GLOBAL", []byte(`{"items":[]}`), "1.0.0", 10, true, nil, now))

	m, err := s.GetManifestByName(context.Background(), "DEFAULT_MANIFEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.ID != "man-1" || string(m.Manifest) != `{"items":[]}` {
		t.Fatalf("unexpected manifest %+v", m)
	}
}
