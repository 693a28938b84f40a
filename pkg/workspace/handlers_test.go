// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/SrVladyslav/falquor-backend/internal/errs"
	"github.com/SrVladyslav/falquor-backend/internal/identity"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

func newTestRouter(svc ServiceInterface) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := r.Header.Get(identity.HeaderName); id != "" {
				r = r.WithContext(identity.WithAccountID(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	})
	NewAPI(svc, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

const provisionBody = `{
	"business": {"business_name": "Natir Iberica", "business_type": "workshop", "tax_id": "B-1", "email": "admin@natir.es"},
	"address": {"address": "C/ Bony 21", "city": "Valencia", "country": "Spain"},
	"addons": {"warehouse": true}
}`

func TestAPI_Provision(t *testing.T) {
	testCases := []struct {
		name           string
		caller         string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "created",
			caller: ownerID,
			body:   provisionBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Provision(gomock.Any(), ownerID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, req *ProvisionRequest) (*types.Workspace, error) {
						if req.Addons == nil || !req.Addons.Warehouse {
							t.Error("expected the warehouse add-on to be decoded")
						}
						return &types.Workspace{
							WID:           "Ab3dE6gH9jK1",
							WorkspaceType: types.WorkspaceTypeMechanicalWorkshop,
							Modules: []*types.WorkspaceModule{
								{Name: "warehouse", IsActive: true, Price: decimal.NewNullDecimal(decimal.RequireFromString("12.5"))},
							},
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "validation failure",
			caller: ownerID,
			body:   provisionBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Provision(gomock.Any(), ownerID, gomock.Any()).
					Return(nil, errs.NewValidationError("business_type", "spaceship", "unknown business type"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "not implemented",
			caller: ownerID,
			body:   provisionBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Provision(gomock.Any(), ownerID, gomock.Any()).
					Return(nil, errs.NotImplemented("provisioning of HORECA workspaces"))
			},
			expectedStatus: http.StatusNotImplemented,
		},
		{
			name:           "malformed body",
			caller:         ownerID,
			body:           `{"business":`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "anonymous",
			body:           provisionBody,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/workspaces", bytes.NewBufferString(tc.body))
			if tc.caller != "" {
				req.Header.Set(identity.HeaderName, tc.caller)
			}
			rr := httptest.NewRecorder()

			newTestRouter(mockSvc).ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}

			if tc.expectedStatus != http.StatusCreated {
				return
			}

			var resp struct {
				Data struct {
					WID       string `json:"wid"`
					BasePrice string `json:"base_price"`
				} `json:"data"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Data.WID != "Ab3dE6gH9jK1" {
				t.Fatalf("unexpected wid %q", resp.Data.WID)
			}
			if resp.Data.BasePrice != "12.5" {
				t.Fatalf("expected base price 12.5, got %q", resp.Data.BasePrice)
			}
		})
	}
}

func TestAPI_Get(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "member",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().IsMember(gomock.Any(), ownerID, "ws-1").Return(true, nil)
				mockSvc.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(&types.Workspace{WID: "ws-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not a member",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().IsMember(gomock.Any(), ownerID, "ws-1").Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "missing",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().IsMember(gomock.Any(), ownerID, "ws-1").Return(true, nil)
				mockSvc.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(nil, errs.NotFound("workspace ws-1"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/workspaces/ws-1", nil)
			req.Header.Set(identity.HeaderName, ownerID)
			rr := httptest.NewRecorder()

			newTestRouter(mockSvc).ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
