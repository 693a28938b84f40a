// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
)

func TestHTTPMiddleware(t *testing.T) {
	const account = "0190a6f6-6b1e-7c1a-9d55-2d6b3a3f0c11"

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "valid account", header: account, expectedStatus: http.StatusOK},
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "not-a-uuid", expectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = AccountID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/me/workspaces", nil)
			if tc.header != "" {
				req.Header.Set(HeaderName, tc.header)
			}
			rec := httptest.NewRecorder()

			m.HTTPMiddleware(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected %d, got %d", tc.expectedStatus, rec.Code)
			}
			if tc.expectedStatus == http.StatusOK && seen != account {
				t.Fatalf("expected account %s in context, got %q", account, seen)
			}
		})
	}
}

func TestRequireAccountID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := RequireAccountID(rec, req); ok {
		t.Fatal("expected missing account id")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	req = req.WithContext(WithAccountID(req.Context(), "acc-1"))
	id, ok := RequireAccountID(httptest.NewRecorder(), req)
	if !ok || id != "acc-1" {
		t.Fatalf("expected acc-1, got %q", id)
	}
}
