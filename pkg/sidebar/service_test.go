// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package sidebar

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"

	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/storage"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package sidebar -destination ./mock_sidebar.go -source=./interfaces.go

const manifestName = "DEFAULT_MANIFEST"

func newRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, time.Minute), mr
}

func newManifest() *types.SidebarManifest {
	return &types.SidebarManifest{
		ID:       "man-1",
		Name:     manifestName,
		Scope:    types.SidebarScopeGlobal,
		Manifest: json.RawMessage(`{"items":[{"id":"work-orders"}]}`),
		Version:  "1.0.0",
		Priority: 10,
		IsActive: true,
	}
}

func TestService_DefaultManifest(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedID  string
		expectedErr error
	}{
		{
			name: "found",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetManifestByName(gomock.Any(), manifestName).Return(newManifest(), nil)
			},
			expectedID: "man-1",
		},
		{
			name: "not installed",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetManifestByName(gomock.Any(), manifestName).Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetManifestByName(gomock.Any(), manifestName).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, nil, manifestName, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			m, err := s.DefaultManifest(context.Background())

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.expectedID == "" {
				if m != nil {
					t.Fatalf("expected no manifest, got %+v", m)
				}
				return
			}
			if m == nil || m.ID != tc.expectedID {
				t.Fatalf("expected manifest %s, got %+v", tc.expectedID, m)
			}
		})
	}
}

func TestService_DefaultManifestIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache, mr := newRedisCache(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetManifestByName(gomock.Any(), manifestName).Return(newManifest(), nil).Times(1)

	s := NewService(mockStorage, cache, manifestName, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	for i := 0; i < 3; i++ {
		m, err := s.DefaultManifest(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m == nil || m.ID != "man-1" || string(m.Manifest) != `{"items":[{"id":"work-orders"}]}` {
			t.Fatalf("unexpected manifest %+v", m)
		}
	}

	if !mr.Exists(manifestCachePrefix + manifestName) {
		t.Fatal("expected manifest to be cached")
	}
}

func TestService_DefaultManifestSurvivesCacheOutage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	cache := NewRedisCache(client, time.Minute)

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetManifestByName(gomock.Any(), manifestName).Return(newManifest(), nil)

	s := NewService(mockStorage, cache, manifestName, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	m, err := s.DefaultManifest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected manifest from storage")
	}
}

func TestRedisCacheExpires(t *testing.T) {
	cache, mr := newRedisCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, newManifest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	m, err := cache.Get(ctx, manifestName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Fatalf("expected expired entry, got %+v", m)
	}
}
