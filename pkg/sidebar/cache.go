// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package sidebar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SrVladyslav/falquor-backend/internal/types"
)

const manifestCachePrefix = "sidebar:manifest:"

var _ CacheInterface = (*RedisCache)(nil)

// RedisCache keeps manifests keyed by name for ttl.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Get returns nil without error on a cache miss.
func (c *RedisCache) Get(ctx context.Context, name string) (*types.SidebarManifest, error) {
	data, err := c.client.Get(ctx, manifestCachePrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest cache: %w", err)
	}

	var m types.SidebarManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}

	return &m, nil
}

func (c *RedisCache) Set(ctx context.Context, manifest *types.SidebarManifest) error {
	data, err := json.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	return c.client.Set(ctx, manifestCachePrefix+manifest.Name, data, c.ttl).Err()
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}
