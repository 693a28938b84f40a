// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	TracingSampleRatio float64 `envconfig:"tracing_sample_ratio" default:"1"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// Redis is optional, an empty address disables the manifest cache
	RedisAddr        string        `envconfig:"redis_addr" default:""`
	RedisPassword    string        `envconfig:"redis_password" default:""`
	RedisDB          int           `envconfig:"redis_db" default:"0"`
	ManifestCacheTTL time.Duration `envconfig:"manifest_cache_ttl" default:"5m"`

	DefaultManifestName string `envconfig:"default_manifest_name" default:"DEFAULT_MANIFEST"`
	DefaultTimeZone     string `envconfig:"default_time_zone" default:"Europe/Madrid"`

	AllowedOrigins []string `envconfig:"allowed_origins" default:"*"`
}
