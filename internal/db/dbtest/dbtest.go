// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

// Package dbtest prepares a migrated PostgreSQL database for integration
// tests. Tests are skipped unless TEST_DSN is set.
package dbtest

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/SrVladyslav/falquor-backend/internal/db"
	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/migrations"
)

const dsnEnv = "TEST_DSN"

var tables = []string{
	"work_order_assignments",
	"work_orders",
	"customer_vehicles",
	"workspace_members",
	"memberships",
	"workspace_modules",
	"mechanic_workshops",
	"workspaces",
	"sidebar_manifests",
}

type Database struct {
	Client *db.DBClient
	// Raw bypasses the client, for seeding rows and asserting on them.
	Raw *sql.DB
}

// Open migrates the database behind TEST_DSN, empties every table and returns
// a client on top of it.
func Open(t *testing.T) *Database {
	t.Helper()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping integration test", dsnEnv)
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("invalid %s: %v", dsnEnv, err)
	}

	raw := stdlib.OpenDB(*config)
	t.Cleanup(func() { _ = raw.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	provider, err := goose.NewProvider(goose.DialectPostgres, raw, migrations.EmbedMigrations, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		t.Fatalf("failed to create goose provider: %v", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	for _, table := range tables {
		if _, err := raw.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}

	client, err := db.NewDBClient(
		db.Config{
			DSN:             dsn,
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: time.Minute,
			MaxConnIdleTime: time.Minute,
		},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test"),
		logging.NewNoopLogger(),
	)
	if err != nil {
		t.Fatalf("failed to open db client: %v", err)
	}
	t.Cleanup(client.Close)

	return &Database{Client: client, Raw: raw}
}

// Count returns the number of rows in table matching the optional where
// clause.
func (d *Database) Count(t *testing.T, table, where string, args ...interface{}) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	if err := d.Raw.QueryRowContext(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}

// Exec runs a seeding statement and fails the test on error.
func (d *Database) Exec(t *testing.T, query string, args ...interface{}) {
	t.Helper()

	if _, err := d.Raw.ExecContext(context.Background(), query, args...); err != nil {
		t.Fatalf("failed to exec %q: %v", query, err)
	}
}
