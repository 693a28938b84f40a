// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/SrVladyslav/falquor-backend/migrations"
)

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Run the embedded database migrations, up is the default command`,
	Args:  migrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command, version := "up", int64(-1)
		if len(args) > 0 {
			command = args[0]
		}
		if len(args) > 1 {
			version, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		format, _ := cmd.Flags().GetString("format")

		m, closeDB, err := newMigrator(cmd.Context(), dsn, format, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closeDB()

		return m.run(cmd.Context(), command, version)
	},
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid first argument: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("invalid argument combination: %q", args)
		}
		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

type migrator struct {
	provider *goose.Provider
	json     bool
	out      io.Writer
}

func newMigrator(ctx context.Context, dsn, format string, out io.Writer) (*migrator, func(), error) {
	if dsn == "" {
		return nil, nil, fmt.Errorf("no DSN given, pass --dsn or set DSN")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("DSN validation failed, shutting down, err: %v", err)
	}

	db := stdlib.OpenDB(*config)
	closeDB := func() { _ = db.Close() }

	if err := db.PingContext(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("DB connection failed, shutting down, err: %v", err)
	}

	m := &migrator{json: format == "json", out: out}

	var opts []goose.ProviderOption
	if m.json {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	m.provider, err = goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return m, closeDB, nil
}

func (m *migrator) run(ctx context.Context, command string, version int64) error {
	switch command {
	case "up":
		return m.applied(m.provider.Up(ctx))
	case "down":
		if version < 0 {
			result, err := m.provider.Down(ctx)
			if err != nil {
				return err
			}
			return m.applied([]*goose.MigrationResult{result}, nil)
		}
		return m.applied(m.provider.DownTo(ctx, version))
	case "status":
		return m.status(ctx)
	case "check":
		return m.check(ctx)
	}

	return fmt.Errorf("unknown migrate command %q", command)
}

func (m *migrator) encode(v any) error {
	return json.NewEncoder(m.out).Encode(v)
}

func (m *migrator) applied(results []*goose.MigrationResult, err error) error {
	if err != nil {
		return err
	}

	if m.json {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return m.encode(map[string]any{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintf(m.out, "%s %s (%s)\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
	return nil
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}
	if m.json {
		return m.encode(statuses)
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLIED_AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}
	return w.Flush()
}

func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if m.json {
		status := "ok"
		if pending {
			status = "pending"
		}
		return m.encode(map[string]any{"status": status, "version": current})
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	fmt.Fprintf(m.out, "Database is up to date (version %d)\n", current)
	return nil
}

func init() {
	migrateCmd.Flags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string, defaults to $DSN")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}
