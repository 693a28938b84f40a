// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"testing"
)

func TestMigrateArgs(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "default"},
		{name: "up", args: []string{"up"}},
		{name: "down one", args: []string{"down"}},
		{name: "down to", args: []string{"down", "3"}},
		{name: "status", args: []string{"status"}},
		{name: "check", args: []string{"check"}},
		{name: "unknown command", args: []string{"redo"}, wantErr: true},
		{name: "version on up", args: []string{"up", "3"}, wantErr: true},
		{name: "negative version", args: []string{"down", "-1"}, wantErr: true},
		{name: "not a version", args: []string{"down", "latest"}, wantErr: true},
		{name: "too many", args: []string{"down", "1", "2"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := migrateArgs(migrateCmd, tc.args)
			if tc.wantErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewMigratorRequiresDSN(t *testing.T) {
	if _, _, err := newMigrator(t.Context(), "", "text", nil); err == nil {
		t.Fatal("expected an error without a DSN")
	}
}
