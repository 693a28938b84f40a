// Copyright 2026 SrVladyslav
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SrVladyslav/falquor-backend/internal/logging"
	"github.com/SrVladyslav/falquor-backend/internal/monitoring"
	"github.com/SrVladyslav/falquor-backend/internal/tracing"
	"github.com/SrVladyslav/falquor-backend/pkg/workspace"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage workspaces directly against the database",
}

var provisionWorkspaceCmd = &cobra.Command{
	Use:   "provision [payload.json]",
	Short: "Provision a workspace from a JSON payload, - reads stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		accountID, _ := cmd.Flags().GetString("account-id")

		req, err := readProvisionRequest(cmd, args[0])
		if err != nil {
			return err
		}

		a, err := newAdminApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ws, err := a.workspaces.Provision(cmd.Context(), accountID, req)
		if err != nil {
			return fmt.Errorf("failed to provision workspace: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Workspace provisioned: %s (%s %s)\n", ws.WID, ws.MainBusinessKind, ws.MainBusinessID)
		return nil
	},
}

var getWorkspaceCmd = &cobra.Command{
	Use:   "get [wid]",
	Short: "Show a workspace and its modules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAdminApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ws, err := a.workspaces.GetWorkspace(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get workspace: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "WID\tSHORT_NAME\tTIME_ZONE\tACTIVE\tBASE_PRICE")
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", ws.WID, ws.ShortName, ws.TimeZone, ws.IsActive, ws.BasePrice().StringFixed(2))
		fmt.Fprintln(w)
		fmt.Fprintln(w, "MODULE\tACTIVE\tPRICE")
		for _, m := range ws.Modules {
			fmt.Fprintf(w, "%s\t%v\t%s\n", m.Name, m.IsActive, m.Price.Decimal.StringFixed(2))
		}
		return w.Flush()
	},
}

func readProvisionRequest(cmd *cobra.Command, path string) (*workspace.ProvisionRequest, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open payload: %w", err)
		}
		defer f.Close()
		r = f
	}

	req := new(workspace.ProvisionRequest)
	if err := json.NewDecoder(r).Decode(req); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return req, nil
}

func newAdminApp() (*app, error) {
	specs := loadSpecs()
	logger := logging.NewLogger(specs.LogLevel)

	return newApp(specs, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("falquor-backend"), logger)
}

func init() {
	provisionWorkspaceCmd.Flags().String("account-id", "", "Account that will own the workspace")
	_ = provisionWorkspaceCmd.MarkFlagRequired("account-id")

	workspaceCmd.AddCommand(provisionWorkspaceCmd)
	workspaceCmd.AddCommand(getWorkspaceCmd)
	rootCmd.AddCommand(workspaceCmd)
}
