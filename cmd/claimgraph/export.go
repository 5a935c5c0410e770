// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/claimgraph/internal/export"
	"github.com/pdiddy/claimgraph/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the loaded record sets to a snapshot file",
	Long: `Export writes the session's objects, morphisms, evidence, and papers to
a snapshot in the configured output directory. Formats: yaml, json, sqlite.
The snapshot is write-only; claimgraph always loads from the CSV records.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	cfg := sessionConfig().Export
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Format = types.ExportFormat(format)
	}
	if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
		cfg.OutputDir = dir
	}

	path, err := export.Write(context.Background(), s.dataset, cfg)
	if err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "", "snapshot format: yaml, json, or sqlite (overrides config)")
	exportCmd.Flags().String("output-dir", "", "snapshot directory (overrides config)")
	rootCmd.AddCommand(exportCmd)
}
