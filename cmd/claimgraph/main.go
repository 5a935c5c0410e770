// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the claimgraph CLI.
// Implements: prd001-ingestion, prd002-graph-store, prd003-lens-query,
//             prd004-structural-search, prd005-shell, prd006-export (CLI surface).
// See docs/ARCHITECTURE § Command Surface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the claimgraph CLI.
var rootCmd = &cobra.Command{
	Use:   "claimgraph",
	Short: "Query a claim graph distilled from research literature",
	Long: `claimgraph loads a citation-backed claim graph from CSV record sets and
answers structural queries over it: lens pattern search, neighbor and
bibliography lookups, and span/cospan search for convergent lines of
evidence.

Run a query as a subcommand for one-shot use, or start the interactive
shell with "claimgraph shell".`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./claimgraph.yaml or ~/.config/claimgraph/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding the CSV record sets (overrides config)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("claimgraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "claimgraph"))
		}
	}

	viper.SetEnvPrefix("CLAIMGRAPH")
	viper.AutomaticEnv()

	viper.SetDefault("data.dir", "data")
	viper.SetDefault("data.objects_file", "c_objects.csv")
	viper.SetDefault("data.morphisms_file", "c_morphisms.csv")
	viper.SetDefault("data.evidence_file", "c_evidence.csv")
	viper.SetDefault("data.papers_file", "papers.csv")
	viper.SetDefault("shell.prompt", "claimgraph> ")
	viper.SetDefault("shell.max_results", 0)
	viper.SetDefault("export.output_dir", "export")
	viper.SetDefault("export.format", "yaml")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
