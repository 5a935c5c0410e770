// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/claimgraph/internal/graph"
)

var lensCmd = &cobra.Command{
	Use:   "lens OBJECT [<relation>] OBJECT ...",
	Short: "Search for evidence paths matching a lens pattern",
	Long: `Lens searches the claim graph for paths matching an alternating pattern
of object and relation specifiers. Object tokens are names, types (Theory,
Phenomenon, Method, Concept), or *; relation tokens are <label> or <*>.
Consecutive object tokens are joined by implicit wildcard relations.

Examples:
  claimgraph lens "Predictive Coding" "<uses>" Method
  claimgraph lens Theory Phenomenon`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLens,
}

func runLens(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	pat, err := graph.ParsePattern(args)
	if err != nil {
		return err
	}
	s.renderer().WritePaths(os.Stdout, s.store.FindLenses(s.cat, pat))
	return nil
}

func init() {
	rootCmd.AddCommand(lensCmd)
}
