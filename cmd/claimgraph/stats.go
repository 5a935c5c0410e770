// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print session counts for the loaded claim graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		s.renderer().WriteStats(os.Stdout, len(s.warnings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
