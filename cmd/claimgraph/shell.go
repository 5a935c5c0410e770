// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/claimgraph/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive query shell",
	Long: `Shell loads the claim graph and reads commands from standard input.
Type "help" inside the shell for the command list.`,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	sh := shell.New(s.store, s.cat, s.papers, sessionConfig().Shell, len(s.warnings), os.Stdin, os.Stdout)
	return sh.Run()
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
