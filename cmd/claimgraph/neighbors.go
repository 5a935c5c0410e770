// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/claimgraph/internal/graph"
)

var fromCmd = &cobra.Command{
	Use:   "from OBJECT",
	Short: "List outgoing connections of an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNeighbors(args[0], func(s *session) ([]int, error) {
			return s.store.ConnectionsFrom(args[0])
		})
	},
}

var toCmd = &cobra.Command{
	Use:   "to OBJECT",
	Short: "List incoming connections of an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNeighbors(args[0], func(s *session) ([]int, error) {
			return s.store.ConnectionsTo(args[0])
		})
	},
}

func runNeighbors(name string, query func(*session) ([]int, error)) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	edges, err := query(s)
	if err != nil {
		return err
	}
	s.renderer().WriteEdges(os.Stdout, edges)
	return nil
}

var papersCmd = &cobra.Command{
	Use:   "papers OBJECT",
	Short: "List papers citing evidence that touches an object",
	Args:  cobra.ExactArgs(1),
	RunE:  runPapers,
}

func runPapers(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	keys, err := s.store.PapersFor(args[0])
	if errors.Is(err, graph.ErrNoEvidence) {
		fmt.Printf("No recorded evidence touches %q.\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}
	s.renderer().WritePapers(os.Stdout, keys)
	return nil
}

func init() {
	rootCmd.AddCommand(fromCmd, toCmd, papersCmd)
}
