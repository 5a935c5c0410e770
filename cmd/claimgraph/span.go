// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var spanCmd = &cobra.Command{
	Use:   "span SOURCE FOOT FOOT",
	Short: "Find diverging spans from a source object",
	Long: `Span finds source objects with evidence edges to two feet. Each argument
is an object name or * for any object. Pairs of feet are reported once;
with one concrete foot the equal-feet pair is excluded.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		spans, err := s.store.FindCospans(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		s.renderer().WriteSpans(os.Stdout, spans)
		return nil
	},
}

var squareCmd = &cobra.Command{
	Use:   "square SOURCE FOOT FOOT",
	Short: "Extend spans one hop and split into completed squares and synthesis opportunities",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		conts, err := s.store.FindCospanContinuations(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		s.renderer().WriteContinuations(os.Stdout, conts)
		return nil
	},
}

var pullbackCmd = &cobra.Command{
	Use:   "pullback FOOT FOOT TARGET",
	Short: "Find common predecessors of two objects converging on a target",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		cands, err := s.store.FindPullbackCandidates(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		s.renderer().WritePullbacks(os.Stdout, cands)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(spanCmd, squareCmd, pullbackCmd)
}
