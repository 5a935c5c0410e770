// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/claimgraph/internal/export"
	"github.com/pdiddy/claimgraph/internal/graph"
	"github.com/pdiddy/claimgraph/internal/records"
	"github.com/pdiddy/claimgraph/internal/shell"
	"github.com/pdiddy/claimgraph/pkg/types"
)

// sessionConfig assembles the effective configuration from viper (config
// file, environment, defaults) and persistent flags.
func sessionConfig() types.SessionConfig {
	cfg := types.SessionConfig{
		Data: types.DataConfig{
			DataDir:       viper.GetString("data.dir"),
			ObjectsFile:   viper.GetString("data.objects_file"),
			MorphismsFile: viper.GetString("data.morphisms_file"),
			EvidenceFile:  viper.GetString("data.evidence_file"),
			PapersFile:    viper.GetString("data.papers_file"),
		},
		Shell: types.ShellConfig{
			Prompt:     viper.GetString("shell.prompt"),
			MaxResults: viper.GetInt("shell.max_results"),
		},
		Export: types.ExportConfig{
			OutputDir: viper.GetString("export.output_dir"),
			Format:    types.ExportFormat(viper.GetString("export.format")),
		},
	}
	if dir, _ := rootCmd.PersistentFlags().GetString("data-dir"); dir != "" {
		cfg.Data.DataDir = dir
	}
	return cfg
}

// session is a fully loaded claim graph ready for querying.
type session struct {
	store    *graph.Store
	cat      *graph.Catalog
	papers   map[string]types.Paper
	dataset  export.Dataset
	warnings []graph.Warning
}

// loadSession reads the four CSV record sets, builds the graph store, and
// reports dropped evidence rows on stderr. A missing papers file is not
// fatal; queries then render bare citation keys.
func loadSession() (*session, error) {
	cfg := sessionConfig().Data

	objects, err := records.LoadObjects(filepath.Join(cfg.DataDir, cfg.ObjectsFile))
	if err != nil {
		return nil, err
	}
	morphisms, err := records.LoadMorphisms(filepath.Join(cfg.DataDir, cfg.MorphismsFile))
	if err != nil {
		return nil, err
	}
	evidence, err := records.LoadEvidence(filepath.Join(cfg.DataDir, cfg.EvidenceFile))
	if err != nil {
		return nil, err
	}
	papers, err := records.LoadPapers(filepath.Join(cfg.DataDir, cfg.PapersFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Note: no bibliography loaded (%v)\n", err)
		papers = nil
	}

	store, warnings := graph.Build(objects, evidence)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}

	return &session{
		store:    store,
		cat:      graph.NewCatalog(morphisms),
		papers:   records.PapersByKey(papers),
		dataset:  export.Dataset{Objects: objects, Morphisms: morphisms, Evidence: evidence, Papers: papers},
		warnings: warnings,
	}, nil
}

// renderer builds the shared result renderer for one-shot commands.
func (s *session) renderer() *shell.Renderer {
	return shell.NewRenderer(s.store, s.cat, s.papers)
}
