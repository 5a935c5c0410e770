// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes a claimgraph session out as a snapshot file. The
// snapshot is a one-way copy for downstream tooling; the session never
// reads it back.
// Implements: prd006-export; docs/ARCHITECTURE § Export.
package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/claimgraph/pkg/types"
)

const (
	yamlFile   = "claimgraph.yaml"
	jsonFile   = "claimgraph.json"
	sqliteFile = "claimgraph.db"
)

// Dataset is the full record content of a session, in file order.
type Dataset struct {
	Objects   []types.Object   `json:"objects" yaml:"objects"`
	Morphisms []types.Morphism `json:"morphisms" yaml:"morphisms"`
	Evidence  []types.Evidence `json:"evidence" yaml:"evidence"`
	Papers    []types.Paper    `json:"papers" yaml:"papers"`
}

// Write dispatches on the configured format and returns the path of the
// snapshot it wrote.
func Write(ctx context.Context, d Dataset, cfg types.ExportConfig) (string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	switch cfg.Format {
	case types.ExportYAML:
		path := filepath.Join(cfg.OutputDir, yamlFile)
		return path, writeYAML(d, path)
	case types.ExportJSON:
		path := filepath.Join(cfg.OutputDir, jsonFile)
		return path, writeJSON(d, path)
	case types.ExportSQLite:
		path := filepath.Join(cfg.OutputDir, sqliteFile)
		return path, writeSQLite(ctx, d, path)
	default:
		return "", fmt.Errorf("unknown export format %q", cfg.Format)
	}
}

func writeYAML(d Dataset, path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func writeJSON(d Dataset, path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// writeSQLite replaces any existing snapshot database and loads the four
// record sets in a single transaction.
func writeSQLite(ctx context.Context, d Dataset, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale snapshot: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := createSchema(ctx, db); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, o := range d.Objects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO objects (id, name, type, description) VALUES (?, ?, ?, ?)`,
			o.ID, o.Name, string(o.Type), o.Description,
		); err != nil {
			return fmt.Errorf("inserting object %s: %w", o.ID, err)
		}
	}
	for _, m := range d.Morphisms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO morphisms (id, label, source_type, target_type) VALUES (?, ?, ?, ?)`,
			m.ID, m.Label, string(m.SourceType), string(m.TargetType),
		); err != nil {
			return fmt.Errorf("inserting morphism %s: %w", m.ID, err)
		}
	}
	for _, e := range d.Evidence {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO evidence (id, citation_key, source_id, morphism_id, target_id, notes)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.CitationKey, e.SourceID, e.MorphismID, e.TargetID, e.Notes,
		); err != nil {
			return fmt.Errorf("inserting evidence %s: %w", e.ID, err)
		}
	}
	for _, p := range d.Papers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO papers (citation_key, authors, year, title, publication, url)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			p.CitationKey, p.Authors, p.Year, p.Title, p.Publication, p.URL,
		); err != nil {
			return fmt.Errorf("inserting paper %s: %w", p.CitationKey, err)
		}
	}

	return tx.Commit()
}

func createSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS objects (
			id TEXT PRIMARY KEY,
			name TEXT,
			type TEXT,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS morphisms (
			id TEXT PRIMARY KEY,
			label TEXT,
			source_type TEXT,
			target_type TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS evidence (
			id TEXT,
			citation_key TEXT,
			source_id TEXT,
			morphism_id TEXT,
			target_id TEXT,
			notes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS papers (
			citation_key TEXT,
			authors TEXT,
			year INTEGER,
			title TEXT,
			publication TEXT,
			url TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_evidence_source ON evidence(source_id)`,
		`CREATE INDEX IF NOT EXISTS idx_evidence_target ON evidence(target_id)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
