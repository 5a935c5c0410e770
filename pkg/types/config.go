// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DataConfig locates the four CSV record sets the session is built from.
type DataConfig struct {
	// DataDir is the base directory containing the record files.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// ObjectsFile is the objects file name within DataDir (default c_objects.csv).
	ObjectsFile string `json:"objects_file" yaml:"objects_file"`

	// MorphismsFile is the rulebook file name within DataDir (default c_morphisms.csv).
	MorphismsFile string `json:"morphisms_file" yaml:"morphisms_file"`

	// EvidenceFile is the evidence file name within DataDir (default c_evidence.csv).
	EvidenceFile string `json:"evidence_file" yaml:"evidence_file"`

	// PapersFile is the bibliography file name within DataDir (default papers.csv).
	PapersFile string `json:"papers_file" yaml:"papers_file"`
}

// ShellConfig holds settings for the interactive shell.
type ShellConfig struct {
	// Prompt is the string printed before each input line (default "claimgraph> ").
	Prompt string `json:"prompt" yaml:"prompt"`

	// MaxResults caps how many results a single shell query prints.
	// Zero prints everything.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ExportFormat selects the snapshot export encoding.
type ExportFormat string

const (
	ExportYAML   ExportFormat = "yaml"
	ExportJSON   ExportFormat = "json"
	ExportSQLite ExportFormat = "sqlite"
)

// ExportConfig holds settings for dataset snapshot export.
type ExportConfig struct {
	// OutputDir is the directory export files are written to (default "export").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects the export encoding: yaml, json, or sqlite.
	Format ExportFormat `json:"format" yaml:"format"`
}

// SessionConfig groups all configuration for a claimgraph session.
type SessionConfig struct {
	Data   DataConfig   `json:"data" yaml:"data"`
	Shell  ShellConfig  `json:"shell" yaml:"shell"`
	Export ExportConfig `json:"export" yaml:"export"`
}
