// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Evidence is one citation-backed claim: a directed relation instance
// between two objects, asserted by one paper. One row of c_evidence.csv.
// Several rows may share the same (source, morphism, target) triple; the
// graph is a multigraph and each row stays a distinct edge.
type Evidence struct {
	// ID is the unique evidence row key.
	ID string `json:"evidence_id" yaml:"evidence_id"`

	// CitationKey references the asserting paper in papers.csv
	// (e.g. "Friston2010"). Never dereferenced by the graph core.
	CitationKey string `json:"citation_key" yaml:"citation_key"`

	// SourceID is the ObjectID at the tail of the arrow.
	SourceID string `json:"source_id" yaml:"source_id"`

	// MorphismID names the relation kind, per the rulebook.
	MorphismID string `json:"morphism_id" yaml:"morphism_id"`

	// TargetID is the ObjectID at the head of the arrow.
	TargetID string `json:"target_id" yaml:"target_id"`

	// Notes is an optional quote or context from the paper. Absent
	// notes normalize to the empty string.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}
