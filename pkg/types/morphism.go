// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Morphism is a named kind of directed edge between objects: one row of the
// relation rulebook c_morphisms.csv. The declared source and target types are
// advisory documentation for the extraction pipeline; the graph store does
// not enforce them when admitting evidence.
type Morphism struct {
	// ID is the unique morphism key (e.g. "supports", "critiques").
	ID string `json:"morphism_id" yaml:"morphism_id"`

	// Label is the human-readable arrow label shown in query results.
	Label string `json:"label" yaml:"label"`

	// SourceType is the declared type of source objects. Advisory only.
	SourceType ObjectType `json:"source_type,omitempty" yaml:"source_type,omitempty"`

	// TargetType is the declared type of target objects. Advisory only.
	TargetType ObjectType `json:"target_type,omitempty" yaml:"target_type,omitempty"`
}
