// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the record and configuration structures shared by
// every claimgraph stage. See docs/ARCHITECTURE § Data Model.
package types

// ObjectType categorizes an object in the claims graph.
type ObjectType string

const (
	TypeTheory     ObjectType = "Theory"
	TypePhenomenon ObjectType = "Phenomenon"
	TypeMethod     ObjectType = "Method"
	TypeConcept    ObjectType = "Concept"
)

// KnownObjectTypes lists the conventional type vocabulary in display order.
// Lens patterns use membership in this set to tell a type token from a name
// token, so an object literally named "Theory" cannot be matched by name.
var KnownObjectTypes = []ObjectType{TypeTheory, TypePhenomenon, TypeMethod, TypeConcept}

// Known reports whether t is one of the conventional object types.
func (t ObjectType) Known() bool {
	for _, k := range KnownObjectTypes {
		if t == k {
			return true
		}
	}
	return false
}

// Object is a vertex in the claims graph: a theory, phenomenon, method, or
// concept asserted somewhere in the literature. One row of c_objects.csv.
type Object struct {
	// ID is the unique object key, conventionally "type:slug"
	// (e.g. "theory:predictive_coding").
	ID string `json:"object_id" yaml:"object_id"`

	// Name is the human-readable name. Intended unique, not enforced.
	Name string `json:"name" yaml:"name"`

	// Type categorizes the object. The vocabulary is open-ended but
	// conventionally limited to KnownObjectTypes.
	Type ObjectType `json:"type" yaml:"type"`

	// Description is a one-sentence gloss of the object.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
