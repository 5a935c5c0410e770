// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import "github.com/pdiddy/claimgraph/pkg/types"

// Catalog is the read-only morphism rulebook: it maps a morphism id to its
// display label. The declared source/target types stay advisory; the catalog
// is never consulted to validate an edge, only to label it.
type Catalog struct {
	labels    map[string]string
	morphisms []types.Morphism
}

// NewCatalog builds the catalog from the loaded rulebook rows.
func NewCatalog(morphisms []types.Morphism) *Catalog {
	c := &Catalog{
		labels:    make(map[string]string, len(morphisms)),
		morphisms: morphisms,
	}
	for _, m := range morphisms {
		c.labels[m.ID] = m.Label
	}
	return c
}

// Label resolves a morphism id to its display label. A missing id is not an
// error: lens search discards edges whose morphism cannot be labeled, which
// silently excludes them from label-constrained matching.
func (c *Catalog) Label(morphismID string) (string, bool) {
	label, ok := c.labels[morphismID]
	return label, ok
}

// Morphisms returns the rulebook rows in input order, for display.
func (c *Catalog) Morphisms() []types.Morphism { return c.morphisms }
