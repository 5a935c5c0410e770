// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph holds the in-memory claims multigraph and its query engine:
// lens pattern search, neighbor and evidence queries, and span/cospan
// structural search. The store is built once per session and never mutated
// afterwards; every query is a side-effect-free read.
// Implements: prd002-graph-store, prd003-lens-query, prd004-structural-search;
//
//	docs/ARCHITECTURE § Graph Store, § Query Engine.
package graph

import (
	"fmt"

	"github.com/pdiddy/claimgraph/pkg/types"
)

// Edge is one admitted evidence row, with its endpoints resolved to vertex
// positions. Parallel edges between the same endpoints are kept distinct.
type Edge struct {
	// ID is the originating evidence row key.
	ID string

	// MorphismID names the relation kind, resolved to a label through
	// the Catalog at query time.
	MorphismID string

	// CitationKey references the asserting paper.
	CitationKey string

	// Notes is the optional context quote, empty when absent.
	Notes string

	// Source and Target are vertex positions in the store.
	Source int
	Target int
}

// Warning reports an evidence row dropped at build time because one of its
// endpoints did not resolve to a known object.
type Warning struct {
	EvidenceID string
	Reason     string
}

func (w Warning) String() string {
	return fmt.Sprintf("evidence %s dropped: %s", w.EvidenceID, w.Reason)
}

// Store is the immutable, indexed claims multigraph. Vertex and edge
// positions follow input row order, and every enumeration the store hands
// out preserves that order, so query results are deterministic.
type Store struct {
	objects []types.Object
	edges   []Edge
	byID    map[string]int

	// out and in map a vertex position to the edge positions leaving
	// and entering it, in edge insertion order.
	out [][]int
	in  [][]int
}

// Build constructs the store from the loaded object and evidence record
// sets. Each object is assigned the next vertex position in input order.
// An evidence row becomes an edge iff both its endpoints resolve; rows that
// do not resolve are dropped and reported as warnings, never as an error.
func Build(objects []types.Object, evidence []types.Evidence) (*Store, []Warning) {
	s := &Store{
		objects: objects,
		byID:    make(map[string]int, len(objects)),
		out:     make([][]int, len(objects)),
		in:      make([][]int, len(objects)),
	}
	for i, o := range objects {
		s.byID[o.ID] = i
	}

	var warnings []Warning
	for _, ev := range evidence {
		src, srcOK := s.byID[ev.SourceID]
		dst, dstOK := s.byID[ev.TargetID]
		if !srcOK || !dstOK {
			warnings = append(warnings, Warning{
				EvidenceID: ev.ID,
				Reason:     unresolvedReason(ev, srcOK, dstOK),
			})
			continue
		}
		e := len(s.edges)
		s.edges = append(s.edges, Edge{
			ID:          ev.ID,
			MorphismID:  ev.MorphismID,
			CitationKey: ev.CitationKey,
			Notes:       ev.Notes,
			Source:      src,
			Target:      dst,
		})
		s.out[src] = append(s.out[src], e)
		s.in[dst] = append(s.in[dst], e)
	}
	return s, warnings
}

func unresolvedReason(ev types.Evidence, srcOK, dstOK bool) string {
	switch {
	case !srcOK && !dstOK:
		return fmt.Sprintf("unknown source %q and target %q", ev.SourceID, ev.TargetID)
	case !srcOK:
		return fmt.Sprintf("unknown source %q", ev.SourceID)
	default:
		return fmt.Sprintf("unknown target %q", ev.TargetID)
	}
}

// VertexCount returns the number of objects in the store.
func (s *Store) VertexCount() int { return len(s.objects) }

// EdgeCount returns the number of admitted evidence edges.
func (s *Store) EdgeCount() int { return len(s.edges) }

// Object returns the object at vertex position v.
func (s *Store) Object(v int) types.Object { return s.objects[v] }

// Edge returns the edge at position e.
func (s *Store) Edge(e int) Edge { return s.edges[e] }

// Outgoing returns the positions of edges leaving v, in insertion order.
// The returned slice is a copy; callers may reorder it freely.
func (s *Store) Outgoing(v int) []int { return clone(s.out[v]) }

// Incoming returns the positions of edges entering v, in insertion order.
// The returned slice is a copy; callers may reorder it freely.
func (s *Store) Incoming(v int) []int { return clone(s.in[v]) }

// VertexByID resolves an object id to its vertex position.
func (s *Store) VertexByID(id string) (int, bool) {
	v, ok := s.byID[id]
	return v, ok
}

// vertexByName resolves a display name to the first vertex carrying it, in
// insertion order. Names are intended unique but not enforced; with
// duplicates the earliest row wins.
func (s *Store) vertexByName(name string) (int, bool) {
	for v, o := range s.objects {
		if o.Name == name {
			return v, true
		}
	}
	return 0, false
}

func clone(xs []int) []int {
	if xs == nil {
		return nil
	}
	out := make([]int, len(xs))
	copy(out, xs)
	return out
}
