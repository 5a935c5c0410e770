// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"fmt"
	"strings"

	"github.com/pdiddy/claimgraph/pkg/types"
)

// A lens pattern alternates object specifiers and relation specifiers:
// Obj1 Rel1 Obj2 ... Objn. Object tokens are a bare "*" (wildcard), a known
// type name (type match), or anything else (name match). Relation tokens are
// "*" or "<*>" (wildcard) or "<label>" (exact label match). A token that is
// literally a known type name always reads as a type match, so an object
// *named* "Theory" cannot be reached by name.

// ObjectSpecKind tags the variants of an object specifier.
type ObjectSpecKind int

const (
	ObjectAny ObjectSpecKind = iota
	ObjectByType
	ObjectByName
)

// ObjectSpec matches a vertex by type, by name, or unconditionally.
type ObjectSpec struct {
	Kind ObjectSpecKind
	Type types.ObjectType // set for ObjectByType
	Name string           // set for ObjectByName
}

// Matches reports whether o satisfies the specifier.
func (sp ObjectSpec) Matches(o types.Object) bool {
	switch sp.Kind {
	case ObjectByType:
		return o.Type == sp.Type
	case ObjectByName:
		return o.Name == sp.Name
	default:
		return true
	}
}

// RelationSpecKind tags the variants of a relation specifier.
type RelationSpecKind int

const (
	RelationAny RelationSpecKind = iota
	RelationByLabel
)

// RelationSpec matches an edge's morphism label, or any edge.
type RelationSpec struct {
	Kind  RelationSpecKind
	Label string // set for RelationByLabel
}

// Matches reports whether label satisfies the specifier.
func (sp RelationSpec) Matches(label string) bool {
	return sp.Kind == RelationAny || sp.Label == label
}

// Pattern is a compiled lens pattern: n object specifiers joined by n-1
// relation specifiers, n >= 2.
type Pattern struct {
	Objects   []ObjectSpec
	Relations []RelationSpec
}

// Hops returns the number of edges a matching path has.
func (p Pattern) Hops() int { return len(p.Relations) }

// ParsePattern compiles a token sequence into a Pattern. Tokens are tried
// as an already-alternating object/relation sequence first; if that reading
// fails, the legacy shorthand applies: every token is an object specifier
// and wildcard relations are spliced between consecutive pairs. Either way
// the normalized sequence must be odd-length with at least one hop, or the
// call fails with ErrPattern.
func ParsePattern(tokens []string) (Pattern, error) {
	if len(tokens) == 0 {
		return Pattern{}, fmt.Errorf("%w: empty pattern", ErrPattern)
	}

	if p, err := parseAlternating(tokens); err == nil {
		return p, nil
	}

	spliced := make([]string, 0, 2*len(tokens)-1)
	for i, tok := range tokens {
		if i > 0 {
			spliced = append(spliced, "*")
		}
		spliced = append(spliced, tok)
	}
	p, err := parseAlternating(spliced)
	if err != nil {
		return Pattern{}, err
	}
	return p, nil
}

func parseAlternating(tokens []string) (Pattern, error) {
	if len(tokens) < 3 || len(tokens)%2 == 0 {
		return Pattern{}, fmt.Errorf(
			"%w: need an odd number of tokens (object relation object ...), got %d", ErrPattern, len(tokens))
	}

	var p Pattern
	for i, tok := range tokens {
		if i%2 == 0 {
			sp, err := parseObjectToken(tok)
			if err != nil {
				return Pattern{}, err
			}
			p.Objects = append(p.Objects, sp)
			continue
		}
		sp, err := parseRelationToken(tok)
		if err != nil {
			return Pattern{}, err
		}
		p.Relations = append(p.Relations, sp)
	}
	return p, nil
}

func parseObjectToken(tok string) (ObjectSpec, error) {
	if isBracketed(tok) {
		return ObjectSpec{}, fmt.Errorf("%w: relation token %q at an object position", ErrPattern, tok)
	}
	if tok == "*" {
		return ObjectSpec{Kind: ObjectAny}, nil
	}
	if t := types.ObjectType(tok); t.Known() {
		return ObjectSpec{Kind: ObjectByType, Type: t}, nil
	}
	return ObjectSpec{Kind: ObjectByName, Name: tok}, nil
}

func parseRelationToken(tok string) (RelationSpec, error) {
	if tok == "*" {
		return RelationSpec{Kind: RelationAny}, nil
	}
	if !isBracketed(tok) {
		return RelationSpec{}, fmt.Errorf("%w: object token %q at a relation position", ErrPattern, tok)
	}
	label := tok[1 : len(tok)-1]
	if label == "*" || label == "" {
		return RelationSpec{Kind: RelationAny}, nil
	}
	return RelationSpec{Kind: RelationByLabel, Label: label}, nil
}

func isBracketed(tok string) bool {
	return len(tok) >= 2 && strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">")
}

// Path is one lens result: the edge positions of a matching walk, in hop
// order. Paths are always non-empty.
type Path []int

// FindLenses runs depth-first backtracking search for pat over the store.
// Edges whose morphism has no catalog label are discarded before the
// relation specifier is tested, wildcard or not. Results appear in discovery
// order: start vertices in insertion order, then per-vertex edge order, so
// the collection is deterministic. Unknown type or name tokens simply match
// nothing.
func (s *Store) FindLenses(cat *Catalog, pat Pattern) []Path {
	var results []Path
	for v := range s.objects {
		if !pat.Objects[0].Matches(s.objects[v]) {
			continue
		}
		results = s.extend(cat, pat, v, 0, nil, results)
	}
	return results
}

// extend advances one hop from vertex v. The accumulated prefix is copied
// per branch, never shared, so sibling branches cannot alias each other's
// path state.
func (s *Store) extend(cat *Catalog, pat Pattern, v, hop int, prefix Path, results []Path) []Path {
	if hop == len(pat.Relations) {
		if len(prefix) > 0 {
			results = append(results, prefix)
		}
		return results
	}
	for _, e := range s.out[v] {
		edge := s.edges[e]
		label, ok := cat.Label(edge.MorphismID)
		if !ok {
			continue
		}
		if !pat.Relations[hop].Matches(label) {
			continue
		}
		if !pat.Objects[hop+1].Matches(s.objects[edge.Target]) {
			continue
		}
		next := make(Path, len(prefix), len(prefix)+1)
		copy(next, prefix)
		next = append(next, e)
		results = s.extend(cat, pat, edge.Target, hop+1, next, results)
	}
	return results
}
