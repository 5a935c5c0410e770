// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import "fmt"

// Structural search enumerates small diagrams over the store: diverging
// spans (one source fanning into two targets), their one-hop continuations,
// and pullback candidates (a shared target with a common predecessor of its
// two sources). The operation names are inherited from the categorical
// vocabulary of the dataset, not claims of the textbook constructions: the
// "cospan" finder locates a diverging span, and no universal property is
// checked anywhere.

// Span is one diverging diagram: two edges leaving the same apex vertex.
// Left and Right are edge positions; their targets are the span's feet.
type Span struct {
	Apex  int
	Left  int
	Right int
}

// SpanContinuation extends a span one hop past each foot. LeftEnd and
// RightEnd are the vertices the continuation edges arrive at.
type SpanContinuation struct {
	Span
	LeftNext  int
	RightNext int
	LeftEnd   int
	RightEnd  int
}

// Completed reports whether both continuations converge on the same vertex,
// making the diagram a commuting-square candidate. Non-completed
// continuations are synthesis opportunities.
func (c SpanContinuation) Completed() bool { return c.LeftEnd == c.RightEnd }

// PullbackCandidate is a convergence diagram: a and b both point at a shared
// target, and p is a common predecessor of a and b distinct from either.
// All four fields after P are edge positions: p->a, p->b, a->target,
// b->target.
type PullbackCandidate struct {
	P        int
	LeftIn   int
	RightIn  int
	LeftOut  int
	RightOut int
}

// resolveSpec expands a structural-search specifier: "*" yields every vertex
// in insertion order; any other value must resolve, by first name match, to
// a single vertex or the whole call aborts with ErrNotFound.
func (s *Store) resolveSpec(spec string) (candidates []int, wildcard bool, err error) {
	if spec == "*" {
		all := make([]int, len(s.objects))
		for v := range all {
			all[v] = v
		}
		return all, true, nil
	}
	v, ok := s.vertexByName(spec)
	if !ok {
		return nil, false, fmt.Errorf("object %q: %w", spec, ErrNotFound)
	}
	return []int{v}, false, nil
}

// footPairs enumerates the (a, b) vertex pairs for the two symmetric roles
// of a structural search. Both concrete: every pair, including a == b.
// Exactly one wildcard: pairs with a == b are excluded. Both wildcard: only
// position-ordered pairs, so a symmetric diagram is reported once.
func (s *Store) footPairs(aSpec, bSpec string) ([][2]int, error) {
	as, aWild, err := s.resolveSpec(aSpec)
	if err != nil {
		return nil, err
	}
	bs, bWild, err := s.resolveSpec(bSpec)
	if err != nil {
		return nil, err
	}

	var pairs [][2]int
	for _, a := range as {
		for _, b := range bs {
			switch {
			case aWild && bWild:
				if a >= b {
					continue
				}
			case aWild || bWild:
				if a == b {
					continue
				}
			}
			pairs = append(pairs, [2]int{a, b})
		}
	}
	return pairs, nil
}

// edgesBetween returns the positions of edges from u to w, in insertion order.
func (s *Store) edgesBetween(u, w int) []int {
	var out []int
	for _, e := range s.out[u] {
		if s.edges[e].Target == w {
			out = append(out, e)
		}
	}
	return out
}

// FindCospans finds diverging spans: for each source candidate s and foot
// pair (a, b), every combination of an s->a edge with an s->b edge is one
// result. An unresolved concrete specifier aborts with ErrNotFound; a
// resolved search with no matching diagram returns an empty success.
func (s *Store) FindCospans(srcSpec, leftSpec, rightSpec string) ([]Span, error) {
	sources, _, err := s.resolveSpec(srcSpec)
	if err != nil {
		return nil, err
	}
	pairs, err := s.footPairs(leftSpec, rightSpec)
	if err != nil {
		return nil, err
	}

	var results []Span
	for _, src := range sources {
		for _, pr := range pairs {
			toLeft := s.edgesBetween(src, pr[0])
			if len(toLeft) == 0 {
				continue
			}
			toRight := s.edgesBetween(src, pr[1])
			if len(toRight) == 0 {
				continue
			}
			for _, ea := range toLeft {
				for _, eb := range toRight {
					results = append(results, Span{Apex: src, Left: ea, Right: eb})
				}
			}
		}
	}
	return results, nil
}

// FindCospanContinuations finds spans whose feet each continue one hop
// further: every (s->a, s->b, a->qa, b->qb) edge combination is one result.
// Feet without outgoing edges contribute nothing. Callers partition results
// with SplitContinuations.
func (s *Store) FindCospanContinuations(srcSpec, leftSpec, rightSpec string) ([]SpanContinuation, error) {
	sources, _, err := s.resolveSpec(srcSpec)
	if err != nil {
		return nil, err
	}
	pairs, err := s.footPairs(leftSpec, rightSpec)
	if err != nil {
		return nil, err
	}

	var results []SpanContinuation
	for _, src := range sources {
		for _, pr := range pairs {
			a, b := pr[0], pr[1]
			toLeft := s.edgesBetween(src, a)
			if len(toLeft) == 0 {
				continue
			}
			toRight := s.edgesBetween(src, b)
			if len(toRight) == 0 {
				continue
			}
			if len(s.out[a]) == 0 || len(s.out[b]) == 0 {
				continue
			}
			for _, ea := range toLeft {
				for _, eb := range toRight {
					for _, eqa := range s.out[a] {
						for _, eqb := range s.out[b] {
							results = append(results, SpanContinuation{
								Span:      Span{Apex: src, Left: ea, Right: eb},
								LeftNext:  eqa,
								RightNext: eqb,
								LeftEnd:   s.edges[eqa].Target,
								RightEnd:  s.edges[eqb].Target,
							})
						}
					}
				}
			}
		}
	}
	return results, nil
}

// SplitContinuations partitions continuations into completed squares
// (both hops converge on one vertex) and divergent synthesis opportunities.
// The partition is total: every input lands in exactly one half, in order.
func SplitContinuations(cs []SpanContinuation) (completed, divergent []SpanContinuation) {
	for _, c := range cs {
		if c.Completed() {
			completed = append(completed, c)
		} else {
			divergent = append(divergent, c)
		}
	}
	return completed, divergent
}

// FindPullbackCandidates finds convergence diagrams: for each target
// candidate c and pair (a, b) with at least one a->c and one b->c edge, every
// common predecessor p of a and b (excluding a and b themselves) yields one
// result per (p->a, p->b, a->c, b->c) edge combination.
func (s *Store) FindPullbackCandidates(leftSpec, rightSpec, targetSpec string) ([]PullbackCandidate, error) {
	targets, _, err := s.resolveSpec(targetSpec)
	if err != nil {
		return nil, err
	}
	pairs, err := s.footPairs(leftSpec, rightSpec)
	if err != nil {
		return nil, err
	}

	var results []PullbackCandidate
	for _, c := range targets {
		for _, pr := range pairs {
			a, b := pr[0], pr[1]
			aOut := s.edgesBetween(a, c)
			if len(aOut) == 0 {
				continue
			}
			bOut := s.edgesBetween(b, c)
			if len(bOut) == 0 {
				continue
			}
			for _, p := range s.commonPredecessors(a, b) {
				if p == a || p == b {
					continue
				}
				for _, epa := range s.edgesBetween(p, a) {
					for _, epb := range s.edgesBetween(p, b) {
						for _, eac := range aOut {
							for _, ebc := range bOut {
								results = append(results, PullbackCandidate{
									P:        p,
									LeftIn:   epa,
									RightIn:  epb,
									LeftOut:  eac,
									RightOut: ebc,
								})
							}
						}
					}
				}
			}
		}
	}
	return results, nil
}

// commonPredecessors returns the vertices with an edge into both a and b,
// ordered by first occurrence among a's incoming edges.
func (s *Store) commonPredecessors(a, b int) []int {
	intoB := make(map[int]bool, len(s.in[b]))
	for _, e := range s.in[b] {
		intoB[s.edges[e].Source] = true
	}

	seen := make(map[int]bool)
	var common []int
	for _, e := range s.in[a] {
		p := s.edges[e].Source
		if seen[p] || !intoB[p] {
			continue
		}
		seen[p] = true
		common = append(common, p)
	}
	return common
}
