package graph

import (
	"errors"
	"testing"

	"github.com/pdiddy/claimgraph/pkg/types"
)

// Span fixture: SourceS fans into FootA and FootB; both feet continue to
// JoinQ, and FootA also continues to OtherR.
//
//	SourceS --e0--> FootA --e2--> JoinQ
//	SourceS --e1--> FootB --e3--> JoinQ
//	                FootA --e4--> OtherR

func buildSpanFixture(t *testing.T) *Store {
	t.Helper()
	objects := []types.Object{
		{ID: "t:s", Name: "SourceS", Type: types.TypeTheory},
		{ID: "m:a", Name: "FootA", Type: types.TypeMethod},
		{ID: "m:b", Name: "FootB", Type: types.TypeMethod},
		{ID: "p:q", Name: "JoinQ", Type: types.TypePhenomenon},
		{ID: "c:r", Name: "OtherR", Type: types.TypeConcept},
	}
	evidence := []types.Evidence{
		{ID: "e0", CitationKey: "K0", SourceID: "t:s", MorphismID: "uses", TargetID: "m:a"},
		{ID: "e1", CitationKey: "K1", SourceID: "t:s", MorphismID: "uses", TargetID: "m:b"},
		{ID: "e2", CitationKey: "K2", SourceID: "m:a", MorphismID: "investigates", TargetID: "p:q"},
		{ID: "e3", CitationKey: "K3", SourceID: "m:b", MorphismID: "investigates", TargetID: "p:q"},
		{ID: "e4", CitationKey: "K4", SourceID: "m:a", MorphismID: "investigates", TargetID: "c:r"},
	}
	store, warnings := Build(objects, evidence)
	if len(warnings) != 0 {
		t.Fatal(warnings)
	}
	return store
}

// --- cospans ---

func TestFindCospans(t *testing.T) {
	store := buildSpanFixture(t)

	tests := []struct {
		name string
		src  string
		a, b string
		want int
	}{
		{"concrete triple", "SourceS", "FootA", "FootB", 1},
		{"wildcard source", "*", "FootA", "FootB", 1},
		{"wildcard feet report each pair once", "SourceS", "*", "*", 1},
		{"all wildcard finds both apexes", "*", "*", "*", 2},
		{"one wildcard excludes equal feet", "SourceS", "FootA", "*", 1},
		{"span from a foot", "FootA", "JoinQ", "OtherR", 1},
		{"no span at all", "JoinQ", "*", "*", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, err := store.FindCospans(tt.src, tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if len(spans) != tt.want {
				t.Errorf("got %d spans, want %d", len(spans), tt.want)
			}
		})
	}
}

func TestFindCospansEmitsEdgeCombinations(t *testing.T) {
	// A second parallel edge SourceS->FootA doubles the combinations.
	objects := []types.Object{
		{ID: "t:s", Name: "SourceS", Type: types.TypeTheory},
		{ID: "m:a", Name: "FootA", Type: types.TypeMethod},
		{ID: "m:b", Name: "FootB", Type: types.TypeMethod},
	}
	evidence := []types.Evidence{
		{ID: "e0", CitationKey: "K0", SourceID: "t:s", MorphismID: "uses", TargetID: "m:a"},
		{ID: "e1", CitationKey: "K1", SourceID: "t:s", MorphismID: "uses", TargetID: "m:a"},
		{ID: "e2", CitationKey: "K2", SourceID: "t:s", MorphismID: "uses", TargetID: "m:b"},
	}
	store, warnings := Build(objects, evidence)
	if len(warnings) != 0 {
		t.Fatal(warnings)
	}

	spans, err := store.FindCospans("SourceS", "FootA", "FootB")
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2 (cartesian product of matching edges)", len(spans))
	}

	// Both concrete feet include the a == b pair: two parallel edges to
	// FootA give all four ordered combinations.
	same, err := store.FindCospans("SourceS", "FootA", "FootA")
	if err != nil {
		t.Fatal(err)
	}
	if len(same) != 4 {
		t.Errorf("got %d spans for equal concrete feet, want 4", len(same))
	}
}

func TestFindCospansNotFound(t *testing.T) {
	store := buildSpanFixture(t)

	for _, args := range [][3]string{
		{"Nobody", "FootA", "FootB"},
		{"SourceS", "Nobody", "FootB"},
		{"SourceS", "FootA", "Nobody"},
	} {
		if _, err := store.FindCospans(args[0], args[1], args[2]); !errors.Is(err, ErrNotFound) {
			t.Errorf("FindCospans(%v) error = %v, want ErrNotFound", args, err)
		}
	}
}

// --- continuations ---

func TestFindCospanContinuations(t *testing.T) {
	store := buildSpanFixture(t)

	conts, err := store.FindCospanContinuations("SourceS", "FootA", "FootB")
	if err != nil {
		t.Fatal(err)
	}
	// FootA continues to JoinQ and OtherR, FootB only to JoinQ:
	// (e2,e3) completed at JoinQ, (e4,e3) divergent.
	if len(conts) != 2 {
		t.Fatalf("got %d continuations, want 2", len(conts))
	}

	completed, divergent := SplitContinuations(conts)
	if len(completed) != 1 || len(divergent) != 1 {
		t.Fatalf("split = %d completed, %d divergent; want 1, 1", len(completed), len(divergent))
	}
	if got := store.Object(completed[0].LeftEnd).Name; got != "JoinQ" {
		t.Errorf("completed square converges at %s, want JoinQ", got)
	}
	if divergent[0].LeftEnd == divergent[0].RightEnd {
		t.Error("divergent continuation reports equal endpoints")
	}
	if len(completed)+len(divergent) != len(conts) {
		t.Error("partition does not cover the raw result set")
	}
}

func TestFindCospanContinuationsRequireBothFeetToContinue(t *testing.T) {
	// Drop FootB's continuation: no results even though the span exists.
	objects := []types.Object{
		{ID: "t:s", Name: "SourceS", Type: types.TypeTheory},
		{ID: "m:a", Name: "FootA", Type: types.TypeMethod},
		{ID: "m:b", Name: "FootB", Type: types.TypeMethod},
		{ID: "p:q", Name: "JoinQ", Type: types.TypePhenomenon},
	}
	evidence := []types.Evidence{
		{ID: "e0", CitationKey: "K0", SourceID: "t:s", MorphismID: "uses", TargetID: "m:a"},
		{ID: "e1", CitationKey: "K1", SourceID: "t:s", MorphismID: "uses", TargetID: "m:b"},
		{ID: "e2", CitationKey: "K2", SourceID: "m:a", MorphismID: "investigates", TargetID: "p:q"},
	}
	store, warnings := Build(objects, evidence)
	if len(warnings) != 0 {
		t.Fatal(warnings)
	}

	conts, err := store.FindCospanContinuations("SourceS", "FootA", "FootB")
	if err != nil {
		t.Fatal(err)
	}
	if len(conts) != 0 {
		t.Errorf("got %d continuations, want 0 (FootB has no outgoing edge)", len(conts))
	}
}

// --- pullback candidates ---

func TestFindPullbackCandidates(t *testing.T) {
	store := buildSpanFixture(t)

	// FootA and FootB converge on JoinQ; SourceS is their common
	// predecessor: one candidate (e0, e1, e2, e3).
	cands, err := store.FindPullbackCandidates("FootA", "FootB", "JoinQ")
	if err != nil {
		t.Fatal(err)
	}
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
	c := cands[0]
	if got := store.Object(c.P).Name; got != "SourceS" {
		t.Errorf("P = %s, want SourceS", got)
	}
	for _, pair := range []struct {
		field string
		edge  int
		want  string
	}{
		{"LeftIn", c.LeftIn, "e0"},
		{"RightIn", c.RightIn, "e1"},
		{"LeftOut", c.LeftOut, "e2"},
		{"RightOut", c.RightOut, "e3"},
	} {
		if got := store.Edge(pair.edge).ID; got != pair.want {
			t.Errorf("%s = %s, want %s", pair.field, got, pair.want)
		}
	}
}

func TestFindPullbackCandidatesWildcards(t *testing.T) {
	store := buildSpanFixture(t)

	cands, err := store.FindPullbackCandidates("*", "*", "JoinQ")
	if err != nil {
		t.Fatal(err)
	}
	// Only the (FootA, FootB) pair qualifies, reported once.
	if len(cands) != 1 {
		t.Errorf("got %d candidates, want 1", len(cands))
	}

	if _, err := store.FindPullbackCandidates("FootA", "FootB", "Nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFindPullbackCandidatesExcludeTrivialPredecessors(t *testing.T) {
	// FootA is itself a predecessor of both feet (self-loop plus an edge to
	// FootB); the triviality filter must reject it.
	objects := []types.Object{
		{ID: "m:a", Name: "FootA", Type: types.TypeMethod},
		{ID: "m:b", Name: "FootB", Type: types.TypeMethod},
		{ID: "p:c", Name: "TargetC", Type: types.TypePhenomenon},
	}
	evidence := []types.Evidence{
		{ID: "e0", CitationKey: "K0", SourceID: "m:a", MorphismID: "uses", TargetID: "m:a"},
		{ID: "e1", CitationKey: "K1", SourceID: "m:a", MorphismID: "uses", TargetID: "m:b"},
		{ID: "e2", CitationKey: "K2", SourceID: "m:a", MorphismID: "investigates", TargetID: "p:c"},
		{ID: "e3", CitationKey: "K3", SourceID: "m:b", MorphismID: "investigates", TargetID: "p:c"},
	}
	store, warnings := Build(objects, evidence)
	if len(warnings) != 0 {
		t.Fatal(warnings)
	}

	cands, err := store.FindPullbackCandidates("FootA", "FootB", "TargetC")
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cands {
		if name := store.Object(c.P).Name; name == "FootA" || name == "FootB" {
			t.Errorf("candidate P = %s equals a foot", name)
		}
	}
	if len(cands) != 0 {
		t.Errorf("got %d candidates, want 0 (only trivial predecessors exist)", len(cands))
	}
}
