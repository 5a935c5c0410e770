package graph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pdiddy/claimgraph/pkg/types"
)

func TestConnectionsFrom(t *testing.T) {
	store, _ := buildFixture(t)

	tests := []struct {
		name      string
		object    string
		wantEdges []string
		wantErr   error
	}{
		{"two outgoing", "TheoryA", []string{"ev1", "ev3"}, nil},
		{"one outgoing", "MethodB", []string{"ev2"}, nil},
		{"isolated object is empty success", "ConceptE", nil, nil},
		{"unknown object", "TheoryZ", nil, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges, err := store.ConnectionsFrom(tt.object)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			var ids []string
			for _, e := range edges {
				ids = append(ids, store.Edge(e).ID)
			}
			if !reflect.DeepEqual(ids, tt.wantEdges) {
				t.Errorf("edges = %v, want %v", ids, tt.wantEdges)
			}
		})
	}
}

func TestConnectionsTo(t *testing.T) {
	store, _ := buildFixture(t)

	edges, err := store.ConnectionsTo("MethodB")
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 1 || store.Edge(edges[0]).ID != "ev1" {
		t.Errorf("ConnectionsTo(MethodB) = %v, want [ev1]", edges)
	}

	if _, err := store.ConnectionsTo("TheoryZ"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestConnectionsDegreeSumProperty(t *testing.T) {
	store, _ := buildFixture(t)

	var sum int
	for v := 0; v < store.VertexCount(); v++ {
		name := store.Object(v).Name
		from, err := store.ConnectionsFrom(name)
		if err != nil {
			t.Fatal(err)
		}
		to, err := store.ConnectionsTo(name)
		if err != nil {
			t.Fatal(err)
		}
		sum += len(from) + len(to)
	}
	if want := 2 * store.EdgeCount(); sum != want {
		t.Errorf("degree sum over names = %d, want %d", sum, want)
	}
}

func TestPapersFor(t *testing.T) {
	store, _ := buildFixture(t)

	tests := []struct {
		name    string
		object  string
		want    []string
		wantErr error
	}{
		{"outgoing then incoming, in order", "MethodB", []string{"Jones2020", "Smith2019"}, nil},
		{"two distinct keys", "TheoryA", []string{"Smith2019", "Doe2021"}, nil},
		{"isolated object", "ConceptE", nil, ErrNoEvidence},
		{"unknown object", "TheoryZ", nil, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := store.PapersFor(tt.object)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(keys, tt.want) {
				t.Errorf("keys = %v, want %v", keys, tt.want)
			}
		})
	}
}

func TestPapersForDeduplicatesByFirstOccurrence(t *testing.T) {
	evidence := []types.Evidence{
		{ID: "ev1", CitationKey: "Smith2019", SourceID: "theory:a", MorphismID: "uses", TargetID: "method:b"},
		{ID: "ev2", CitationKey: "Smith2019", SourceID: "theory:a", MorphismID: "critiques", TargetID: "theory:d"},
		{ID: "ev3", CitationKey: "Jones2020", SourceID: "method:b", MorphismID: "investigates", TargetID: "theory:a"},
	}
	store, warnings := Build(fixtureObjects(), evidence)
	if len(warnings) != 0 {
		t.Fatal(warnings)
	}

	keys, err := store.PapersFor("TheoryA")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(keys, []string{"Smith2019", "Jones2020"}) {
		t.Errorf("keys = %v, want [Smith2019 Jones2020]", keys)
	}
}

func TestFailureVariantsAreDistinct(t *testing.T) {
	store, _ := buildFixture(t)

	_, notFound := store.PapersFor("TheoryZ")
	_, noEvidence := store.PapersFor("ConceptE")

	if errors.Is(notFound, ErrNoEvidence) {
		t.Error("not-found failure must not read as no-evidence")
	}
	if errors.Is(noEvidence, ErrNotFound) {
		t.Error("no-evidence failure must not read as not-found")
	}
}
