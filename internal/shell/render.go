// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import (
	"fmt"
	"io"

	"github.com/pdiddy/claimgraph/internal/graph"
	"github.com/pdiddy/claimgraph/pkg/types"
)

// Renderer formats query results for a terminal. It is shared by the
// interactive shell and the one-shot CLI commands so both surfaces print
// identically.
type Renderer struct {
	store  *graph.Store
	cat    *graph.Catalog
	papers map[string]types.Paper
}

// NewRenderer builds a renderer over the session's store, catalog, and
// bibliography index.
func NewRenderer(store *graph.Store, cat *graph.Catalog, papers map[string]types.Paper) *Renderer {
	return &Renderer{store: store, cat: cat, papers: papers}
}

// label resolves an edge's arrow label, falling back to the raw morphism id
// when the rulebook has no entry.
func (r *Renderer) label(e graph.Edge) string {
	if label, ok := r.cat.Label(e.MorphismID); ok {
		return label
	}
	return e.MorphismID
}

// edgeLine renders one edge as "Source --label--> Target  [CitationKey]".
func (r *Renderer) edgeLine(e int) string {
	edge := r.store.Edge(e)
	return fmt.Sprintf("%s %s %s  %s",
		objectStyle.Render(r.store.Object(edge.Source).Name),
		subtleStyle.Render("--"+r.label(edge)+"-->"),
		objectStyle.Render(r.store.Object(edge.Target).Name),
		citeStyle.Render("["+edge.CitationKey+"]"),
	)
}

// WriteEdges prints one line per edge.
func (r *Renderer) WriteEdges(w io.Writer, edges []int) {
	for _, e := range edges {
		fmt.Fprintln(w, "  "+r.edgeLine(e))
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d connection(s)", len(edges))))
}

// WritePaths prints numbered lens results, one edge per line.
func (r *Renderer) WritePaths(w io.Writer, paths []graph.Path) {
	for i, p := range paths {
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Lens %d:", i+1)))
		for _, e := range p {
			fmt.Fprintln(w, "  "+r.edgeLine(e))
		}
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d lens(es)", len(paths))))
}

// WriteSpans prints diverging spans, two edges per result.
func (r *Renderer) WriteSpans(w io.Writer, spans []graph.Span) {
	for i, sp := range spans {
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Span %d from %s:", i+1, r.store.Object(sp.Apex).Name)))
		fmt.Fprintln(w, "  "+r.edgeLine(sp.Left))
		fmt.Fprintln(w, "  "+r.edgeLine(sp.Right))
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d span(s)", len(spans))))
}

// WriteContinuations partitions continuations into completed squares and
// divergent synthesis opportunities and prints each group under its own
// header.
func (r *Renderer) WriteContinuations(w io.Writer, conts []graph.SpanContinuation) {
	completed, divergent := graph.SplitContinuations(conts)

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Completed squares (%d):", len(completed))))
	for _, c := range completed {
		r.writeContinuation(w, c)
	}
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Synthesis opportunities (%d):", len(divergent))))
	for _, c := range divergent {
		r.writeContinuation(w, c)
	}
}

func (r *Renderer) writeContinuation(w io.Writer, c graph.SpanContinuation) {
	fmt.Fprintln(w, "  "+r.edgeLine(c.Left)+subtleStyle.Render("  then  ")+r.edgeLine(c.LeftNext))
	fmt.Fprintln(w, "  "+r.edgeLine(c.Right)+subtleStyle.Render("  then  ")+r.edgeLine(c.RightNext))
	fmt.Fprintln(w)
}

// WritePullbacks prints convergence diagrams with their common predecessor.
func (r *Renderer) WritePullbacks(w io.Writer, cands []graph.PullbackCandidate) {
	for i, c := range cands {
		fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Candidate %d via %s:", i+1, r.store.Object(c.P).Name)))
		for _, e := range []int{c.LeftIn, c.RightIn, c.LeftOut, c.RightOut} {
			fmt.Fprintln(w, "  "+r.edgeLine(e))
		}
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d candidate(s)", len(cands))))
}

// WritePapers prints citation keys with bibliography details when the paper
// record set has them.
func (r *Renderer) WritePapers(w io.Writer, keys []string) {
	for _, key := range keys {
		if p, ok := r.papers[key]; ok && p.Title != "" {
			fmt.Fprintf(w, "  %s  %s (%d). %s\n",
				citeStyle.Render("["+key+"]"), p.Authors, p.Year, p.Title)
			continue
		}
		fmt.Fprintln(w, "  "+citeStyle.Render("["+key+"]"))
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d paper(s)", len(keys))))
}

// WriteObjects prints the object list, optionally filtered by type.
func (r *Renderer) WriteObjects(w io.Writer, typeFilter types.ObjectType) {
	count := 0
	for v := 0; v < r.store.VertexCount(); v++ {
		o := r.store.Object(v)
		if typeFilter != "" && o.Type != typeFilter {
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n", objectStyle.Render(o.Name), subtleStyle.Render(string(o.Type)))
		count++
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d object(s)", count)))
}

// WriteMorphisms prints the relation rulebook.
func (r *Renderer) WriteMorphisms(w io.Writer) {
	morphisms := r.cat.Morphisms()
	for _, m := range morphisms {
		fmt.Fprintf(w, "  %-16s %s  %s\n",
			m.ID, objectStyle.Render(m.Label),
			subtleStyle.Render(fmt.Sprintf("(%s -> %s)", orAny(m.SourceType), orAny(m.TargetType))))
	}
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d morphism(s)", len(morphisms))))
}

func orAny(t types.ObjectType) string {
	if t == "" {
		return "any"
	}
	return string(t)
}

// WriteStats prints the session counts.
func (r *Renderer) WriteStats(w io.Writer, warnings int) {
	fmt.Fprintf(w, "  objects:   %d\n", r.store.VertexCount())
	fmt.Fprintf(w, "  evidence:  %d\n", r.store.EdgeCount())
	fmt.Fprintf(w, "  morphisms: %d\n", len(r.cat.Morphisms()))
	fmt.Fprintf(w, "  papers:    %d\n", len(r.papers))
	if warnings > 0 {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("  dropped evidence rows: %d", warnings)))
	}
}
