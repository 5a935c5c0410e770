// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell is the interactive query surface over a claimgraph session.
// It reads line-oriented commands, runs them against the graph store, and
// renders results with lipgloss styling.
// Implements: prd005-shell; docs/ARCHITECTURE § Shell.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pdiddy/claimgraph/internal/graph"
	"github.com/pdiddy/claimgraph/pkg/types"
)

const defaultPrompt = "claimgraph> "

// Shell runs the read-eval-print loop. Input and output are injected so
// tests can script a session.
type Shell struct {
	store    *graph.Store
	cat      *graph.Catalog
	render   *Renderer
	cfg      types.ShellConfig
	warnings int

	in  io.Reader
	out io.Writer
}

// New assembles a shell over a built session.
func New(store *graph.Store, cat *graph.Catalog, papers map[string]types.Paper, cfg types.ShellConfig, warnings int, in io.Reader, out io.Writer) *Shell {
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	return &Shell{
		store:    store,
		cat:      cat,
		render:   NewRenderer(store, cat, papers),
		cfg:      cfg,
		warnings: warnings,
		in:       in,
		out:      out,
	}
}

// Run loops until quit or end of input. Command failures are reported and
// the loop continues; only a read error ends the session abnormally.
func (sh *Shell) Run() error {
	scanner := bufio.NewScanner(sh.in)
	for {
		fmt.Fprint(sh.out, sh.cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}
		if sh.dispatch(scanner.Text()) {
			return nil
		}
	}
}

// dispatch runs one command line and reports whether the shell should exit.
func (sh *Shell) dispatch(line string) bool {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return false
	}
	cmd, args := strings.ToLower(tokens[0]), tokens[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		sh.printHelp()
	case "lens":
		sh.cmdLens(args)
	case "from":
		sh.cmdNeighbors(args, "from", sh.store.ConnectionsFrom)
	case "to":
		sh.cmdNeighbors(args, "to", sh.store.ConnectionsTo)
	case "papers":
		sh.cmdPapers(args)
	case "span":
		sh.cmdSpan(args)
	case "square":
		sh.cmdSquare(args)
	case "pullback":
		sh.cmdPullback(args)
	case "objects":
		sh.cmdObjects(args)
	case "morphisms":
		sh.render.WriteMorphisms(sh.out)
	case "stats":
		sh.render.WriteStats(sh.out, sh.warnings)
	default:
		sh.fail(fmt.Errorf("unknown command %q, try help", cmd))
	}
	return false
}

func (sh *Shell) cmdLens(args []string) {
	if len(args) == 0 {
		sh.usage(`lens OBJECT [<relation>] OBJECT ...`)
		return
	}
	pat, err := graph.ParsePattern(args)
	if err != nil {
		sh.fail(err)
		return
	}
	paths := sh.store.FindLenses(sh.cat, pat)
	paths, clipped := clip(paths, sh.cfg.MaxResults)
	sh.render.WritePaths(sh.out, paths)
	sh.noteClipped(clipped)
}

func (sh *Shell) cmdNeighbors(args []string, name string, query func(string) ([]int, error)) {
	if len(args) != 1 {
		sh.usage(name + " OBJECT")
		return
	}
	edges, err := query(args[0])
	if err != nil {
		sh.fail(err)
		return
	}
	edges, clipped := clip(edges, sh.cfg.MaxResults)
	sh.render.WriteEdges(sh.out, edges)
	sh.noteClipped(clipped)
}

func (sh *Shell) cmdPapers(args []string) {
	if len(args) != 1 {
		sh.usage("papers OBJECT")
		return
	}
	keys, err := sh.store.PapersFor(args[0])
	switch {
	case errors.Is(err, graph.ErrNoEvidence):
		fmt.Fprintln(sh.out, subtleStyle.Render(fmt.Sprintf("no recorded evidence touches %q", args[0])))
		return
	case err != nil:
		sh.fail(err)
		return
	}
	sh.render.WritePapers(sh.out, keys)
}

func (sh *Shell) cmdSpan(args []string) {
	if len(args) != 3 {
		sh.usage("span SOURCE FOOT FOOT  (use * for any)")
		return
	}
	spans, err := sh.store.FindCospans(args[0], args[1], args[2])
	if err != nil {
		sh.fail(err)
		return
	}
	spans, clipped := clip(spans, sh.cfg.MaxResults)
	sh.render.WriteSpans(sh.out, spans)
	sh.noteClipped(clipped)
}

func (sh *Shell) cmdSquare(args []string) {
	if len(args) != 3 {
		sh.usage("square SOURCE FOOT FOOT  (use * for any)")
		return
	}
	conts, err := sh.store.FindCospanContinuations(args[0], args[1], args[2])
	if err != nil {
		sh.fail(err)
		return
	}
	conts, clipped := clip(conts, sh.cfg.MaxResults)
	sh.render.WriteContinuations(sh.out, conts)
	sh.noteClipped(clipped)
}

func (sh *Shell) cmdPullback(args []string) {
	if len(args) != 3 {
		sh.usage("pullback FOOT FOOT TARGET  (use * for any)")
		return
	}
	cands, err := sh.store.FindPullbackCandidates(args[0], args[1], args[2])
	if err != nil {
		sh.fail(err)
		return
	}
	cands, clipped := clip(cands, sh.cfg.MaxResults)
	sh.render.WritePullbacks(sh.out, cands)
	sh.noteClipped(clipped)
}

func (sh *Shell) cmdObjects(args []string) {
	var filter types.ObjectType
	if len(args) > 0 {
		filter = types.ObjectType(args[0])
		if !filter.Known() {
			sh.fail(fmt.Errorf("unknown object type %q (one of %v)", args[0], types.KnownObjectTypes))
			return
		}
	}
	sh.render.WriteObjects(sh.out, filter)
}

func (sh *Shell) printHelp() {
	fmt.Fprint(sh.out, headerStyle.Render("Commands:")+`
  lens OBJECT [<relation>] OBJECT ...   search for paths matching a pattern
  from OBJECT                           outgoing connections
  to OBJECT                             incoming connections
  papers OBJECT                         papers citing evidence at an object
  span SOURCE FOOT FOOT                 diverging spans (use * for any)
  square SOURCE FOOT FOOT               span continuations and completed squares
  pullback FOOT FOOT TARGET             convergence candidates
  objects [TYPE]                        list objects, optionally by type
  morphisms                             list the relation rulebook
  stats                                 session counts
  quit                                  leave the shell

Object tokens are names, types (Theory, Phenomenon, Method, Concept), or *.
Relation tokens are <label> or <*>. Quote multi-word names: "Predictive Coding".
`)
}

func (sh *Shell) fail(err error) {
	fmt.Fprintln(sh.out, errorStyle.Render("error: "+err.Error()))
}

func (sh *Shell) usage(u string) {
	fmt.Fprintln(sh.out, subtleStyle.Render("usage: "+u))
}

func (sh *Shell) noteClipped(n int) {
	if n > 0 {
		fmt.Fprintln(sh.out, subtleStyle.Render(fmt.Sprintf("(%d more not shown; raise shell.max_results)", n)))
	}
}

// clip truncates a result list to the configured maximum and reports how
// many entries were cut. A maximum of zero disables truncation.
func clip[T any](s []T, max int) ([]T, int) {
	if max > 0 && len(s) > max {
		return s[:max], len(s) - max
	}
	return s, 0
}

// tokenize splits a command line on whitespace, keeping double-quoted runs
// together so multi-word object names stay one token.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
