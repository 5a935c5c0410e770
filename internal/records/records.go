// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package records loads the four CSV record sets a claimgraph session is
// built from: objects, the morphism rulebook, evidence, and the paper
// bibliography. Rows come back in file order; the graph store depends on
// that ordering for deterministic query results.
// Implements: prd001-ingestion; docs/ARCHITECTURE § Record Ingestion.
package records

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/claimgraph/pkg/types"
)

// table is one parsed CSV file: a header-to-column index and the data rows.
type table struct {
	path    string
	columns map[string]int
	rows    [][]string
}

// readTable parses a CSV file and indexes its header. A missing file or an
// unreadable header is an error; record loading failures are fatal to
// session startup, never recovered from per-row.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows: missing trailing fields read as empty

	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%s: empty file, expected a header row", path)
	}

	columns := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		columns[strings.TrimSpace(name)] = i
	}
	return &table{path: path, columns: columns, rows: all[1:]}, nil
}

// require verifies the named columns exist in the header.
func (t *table) require(names ...string) error {
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			return fmt.Errorf("%s: missing required column %q", t.path, name)
		}
	}
	return nil
}

// field returns the named column of a row, or "" when the row is too short
// or the column is absent.
func (t *table) field(row []string, name string) string {
	i, ok := t.columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// LoadObjects reads the object record set (c_objects.csv).
func LoadObjects(path string) ([]types.Object, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require("ObjectID", "Name", "Type"); err != nil {
		return nil, err
	}

	objects := make([]types.Object, 0, len(t.rows))
	for _, row := range t.rows {
		objects = append(objects, types.Object{
			ID:          t.field(row, "ObjectID"),
			Name:        t.field(row, "Name"),
			Type:        types.ObjectType(t.field(row, "Type")),
			Description: t.field(row, "Description"),
		})
	}
	return objects, nil
}

// LoadMorphisms reads the relation rulebook (c_morphisms.csv).
func LoadMorphisms(path string) ([]types.Morphism, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require("MorphismID", "Label"); err != nil {
		return nil, err
	}

	morphisms := make([]types.Morphism, 0, len(t.rows))
	for _, row := range t.rows {
		morphisms = append(morphisms, types.Morphism{
			ID:         t.field(row, "MorphismID"),
			Label:      t.field(row, "Label"),
			SourceType: types.ObjectType(t.field(row, "SourceType")),
			TargetType: types.ObjectType(t.field(row, "TargetType")),
		})
	}
	return morphisms, nil
}

// LoadEvidence reads the evidence record set (c_evidence.csv). An absent
// Notes value normalizes to the empty string.
func LoadEvidence(path string) ([]types.Evidence, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require("EvidenceID", "CitationKey", "SourceID", "MorphismID", "TargetID"); err != nil {
		return nil, err
	}

	evidence := make([]types.Evidence, 0, len(t.rows))
	for _, row := range t.rows {
		evidence = append(evidence, types.Evidence{
			ID:          t.field(row, "EvidenceID"),
			CitationKey: t.field(row, "CitationKey"),
			SourceID:    t.field(row, "SourceID"),
			MorphismID:  t.field(row, "MorphismID"),
			TargetID:    t.field(row, "TargetID"),
			Notes:       t.field(row, "Notes"),
		})
	}
	return evidence, nil
}

// LoadPapers reads the bibliography (papers.csv). An unparseable year reads
// as zero rather than failing the load.
func LoadPapers(path string) ([]types.Paper, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.require("CitationKey", "Authors", "Title"); err != nil {
		return nil, err
	}

	papers := make([]types.Paper, 0, len(t.rows))
	for _, row := range t.rows {
		year, _ := strconv.Atoi(t.field(row, "Year"))
		papers = append(papers, types.Paper{
			CitationKey: t.field(row, "CitationKey"),
			Authors:     t.field(row, "Authors"),
			Year:        year,
			Title:       t.field(row, "Title"),
			Publication: t.field(row, "Publication"),
			URL:         t.field(row, "URL"),
		})
	}
	return papers, nil
}

// PapersByKey indexes a paper list by citation key for rendering lookups.
// With duplicate keys the first row wins.
func PapersByKey(papers []types.Paper) map[string]types.Paper {
	byKey := make(map[string]types.Paper, len(papers))
	for _, p := range papers {
		if _, ok := byKey[p.CitationKey]; !ok {
			byKey[p.CitationKey] = p
		}
	}
	return byKey
}
