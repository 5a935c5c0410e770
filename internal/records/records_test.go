// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package records

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/claimgraph/pkg/types"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadObjects(t *testing.T) {
	path := writeCSV(t, "c_objects.csv",
		"ObjectID,Name,Type,Description\n"+
			"theory:pc,Predictive Coding,Theory,Brains minimize prediction error.\n"+
			"method:eeg,EEG,Method,\n")

	objects, err := LoadObjects(path)
	require.NoError(t, err)
	require.Len(t, objects, 2)

	assert.Equal(t, types.Object{
		ID:          "theory:pc",
		Name:        "Predictive Coding",
		Type:        types.TypeTheory,
		Description: "Brains minimize prediction error.",
	}, objects[0])
	assert.Equal(t, "method:eeg", objects[1].ID)
	assert.Empty(t, objects[1].Description)
}

func TestLoadObjectsPreservesRowOrder(t *testing.T) {
	path := writeCSV(t, "c_objects.csv",
		"ObjectID,Name,Type\nz:1,Zed,Theory\na:1,Ay,Method\nm:1,Em,Concept\n")

	objects, err := LoadObjects(path)
	require.NoError(t, err)

	got := []string{objects[0].ID, objects[1].ID, objects[2].ID}
	assert.Equal(t, []string{"z:1", "a:1", "m:1"}, got)
}

func TestLoadMorphisms(t *testing.T) {
	path := writeCSV(t, "c_morphisms.csv",
		"MorphismID,SourceType,TargetType,Label\n"+
			"uses,Theory,Method,uses\n"+
			"supports,,,provides support for\n")

	morphisms, err := LoadMorphisms(path)
	require.NoError(t, err)
	require.Len(t, morphisms, 2)

	assert.Equal(t, types.TypeTheory, morphisms[0].SourceType)
	assert.Equal(t, "provides support for", morphisms[1].Label)
	assert.Empty(t, morphisms[1].SourceType)
}

func TestLoadEvidence(t *testing.T) {
	path := writeCSV(t, "c_evidence.csv",
		"EvidenceID,CitationKey,SourceID,MorphismID,TargetID,Notes\n"+
			`1,Smith2019,theory:pc,uses,method:eeg,"Quote, with comma"`+"\n"+
			"2,Jones2020,method:eeg,investigates,phenomenon:mmn\n")

	evidence, err := LoadEvidence(path)
	require.NoError(t, err)
	require.Len(t, evidence, 2)

	assert.Equal(t, "Quote, with comma", evidence[0].Notes)
	// A ragged row with no Notes column normalizes to empty.
	assert.Empty(t, evidence[1].Notes)
	assert.Equal(t, "Jones2020", evidence[1].CitationKey)
}

func TestLoadPapers(t *testing.T) {
	path := writeCSV(t, "papers.csv",
		"CitationKey,Authors,Year,Title,Publication,URL\n"+
			`Smith2019,"Smith, J., Doe, A.",2019,A Paper,Nature,https://example.org/a.pdf`+"\n"+
			"Noyear0000,Someone,,Untitled,,\n")

	papers, err := LoadPapers(path)
	require.NoError(t, err)
	require.Len(t, papers, 2)

	assert.Equal(t, 2019, papers[0].Year)
	assert.Equal(t, "Smith, J., Doe, A.", papers[0].Authors)
	assert.Zero(t, papers[1].Year, "unparseable year reads as zero")
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		load    func(string) error
		content string
		errPart string
	}{
		{
			name:    "missing file",
			load:    func(p string) error { _, err := LoadObjects(p + ".nope"); return err },
			content: "ObjectID,Name,Type\n",
			errPart: "opening",
		},
		{
			name:    "missing required column",
			load:    func(p string) error { _, err := LoadObjects(p); return err },
			content: "ObjectID,Label\n",
			errPart: `missing required column "Name"`,
		},
		{
			name:    "empty file",
			load:    func(p string) error { _, err := LoadEvidence(p); return err },
			content: "",
			errPart: "empty file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, "input.csv", tt.content)
			err := tt.load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestPapersByKey(t *testing.T) {
	papers := []types.Paper{
		{CitationKey: "Smith2019", Title: "First"},
		{CitationKey: "Smith2019", Title: "Duplicate"},
		{CitationKey: "Jones2020", Title: "Second"},
	}

	byKey := PapersByKey(papers)
	assert.Len(t, byKey, 2)
	assert.Equal(t, "First", byKey["Smith2019"].Title, "first row wins on duplicate keys")
}
