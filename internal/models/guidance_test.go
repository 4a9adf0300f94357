package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTemplate(t *testing.T) *Template {
	t.Helper()
	tmpl, err := NewTemplate(Metadata{
		Name:       "Sample",
		Version:    "1.0.0",
		Languages:  []string{"python"},
		Frameworks: []string{"pytest"},
	})
	require.NoError(t, err)

	structure, err := NewGuidanceItem("Structure", "Organize tests by feature.")
	require.NoError(t, err)
	structure.Tags = []string{"structure"}
	structure.Priority = 1
	require.NoError(t, tmpl.AddGuidance(structure))

	fixtures, err := NewGuidanceItem("Fixtures", "Prefer fixtures over setup methods.")
	require.NoError(t, err)
	fixtures.Tags = []string{"fixtures"}
	fixtures.Priority = 2
	require.NoError(t, tmpl.AddGuidance(fixtures))

	return tmpl
}

func TestNewGuidanceItemValidation(t *testing.T) {
	_, err := NewGuidanceItem("", "content")
	assert.Error(t, err)

	_, err = NewGuidanceItem("name", "")
	assert.Error(t, err)

	item, err := NewGuidanceItem("name", "content")
	require.NoError(t, err)
	assert.Equal(t, DefaultPriority, item.Priority)
	assert.Empty(t, item.Tags)
}

func TestMetadataValidate(t *testing.T) {
	err := Metadata{Version: "1.0.0"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	err = Metadata{Name: "x"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")

	assert.NoError(t, Metadata{Name: "x", Version: "1.0.0"}.Validate())
}

func TestAddGuidancePreservesOrderAndDuplicates(t *testing.T) {
	tmpl := sampleTemplate(t)

	dup, err := NewGuidanceItem("Structure", "A second structure item.")
	require.NoError(t, err)
	require.NoError(t, tmpl.AddGuidance(dup))

	require.Len(t, tmpl.Items, 3)
	assert.Equal(t, "Structure", tmpl.Items[0].Name)
	assert.Equal(t, "Fixtures", tmpl.Items[1].Name)
	assert.Equal(t, "Structure", tmpl.Items[2].Name)
}

func TestGuidanceByTag(t *testing.T) {
	tmpl := sampleTemplate(t)

	matches := tmpl.GuidanceByTag("structure")
	require.Len(t, matches, 1)
	assert.Equal(t, "Structure", matches[0].Name)

	// Exact, case-sensitive match
	assert.Empty(t, tmpl.GuidanceByTag("Structure"))
	assert.Empty(t, tmpl.GuidanceByTag("missing"))
}

func TestGuidanceByPriority(t *testing.T) {
	tmpl := sampleTemplate(t)

	atLeast := tmpl.GuidanceByPriority(2, PriorityAtLeast)
	require.Len(t, atLeast, 1)
	assert.Equal(t, "Fixtures", atLeast[0].Name)

	atMost := tmpl.GuidanceByPriority(1, PriorityAtMost)
	require.Len(t, atMost, 1)
	assert.Equal(t, "Structure", atMost[0].Name)

	all := tmpl.GuidanceByPriority(1, PriorityAtLeast)
	require.Len(t, all, 2)
	assert.Equal(t, "Structure", all[0].Name, "original order preserved")
}

func TestParsePriorityMode(t *testing.T) {
	mode, err := ParsePriorityMode("at-least")
	require.NoError(t, err)
	assert.Equal(t, PriorityAtLeast, mode)

	mode, err = ParsePriorityMode(" AT-MOST ")
	require.NoError(t, err)
	assert.Equal(t, PriorityAtMost, mode)

	_, err = ParsePriorityMode("sideways")
	assert.Error(t, err)
}

func TestTags(t *testing.T) {
	tmpl := sampleTemplate(t)
	assert.Equal(t, []string{"fixtures", "structure"}, tmpl.Tags())
}

func TestWarnings(t *testing.T) {
	tmpl := sampleTemplate(t)
	assert.Empty(t, tmpl.Warnings())

	dup, err := NewGuidanceItem("Structure", "dup")
	require.NoError(t, err)
	require.NoError(t, tmpl.AddGuidance(dup))

	warnings := tmpl.Warnings()
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "duplicate item name")
}

func TestTemplateID(t *testing.T) {
	tmpl := sampleTemplate(t)
	assert.Equal(t, "sample", tmpl.ID())

	tmpl.FilePath = "templates/python-testing.yaml"
	assert.Equal(t, "python-testing", tmpl.ID())

	// FilePath is built with filepath.Join, so the id must not depend on
	// the separator being a forward slash.
	tmpl.FilePath = filepath.Join("templates", "nested", "python-testing.yml")
	assert.Equal(t, "python-testing", tmpl.ID())
	assert.NotContains(t, tmpl.ID(), string(filepath.Separator))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "go-style-guide", Slugify("Go Style Guide"))
	assert.Equal(t, "a-b", Slugify("  A__B!! "))
	assert.Equal(t, "v1-2", Slugify("v1.2"))
}
