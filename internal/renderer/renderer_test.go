package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rulebook-dev/rulebook/internal/errors"
	"github.com/rulebook-dev/rulebook/internal/models"
)

func renderTemplate(t *testing.T) *models.Template {
	t.Helper()
	tmpl, err := models.NewTemplate(models.Metadata{
		Name:        "Python Testing",
		Version:     "1.0.0",
		Description: "Testing guidance for Python projects",
		Languages:   []string{"python"},
		Frameworks:  []string{"pytest"},
		Categories:  []string{"testing"},
	})
	require.NoError(t, err)

	structure, err := models.NewGuidanceItem("Structure", "Mirror the package layout in tests/.")
	require.NoError(t, err)
	structure.Description = "How to lay out test files"
	structure.Tags = []string{"structure"}
	structure.Priority = 1
	require.NoError(t, tmpl.AddGuidance(structure))

	fixtures, err := models.NewGuidanceItem("Fixtures", "Share setup through fixtures:\n\n```python\n@pytest.fixture\ndef db():\n    ...\n```")
	require.NoError(t, err)
	fixtures.Tags = []string{"fixtures", "pytest"}
	fixtures.Priority = 2
	require.NoError(t, tmpl.AddGuidance(fixtures))

	return tmpl
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget(" Cursor ")
	require.NoError(t, err)
	assert.Equal(t, TargetCursor, target)

	_, err = ParseTarget("emacs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claude")
}

func TestFilenameConvention(t *testing.T) {
	cases := map[Target]string{
		TargetCursor:  "python-testing-cursor.mdc",
		TargetCopilot: "python-testing-copilot.md",
		TargetClaude:  "python-testing-claude.md",
	}
	for target, want := range cases {
		r, err := ForTarget(target)
		require.NoError(t, err)
		assert.Equal(t, want, r.Filename("python-testing"))
	}
}

func TestRenderDeterminism(t *testing.T) {
	tmpl := renderTemplate(t)
	for _, r := range All() {
		first, err := r.Render(tmpl)
		require.NoError(t, err)
		second, err := r.Render(tmpl)
		require.NoError(t, err)
		assert.Equal(t, first, second, "target %s not deterministic", r.Target())
	}
}

func TestRenderContentParity(t *testing.T) {
	tmpl := renderTemplate(t)

	for _, r := range All() {
		doc, err := r.Render(tmpl)
		require.NoError(t, err)

		// Semantic content must appear in every dialect.
		assert.Contains(t, doc, tmpl.Metadata.Name, "target %s", r.Target())
		for _, item := range tmpl.Items {
			assert.Contains(t, doc, item.Name, "target %s missing item name", r.Target())
			if item.Description != "" {
				assert.Contains(t, doc, item.Description, "target %s missing description", r.Target())
			}
			for _, tag := range item.Tags {
				assert.Contains(t, doc, tag, "target %s missing tag", r.Target())
			}
		}
	}
}

func TestRenderPreservesItemOrder(t *testing.T) {
	tmpl := renderTemplate(t)
	for _, r := range All() {
		doc, err := r.Render(tmpl)
		require.NoError(t, err)
		first := strings.Index(doc, "Structure")
		second := strings.Index(doc, "Fixtures")
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, second, 0)
		assert.Less(t, first, second, "target %s reordered items", r.Target())
	}
}

func TestRenderRejectsNamelessTemplate(t *testing.T) {
	tmpl := renderTemplate(t)
	tmpl.Metadata.Name = ""
	for _, r := range All() {
		_, err := r.Render(tmpl)
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRender), "target %s", r.Target())
	}
}

func TestFenceWidensAroundBackticks(t *testing.T) {
	tmpl := renderTemplate(t)
	r, err := ForTarget(TargetCopilot)
	require.NoError(t, err)
	doc, err := r.Render(tmpl)
	require.NoError(t, err)

	// The fixtures item contains a ``` block, so its fence must be wider.
	assert.Contains(t, doc, "````\nShare setup through fixtures:")
}

func TestCursorFrontMatter(t *testing.T) {
	tmpl := renderTemplate(t)
	r, err := ForTarget(TargetCursor)
	require.NoError(t, err)
	doc, err := r.Render(tmpl)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "---\n"), "cursor output starts with front matter")
	assert.Contains(t, doc, "description: Testing guidance for Python projects")
	assert.Contains(t, doc, "alwaysApply: true")
}
