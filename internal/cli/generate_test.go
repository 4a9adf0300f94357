package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulebook-dev/rulebook/internal/models"
)

// resetGenerateFlags restores the shared flag state after a test; cobra
// flag vars are package-level, so Changed bits and values leak otherwise.
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		generateTag = ""
		generateTagsExpr = ""
		generatePriority = 0
		generatePriorityMode = ""
		for _, name := range []string{"priority", "priority-mode", "tag", "tags"} {
			if f := generateCmd.Flags().Lookup(name); f != nil {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			}
		}
	})
}

func TestBuildItemFilterPriorityFlag(t *testing.T) {
	resetGenerateFlags(t)

	require.NoError(t, generateCmd.Flags().Set("priority", "2"))

	filter, err := buildItemFilter(generateCmd, "at-most")
	require.NoError(t, err)
	require.NotNil(t, filter.Priority)
	assert.Equal(t, 2, *filter.Priority)
	assert.Equal(t, models.PriorityAtMost, filter.Mode)
}

func TestBuildItemFilterPriorityModeFlagWins(t *testing.T) {
	resetGenerateFlags(t)

	require.NoError(t, generateCmd.Flags().Set("priority", "1"))
	require.NoError(t, generateCmd.Flags().Set("priority-mode", "at-least"))

	filter, err := buildItemFilter(generateCmd, "at-most")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityAtLeast, filter.Mode)
}

func TestBuildItemFilterUnsetPriority(t *testing.T) {
	resetGenerateFlags(t)

	filter, err := buildItemFilter(generateCmd, "at-least")
	require.NoError(t, err)
	assert.Nil(t, filter.Priority)
}

func TestBuildItemFilterBadExpression(t *testing.T) {
	resetGenerateFlags(t)

	generateTagsExpr = "go AND ("
	_, err := buildItemFilter(generateCmd, "at-least")
	assert.Error(t, err)
}
