package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RULEBOOK_DIR", "")
	os.Unsetenv("RULEBOOK_DIR")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.LibraryDir)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, []string{"cursor", "copilot", "claude"}, cfg.Targets)
	assert.Equal(t, "at-least", cfg.PriorityMode)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RULEBOOK_DIR", dir)
	t.Setenv("RULEBOOK_OUTPUT", "/tmp/out")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.LibraryDir)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
}

func TestLoadFlagWinsOverEnv(t *testing.T) {
	t.Setenv("RULEBOOK_DIR", "/somewhere/else")
	flagDir := t.TempDir()

	cfg, err := Load(flagDir)
	require.NoError(t, err)
	assert.Equal(t, flagDir, cfg.LibraryDir)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "output_dir: build/rules\ntargets:\n  - cursor\npriority_mode: at-most\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "build/rules", cfg.OutputDir)
	assert.Equal(t, []string{"cursor"}, cfg.Targets)
	assert.Equal(t, "at-most", cfg.PriorityMode)
}
