package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no stray config or
// .env file is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.True(t, cfg.History)
	assert.Equal(t, 1, cfg.Presentation.StartSlide)
	assert.Equal(t, 10, cfg.Presentation.SwipeThreshold)
	assert.Equal(t, "dark", cfg.Presentation.MarkdownStyle)
	assert.True(t, cfg.Presentation.Splash)
	assert.False(t, cfg.Presentation.Fullscreen)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "ecoslides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: production
history: false
presentation:
  start_slide: 9
  markdown_style: notty
`), 0o644))

	t.Setenv("ECOSLIDES_PRESENTATION_SWIPE_THRESHOLD", "4")
	t.Setenv("ECOSLIDES_DB_PATH", "/tmp/eco.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.History)
	assert.Equal(t, 9, cfg.Presentation.StartSlide)
	assert.Equal(t, "notty", cfg.Presentation.MarkdownStyle)
	assert.Equal(t, 4, cfg.Presentation.SwipeThreshold)
	assert.Equal(t, "/tmp/eco.db", cfg.DBPath)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ECOSLIDES_LOG_FILE=eco.log\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("ECOSLIDES_LOG_FILE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "eco.log", cfg.LogFile)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := chdirTemp(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{Presentation: Presentation{StartSlide: 0, SwipeThreshold: 0, MarkdownStyle: "neon"}}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "start_slide")
	assert.Contains(t, err.Error(), "swipe_threshold")
	assert.Contains(t, err.Error(), "neon")
}
