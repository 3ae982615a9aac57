package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points ADMINBOARD_HOME at a fresh temp dir and clears the
// environment overrides.
func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)
	for _, name := range []string{
		"ADMINBOARD_LOG_LEVEL", "ADMINBOARD_LOG_FORMAT", "ADMINBOARD_LOG_FILE",
		"ADMINBOARD_OUTPUT_FORMAT", "ADMINBOARD_PAGE_SIZE", "ADMINBOARD_ID_STRATEGY",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	return dir
}

func TestGlobalConfig(t *testing.T) {
	isolateHome(t)

	cfg := GetGlobalConfig()
	assert.NotNil(t, cfg)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)

	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)
}

func TestConfigGetters(t *testing.T) {
	isolateHome(t)

	cfg := GetGlobalConfig()
	cfg.Output.DefaultFormat = "json"
	cfg.Lists.PageSize = 7
	cfg.Lists.IDStrategy = "uuid"
	cfg.Lists.Window = 5
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/tmp/test.log"

	assert.Equal(t, "json", GetDefaultOutputFormat())
	assert.Equal(t, 7, GetPageSize())
	assert.Equal(t, "uuid", GetIDStrategy())
	assert.Equal(t, 5, GetWindowSize())
	assert.Equal(t, "debug", GetLogLevel())
	assert.Equal(t, "/tmp/test.log", GetLogFile())
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestEnsureConfigDir(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv(EnvHome, "")
	os.Unsetenv(EnvHome)
	t.Setenv("HOME", tmpHome)
	t.Setenv("USERPROFILE", tmpHome)

	require.NoError(t, EnsureConfigDir())

	stat, err := os.Stat(filepath.Join(tmpHome, ".adminboard"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	isolateHome(t)
	tmpDir := t.TempDir()

	cfg := GetGlobalConfig()
	cfg.Logging.File = filepath.Join(tmpDir, "logs", "subdir", "test.log")

	require.NoError(t, EnsureLogDir())

	stat, err := os.Stat(filepath.Join(tmpDir, "logs", "subdir"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDirError(t *testing.T) {
	isolateHome(t)
	cfg := GetGlobalConfig()

	tmpFile, err := os.CreateTemp(t.TempDir(), "test-file")
	require.NoError(t, err)
	tmpFile.Close()

	// A regular file cannot hold a subdirectory.
	cfg.Logging.File = filepath.Join(tmpFile.Name(), "subdir", "test.log")

	assert.Error(t, EnsureLogDir())
}

func TestGetConfigDir(t *testing.T) {
	dir := isolateHome(t)

	got, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestInitGlobalConfigWithOverlay(t *testing.T) {
	ctx := context.Background()

	t.Run("overlay replaces sections", func(t *testing.T) {
		home := isolateHome(t)
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`output:
  default_format: json
lists:
  page_size: 8
  id_strategy: ulid
  window: 3
`), 0o644))

		overlay := filepath.Join(t.TempDir(), "overlay.yaml")
		require.NoError(t, os.WriteFile(overlay, []byte(`lists:
  page_size: 20
  id_strategy: count
  window: 5
`), 0o644))

		InitGlobalConfigWithOverlay(ctx, overlay)
		cfg := GetGlobalConfig()

		assert.Equal(t, "json", cfg.Output.DefaultFormat, "inherited from config file")
		assert.Equal(t, 20, cfg.Lists.PageSize)
		assert.Equal(t, "count", cfg.Lists.IDStrategy)
	})

	t.Run("env still wins over overlay", func(t *testing.T) {
		isolateHome(t)
		t.Setenv("ADMINBOARD_PAGE_SIZE", "3")

		overlay := filepath.Join(t.TempDir(), "overlay.yaml")
		require.NoError(t, os.WriteFile(overlay, []byte("lists:\n  page_size: 20\n  window: 3\n"), 0o644))

		InitGlobalConfigWithOverlay(ctx, overlay)
		assert.Equal(t, 3, GetPageSize())
	})

	t.Run("broken overlay is skipped", func(t *testing.T) {
		isolateHome(t)

		InitGlobalConfigWithOverlay(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Equal(t, 5, GetPageSize())
	})

	t.Run("empty overlay matches New", func(t *testing.T) {
		isolateHome(t)

		InitGlobalConfigWithOverlay(ctx, "")
		got := GetGlobalConfig()
		want := New()
		assert.Equal(t, want.Lists, got.Lists)
		assert.Equal(t, want.Output, got.Output)
		assert.Equal(t, want.Logging, got.Logging)
	})
}
