package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, 5, cfg.Lists.PageSize)
	assert.Equal(t, 3, cfg.Lists.Window)
	assert.Equal(t, "sequence", cfg.Lists.IDStrategy)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		home := isolateHome(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
		assert.Equal(t, Default().Lists, cfg.Lists)
	})

	t.Run("file values", func(t *testing.T) {
		home := isolateHome(t)
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`version: 1.1.0
lists:
  page_size: 10
`), 0o600))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "1.1.0", cfg.Version)
		assert.Equal(t, 10, cfg.Lists.PageSize)
		assert.Equal(t, 3, cfg.Lists.Window, "keys absent from the file keep defaults")
	})

	t.Run("env overrides file", func(t *testing.T) {
		home := isolateHome(t)
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
			[]byte("lists:\n  page_size: 10\n"), 0o600))
		t.Setenv("ADMINBOARD_PAGE_SIZE", "25")
		t.Setenv("ADMINBOARD_ID_STRATEGY", "uuid")
		t.Setenv("ADMINBOARD_LOG_LEVEL", "debug")
		t.Setenv("ADMINBOARD_OUTPUT_FORMAT", "yaml")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Lists.PageSize)
		assert.Equal(t, "uuid", cfg.Lists.IDStrategy)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "yaml", cfg.Output.DefaultFormat)
	})

	t.Run("bad env value", func(t *testing.T) {
		isolateHome(t)
		t.Setenv("ADMINBOARD_PAGE_SIZE", "many")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")

		// New falls back to defaults.
		assert.Equal(t, 5, New().Lists.PageSize)
	})

	t.Run("corrupt file", func(t *testing.T) {
		home := isolateHome(t)
		require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("lists: [\n"), 0o600))

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
	})
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.SetConfigPath(path)
	cfg.Lists.PageSize = 12
	require.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.Lists.PageSize)
	assert.Equal(t, path, loaded.ConfigPath())

	require.Error(t, (&Config{}).Save())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
		errMsg  string
	}{
		{"defaults", func(*Config) {}, nil, ""},
		{"empty version", func(c *Config) { c.Version = "" }, nil, ""},
		{"minor version", func(c *Config) { c.Version = "1.4.2" }, nil, ""},
		{"major version 2", func(c *Config) { c.Version = "2.0.0" }, ErrUnsupportedVersion, ""},
		{"garbage version", func(c *Config) { c.Version = "one" }, ErrUnsupportedVersion, ""},
		{"bad format", func(c *Config) { c.Output.DefaultFormat = "xml" }, ErrInvalidFormat, ""},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLogLevel, ""},
		{"zero page size", func(c *Config) { c.Lists.PageSize = 0 }, nil, "lists.page_size"},
		{"zero window", func(c *Config) { c.Lists.Window = 0 }, nil, "lists.window"},
		{"bad id strategy", func(c *Config) { c.Lists.IDStrategy = "random" }, nil, "lists.id_strategy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)

	lc.File = "/tmp/adminboard.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/adminboard.log", got.File)
}
