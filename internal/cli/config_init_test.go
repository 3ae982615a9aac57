package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/adminboard/internal/config"
)

func TestConfigInit_CreatesDefaults(t *testing.T) {
	home := setupCLITest(t)

	output, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, output, "Configuration initialized at")

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, 5, cfg.Lists.PageSize)
	assert.Equal(t, "sequence", cfg.Lists.IDStrategy)
}

func TestConfigInit_ExistingWithoutForce(t *testing.T) {
	home := setupCLITest(t)
	existing := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("lists:\n  page_size: 9\n"), 0o600))

	_, err := execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "lists:\n  page_size: 9\n", string(data))
}

func TestConfigInit_ForceOverwritesConfig(t *testing.T) {
	home := setupCLITest(t)
	existing := filepath.Join(home, "config.yaml")
	originalContent := "# old config\noutput:\n  default_format: json\n"
	require.NoError(t, os.WriteFile(existing, []byte(originalContent), 0o600))

	output, err := execute(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, output, "Configuration initialized at")

	newContent, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.NotEqual(t, originalContent, string(newContent))
	assert.Contains(t, string(newContent), "default_format: table")
}
