package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rshade/adminboard/internal/logging"
)

// EnvHome overrides the configuration directory.
const EnvHome = "ADMINBOARD_HOME"

// GlobalConfig holds the global configuration instance.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfigInit flag
var globalConfigInit bool       //nolint:gochecknoglobals // Tracks if global config has been initialized

// InitGlobalConfig initializes the global configuration.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if globalConfigInit {
		return
	}

	GlobalConfig = New()
	globalConfigInit = true
}

// InitGlobalConfigWithOverlay initializes the global configuration and then
// shallow-merges the YAML file at overlayPath on top of it. Environment
// overrides are re-applied last so they still win. A failed overlay is logged
// and skipped.
func InitGlobalConfigWithOverlay(ctx context.Context, overlayPath string) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	cfg := New()
	if overlayPath != "" {
		if err := ShallowMergeYAML(cfg, overlayPath); err != nil {
			log := logging.FromContext(ctx)
			log.Warn().
				Str("component", "config").
				Str("overlay", overlayPath).
				Err(err).
				Msg("ignoring config overlay")
		} else {
			_ = ApplyEnv(cfg)
		}
	}

	GlobalConfig = cfg
	globalConfigInit = true
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = nil
	globalConfigInit = false
}

// GetGlobalConfig returns the global configuration, initializing it if needed.
func GetGlobalConfig() *Config {
	InitGlobalConfig()
	return GlobalConfig
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	cfg := GetGlobalConfig()
	return cfg.Output.DefaultFormat
}

// GetPageSize returns the configured list page size.
func GetPageSize() int {
	cfg := GetGlobalConfig()
	return cfg.Lists.PageSize
}

// GetIDStrategy returns the configured id strategy name.
func GetIDStrategy() string {
	cfg := GetGlobalConfig()
	return cfg.Lists.IDStrategy
}

// GetWindowSize returns the configured page-link window.
func GetWindowSize() int {
	cfg := GetGlobalConfig()
	return cfg.Lists.Window
}

// GetLogLevel returns the configured log level.
func GetLogLevel() string {
	cfg := GetGlobalConfig()
	return cfg.Logging.Level
}

// GetLogFile returns the configured log file path.
func GetLogFile() string {
	cfg := GetGlobalConfig()
	return cfg.Logging.File
}

// EnsureConfigDir ensures the adminboard configuration directory exists.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// EnsureLogDir ensures the directory for the configured log file exists.
// It does nothing when no log file is configured.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(cfg.Logging.File)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}

// GetConfigDir returns the path to the adminboard configuration directory:
// $ADMINBOARD_HOME if set, otherwise ~/.adminboard.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".adminboard"), nil
}
