package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/adminboard/internal/listctl"
	"github.com/rshade/adminboard/internal/pagination"
)

// Config file defaults.
const (
	// CurrentVersion is written by config init.
	CurrentVersion = "1.0.0"
	// SupportedVersions is the constraint every config file version must meet.
	SupportedVersions = "^1"

	configFileName = "config.yaml"

	defaultOutputFormat = "table"
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
)

// Output formats accepted by list commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidFormat      = errors.New("invalid output format")
	ErrInvalidLogLevel    = errors.New("invalid log level")
)

// Config is the adminboard configuration file.
type Config struct {
	Version string        `yaml:"version"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Lists   ListsConfig   `yaml:"lists"`

	configPath string
}

// LoggingConfig controls log level, format, and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"            env:"ADMINBOARD_LOG_LEVEL"`
	Format string `yaml:"format"           env:"ADMINBOARD_LOG_FORMAT"`
	File   string `yaml:"file,omitempty"   env:"ADMINBOARD_LOG_FILE"`
	Caller bool   `yaml:"caller,omitempty"`
}

// OutputConfig controls how list commands render.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"ADMINBOARD_OUTPUT_FORMAT"`
	// Currency is the ISO code prices are rendered in.
	Currency string `yaml:"currency"`
}

// ListsConfig controls list controller behavior.
type ListsConfig struct {
	PageSize   int    `yaml:"page_size"   env:"ADMINBOARD_PAGE_SIZE"`
	IDStrategy string `yaml:"id_strategy" env:"ADMINBOARD_ID_STRATEGY"`
	Window     int    `yaml:"window"`
}

// Default returns a configuration holding built-in defaults only. It reads
// neither the config file nor the environment.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Output: OutputConfig{
			DefaultFormat: defaultOutputFormat,
			Currency:      "USD",
		},
		Lists: ListsConfig{
			PageSize:   pagination.DefaultPageSize,
			IDStrategy: listctl.IDStrategySequence,
			Window:     pagination.DefaultWindowSize,
		},
	}
}

// New returns the effective configuration: defaults, then the config file
// if present, then environment overrides. A config file that cannot be read
// is ignored; use Load to see the error.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		cfg = Default()
		cfg.setDefaultPath()
		_ = ApplyEnv(cfg)
	}
	return cfg
}

// Load reads the config file at the default path. A missing file is not an
// error.
func Load() (*Config, error) {
	cfg := Default()
	cfg.setDefaultPath()

	if err := cfg.loadFile(cfg.configPath); err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads path on top of the defaults without applying environment
// overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaultPath() {
	dir, err := GetConfigDir()
	if err != nil {
		return
	}
	c.configPath = filepath.Join(dir, configFileName)
}

func (c *Config) loadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// ConfigPath returns the file this configuration is read from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// CheckVersion verifies the file version satisfies SupportedVersions. An
// empty version is treated as current.
func (c *Config) CheckVersion() error {
	if c.Version == "" {
		return nil
	}
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, c.Version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

// Validate checks every section for semantic errors.
func (c *Config) Validate() error {
	if err := c.CheckVersion(); err != nil {
		return err
	}

	if !slices.Contains([]string{FormatTable, FormatJSON, FormatYAML}, c.Output.DefaultFormat) {
		return fmt.Errorf("%w: %q (valid: table, json, yaml)", ErrInvalidFormat, c.Output.DefaultFormat)
	}

	if !slices.Contains([]string{"trace", "debug", "info", "warn", "error"}, c.Logging.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	params := pagination.Params{Page: pagination.DefaultPage, PageSize: c.Lists.PageSize}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("lists.page_size: %w", err)
	}

	if c.Lists.Window < 1 {
		return fmt.Errorf("lists.window must be positive, got %d", c.Lists.Window)
	}

	if _, err := listctl.NewIDGenerator(c.Lists.IDStrategy); err != nil {
		return fmt.Errorf("lists.id_strategy: %w", err)
	}

	return nil
}
