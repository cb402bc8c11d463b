package config

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/matchdaycli/matchday/internal/errors"
)

// DefaultPageSize is one market page, matching the backend's limit default.
const DefaultPageSize = 50

// Config holds the client configuration.
//
// Values are resolved in order: defaults, then ~/.matchday/config.yaml,
// then MATCHDAY_* environment variables.
type Config struct {
	BaseURL   string `yaml:"base_url" envconfig:"MATCHDAY_BASE_URL"`
	PageSize  int    `yaml:"page_size" envconfig:"MATCHDAY_PAGE_SIZE"`
	LogLevel  string `yaml:"log_level" envconfig:"MATCHDAY_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" envconfig:"MATCHDAY_LOG_FORMAT"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://localhost:8000",
		PageSize:  DefaultPageSize,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Dir returns the matchday config directory (~/.matchday), creating nothing.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigRead, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".matchday"), nil
}

// Path returns the config file path (~/.matchday/config.yaml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load resolves the effective configuration from defaults, the config file,
// and environment overrides.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := Path()
	if err != nil {
		return cfg, err
	}
	if err := loadFile(path, &cfg); err != nil {
		return cfg, err
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeConfigInvalid, "invalid environment override", err)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return cfg, nil
}

// LoadFile resolves the configuration from defaults plus a specific file,
// without environment overrides. Used by the config subcommands so that
// view/get/set operate on the file contents alone.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := loadFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeConfigRead, "cannot read config file", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "cannot parse config file", err)
	}
	return nil
}

// Save writes the configuration to the given path, creating the directory
// as needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "cannot create config directory", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "cannot encode config", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "cannot write config file", err)
	}
	return nil
}
