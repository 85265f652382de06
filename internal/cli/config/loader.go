package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/twokey-go/internal/infra/confloader"
	"github.com/yndnr/twokey-go/internal/telemetry/logger"
)

// Supported output formats.
var outputFormats = []string{"table", "json", "yaml"}

// Supported log settings.
var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"text", "console", "json"}
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	return filepath.Join(baseDir(), "cli.yaml")
}

// DefaultHistoryPath returns the default REPL history file path.
func DefaultHistoryPath() string {
	return filepath.Join(baseDir(), "history")
}

func baseDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return ".twokey"
	}
	return filepath.Join(homeDir, ".twokey")
}

// Load builds the CLI configuration from defaults, the YAML file at path,
// TWOKEY_* environment variables and flag overrides, in increasing
// priority. A missing file is not an error. An empty path uses
// DefaultConfigPath.
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	opts := []confloader.Option{
		confloader.WithEnvPrefix(EnvPrefix),
		confloader.WithDefaults(defaultValues()),
		confloader.WithOverrides(overrides),
	}
	if _, err := os.Stat(path); err == nil {
		opts = append(opts, confloader.WithConfigFile(path))
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	cfg := &CLIConfig{}
	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}
	logger.Default().Debug("configuration merged", "file", loader.FilePath(), "keys", len(loader.All()))
	if err := Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML with owner-only permissions.
func Save(cfg *CLIConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// Verify validates the configuration.
func Verify(cfg *CLIConfig) error {
	if !slices.Contains(outputFormats, strings.ToLower(cfg.Output)) {
		return fmt.Errorf("output must be one of %s, got %q", strings.Join(outputFormats, ", "), cfg.Output)
	}
	if cfg.History.Size < 0 {
		return errors.New("history.size must not be negative")
	}
	if !slices.Contains(logLevels, strings.ToLower(cfg.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s, got %q", strings.Join(logLevels, ", "), cfg.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(cfg.Log.Format)) {
		return fmt.Errorf("log.format must be one of %s, got %q", strings.Join(logFormats, ", "), cfg.Log.Format)
	}
	return nil
}
