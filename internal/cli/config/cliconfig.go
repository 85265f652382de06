// Package config defines the CLI configuration structure.
package config

import "github.com/yndnr/twokey-go/internal/telemetry/logger"

// Default configuration values.
const (
	DefaultOutput      = "table"
	DefaultSeparator   = "-"
	DefaultHistorySize = 1000
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"

	// EnvPrefix marks environment variables that override config keys.
	EnvPrefix = "TWOKEY_"
)

// CLIConfig is the configuration for twokey-cli.
type CLIConfig struct {
	// Output is the result format: table, json or yaml.
	Output string `koanf:"output" json:"output" yaml:"output"`
	// Wide disables value truncation in table output.
	Wide bool `koanf:"wide" json:"wide" yaml:"wide"`
	// Separator joins outer and inner keys in flatten results.
	Separator string `koanf:"separator" json:"separator" yaml:"separator"`

	History HistoryConfig `koanf:"history" json:"history" yaml:"history"`
	Log     LogConfig     `koanf:"log" json:"log" yaml:"log"`
}

// HistoryConfig controls the REPL command history.
type HistoryConfig struct {
	// File is where history persists between sessions. Empty disables it.
	File string `koanf:"file" json:"file" yaml:"file"`
	Size int    `koanf:"size" json:"size" yaml:"size"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Output:    DefaultOutput,
		Separator: DefaultSeparator,
		History: HistoryConfig{
			File: DefaultHistoryPath(),
			Size: DefaultHistorySize,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// defaultValues mirrors Default as dotted koanf keys.
func defaultValues() map[string]any {
	d := Default()
	return map[string]any{
		"output":       d.Output,
		"wide":         d.Wide,
		"separator":    d.Separator,
		"history.file": d.History.File,
		"history.size": d.History.Size,
		"log.level":    d.Log.Level,
		"log.format":   d.Log.Format,
	}
}

// LoggerConfig converts the log section into a logger configuration.
func (c *CLIConfig) LoggerConfig() logger.Config {
	lc := logger.DefaultConfig()
	if c.Log.Level != "" {
		lc.Level = c.Log.Level
	}
	if c.Log.Format != "" {
		lc.Format = c.Log.Format
	}
	return lc
}
