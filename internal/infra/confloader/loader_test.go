package confloader

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Output  string `koanf:"output"`
	History struct {
		File string `koanf:"file"`
		Size int    `koanf:"size"`
	} `koanf:"history"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// value returns the merged value for key as text.
func value(l *Loader, key string) string {
	return fmt.Sprint(l.All()[key])
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/cli.yaml"),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.FilePath() != "/path/to/cli.yaml" {
		t.Errorf("FilePath() = %q, want %q", l.FilePath(), "/path/to/cli.yaml")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
output: json
history:
  size: 42
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := value(l, "output"); got != "json" {
		t.Errorf("output = %q, want %q", got, "json")
	}
	if got := value(l, "history.size"); got != "42" {
		t.Errorf("history.size = %s, want 42", got)
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/cli.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("TWOKEY_LOG_LEVEL", "debug")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := value(l, "log.level"); got != "debug" {
		t.Errorf("log.level = %q, want %q", got, "debug")
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_HISTORY_SIZE", "9")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := value(l, "history.size"); got != "9" {
		t.Errorf("history.size = %s, want 9", got)
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	if err := l.LoadMap(map[string]any{
		"history.file": "/tmp/h",
		"output":       "yaml",
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if got := value(l, "history.file"); got != "/tmp/h" {
		t.Errorf("history.file = %q, want %q", got, "/tmp/h")
	}
	if got := value(l, "output"); got != "yaml" {
		t.Errorf("output = %q, want %q", got, "yaml")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
output: from-file
history:
  size: 10
log:
  level: error
`)
	t.Setenv("TWOKEY_LOG_LEVEL", "debug")

	l := NewLoader(
		WithConfigFile(path),
		WithDefaults(map[string]any{
			"output":       "table",
			"history.size": 1000,
			"history.file": "default-file",
		}),
		WithOverrides(map[string]any{"output": "json"}),
	)

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Output = %q, want %q (override should win)", cfg.Output, "json")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q (env should override file)", cfg.Log.Level, "debug")
	}
	if cfg.History.Size != 10 {
		t.Errorf("History.Size = %d, want 10 (file should override default)", cfg.History.Size)
	}
	if cfg.History.File != "default-file" {
		t.Errorf("History.File = %q, want %q (default)", cfg.History.File, "default-file")
	}
}

func TestLoader_Load_BadFile(t *testing.T) {
	path := writeConfig(t, "output: [unterminated")

	var cfg testConfig
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestLoader_All(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{"key1": "value1", "key2": "value2"}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if all := l.All(); len(all) < 2 {
		t.Errorf("All() returned %d keys, want at least 2", len(all))
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	if _, err := mapProvider(nil).ReadBytes(); err != ErrReadBytesNotSupported {
		t.Errorf("ReadBytes() error = %v, want %v", err, ErrReadBytesNotSupported)
	}
}
