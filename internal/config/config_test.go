package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/htmlnode/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.Serve.Host != DefaultHost {
		t.Errorf("Serve.Host = %q, want %q", cfg.Serve.Host, DefaultHost)
	}
	if cfg.Output.Dir != DefaultOutput {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, DefaultOutput)
	}
	if cfg.Render.Lang != "en" {
		t.Errorf("Render.Lang = %q, want en", cfg.Render.Lang)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if errors.CodeOf(err) != "C141" {
		t.Errorf("err = %v, want C141 for missing config", err)
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	configJSON := `{
  "render": {
    "pretty": true
  },
  "serve": {
    "port": 8080,
    "host": "0.0.0.0"
  },
  "output": {
    "s3": {
      "bucket": "site",
      "region": "eu-central-1"
    }
  },
  "log": {
    "level": "debug"
  }
}`
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Render.Pretty {
		t.Error("Render.Pretty should be true")
	}
	if cfg.Render.Indent != "  " {
		t.Errorf("Render.Indent = %q, want default", cfg.Render.Indent)
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("Serve.Port = %d, want 8080", cfg.Serve.Port)
	}
	if cfg.Serve.Dir != DefaultPages {
		t.Errorf("Serve.Dir = %q, want %q", cfg.Serve.Dir, DefaultPages)
	}
	if cfg.Output.S3.Bucket != "site" {
		t.Errorf("Output.S3.Bucket = %q", cfg.Output.S3.Bucket)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
	if got := cfg.ServeAddress(); got != "0.0.0.0:8080" {
		t.Errorf("ServeAddress() = %q", got)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(tmpDir)
	if errors.CodeOf(err) != "C120" {
		t.Errorf("err = %v, want C120", err)
	}
}

func TestApplyDefaultsForExplicitZeroes(t *testing.T) {
	tmpDir := t.TempDir()
	configJSON := `{"serve": {"host": "", "port": 0, "dir": ""}, "output": {"dir": ""}, "log": {"level": ""}}`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Serve.Host != DefaultHost || cfg.Serve.Port != DefaultPort || cfg.Serve.Dir != DefaultPages {
		t.Errorf("serve defaults not applied: %+v", cfg.Serve)
	}
	if cfg.Output.Dir != DefaultOutput || cfg.Log.Level != "info" {
		t.Errorf("defaults not applied: %+v %+v", cfg.Output, cfg.Log)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Serve.Port = 9000
	cfg.Output.S3.Bucket = "b"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Serve.Port != 9000 || loaded.Output.S3.Bucket != "b" {
		t.Errorf("round trip lost values: %+v", loaded)
	}

	if loaded.Path() != path {
		t.Errorf("Path() = %q, want %q", loaded.Path(), path)
	}

	loaded.Render.Pretty = true
	if err := loaded.SaveTo(loaded.Path()); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"pretty": true`) {
		t.Errorf("saved file missing pretty: %s", data)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"negative port", func(c *Config) { c.Serve.Port = -1 }, false},
		{"port too large", func(c *Config) { c.Serve.Port = 70000 }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"bucket without region", func(c *Config) { c.Output.S3.Bucket = "b" }, false},
		{"bucket with region", func(c *Config) { c.Output.S3.Bucket = "b"; c.Output.S3.Region = "r" }, true},
		{"non-whitespace indent", func(c *Config) { c.Render.Indent = "--" }, false},
		{"tab indent", func(c *Config) { c.Render.Indent = "\t" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && errors.CodeOf(err) != "C122" {
				t.Errorf("err = %v, want C122", err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolvePath(t *testing.T) {
	cfg := New()
	if got := cfg.ResolvePath("pages"); got != "pages" {
		t.Errorf("ResolvePath without config path = %q", got)
	}

	cfg.configPath = filepath.Join("/srv", "site", ConfigFileName)
	if got, want := cfg.ResolvePath("pages"), filepath.Join("/srv", "site", "pages"); got != want {
		t.Errorf("ResolvePath = %q, want %q", got, want)
	}
	if got := cfg.ResolvePath("/abs"); got != "/abs" {
		t.Errorf("ResolvePath(abs) = %q", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error = %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot() = %q, want %q", got, want)
	}
	if !Exists(root) || Exists(nested) {
		t.Error("Exists() mismatch")
	}
}
