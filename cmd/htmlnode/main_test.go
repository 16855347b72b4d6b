package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/htmlnode/internal/config"
	"github.com/vango-dev/htmlnode/internal/errors"
)

const paragraphJSON = `{"tag": "p", "children": [
  {"tag": "b", "value": "Bold"},
  {"value": "Text"}
]}`

// run executes the CLI with an empty config file so the working
// directory never influences the result.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "htmlnode.json")
	if err := os.WriteFile(configPath, []byte(`{"log": {"level": "error"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	var out, logs bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderStdin(t *testing.T) {
	out, err := run(t, paragraphJSON, "render", "-o", "-")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<p><b>Bold</b>Text</p>" {
		t.Errorf("output = %q", out)
	}
}

func TestRenderDocument(t *testing.T) {
	out, err := run(t, `{"tag": "p", "value": "hi"}`, "render", "-o", "-", "--document", "--title", "Home", "--lang", "de")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", `<html lang="de">`, "<title>Home</title>", "<p>hi</p>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderToDirectory(t *testing.T) {
	src := t.TempDir()
	input := writeFile(t, src, "index.json", paragraphJSON)
	dist := t.TempDir()

	out, err := run(t, "", "render", "-o", dist, input)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}

	got, err := os.ReadFile(filepath.Join(dist, "index.html"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "<p><b>Bold</b>Text</p>" {
		t.Errorf("index.html = %q", got)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
	}{
		{"leaf without value", `{"tag": "p"}`, "N001"},
		{"parent without tag", `{"children": [{"value": "x"}]}`, "N002"},
		{"malformed", `{"tag": `, "N010"},
		{"value and children", `{"tag": "p", "value": "x", "children": []}`, "N011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.input, "render", "-o", "-")
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.CodeOf(err); code != tt.code {
				t.Errorf("code = %q, want %q (%v)", code, tt.code, err)
			}
			if out != "" {
				t.Errorf("partial output written: %q", out)
			}
		})
	}
}

func TestRenderS3RequiresRegion(t *testing.T) {
	_, err := run(t, paragraphJSON, "render", "--s3-bucket", "site")
	if errors.CodeOf(err) != "C122" {
		t.Errorf("err = %v, want C122", err)
	}
}

func TestRenderMissingFile(t *testing.T) {
	_, err := run(t, "", "render", "-o", "-", filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Category != errors.CategoryCLI {
		t.Errorf("err = %v, want CLI error", err)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", paragraphJSON)
	bad := writeFile(t, dir, "bad.json", `{"tag": "ul", "children": [{"tag": "li"}]}`)

	out, err := run(t, "", "validate", good)
	if err != nil {
		t.Fatalf("validate good: %v", err)
	}
	if !strings.Contains(out, "✓") || !strings.Contains(out, good) {
		t.Errorf("output = %q", out)
	}

	out, err = run(t, "", "validate", good, bad)
	if err == nil {
		t.Fatal("expected error for invalid document")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("err = %v", err)
	}
	if !strings.Contains(out, "✗") || !strings.Contains(out, bad) {
		t.Errorf("output = %q", out)
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "init", dir)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	path := filepath.Join(dir, config.ConfigFileName)
	if !strings.Contains(out, path) {
		t.Errorf("output = %q", out)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Serve.Port != config.DefaultPort || cfg.Render.Lang != "en" {
		t.Errorf("written config = %+v", cfg)
	}

	if _, err := run(t, "", "init", dir); err == nil {
		t.Error("expected error when htmlnode.json exists")
	}
	if _, err := run(t, "", "init", "--force", dir); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}

	out, err = run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("output = %q", out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "version")
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-", "index.html"},
		{"page.json", "page.html"},
		{"./blog/post.json", "blog/post.html"},
		{"blog/../about.json", "about.html"},
		{"../outside/page.json", "page.html"},
		{"/abs/path/home.json", "home.html"},
		{"noext", "noext.html"},
	}

	for _, tt := range tests {
		if got := outputName(tt.input); got != tt.want {
			t.Errorf("outputName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
