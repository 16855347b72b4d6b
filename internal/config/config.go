package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vango-dev/htmlnode/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlnode.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default output directory.
	DefaultOutput = "dist"

	// DefaultPages is the default directory of tree documents served by serve.
	DefaultPages = "pages"
)

// Config represents the complete htmlnode.json configuration.
type Config struct {
	// Render contains renderer settings.
	Render RenderConfig `json:"render"`

	// Serve contains HTTP server settings.
	Serve ServeConfig `json:"serve"`

	// Output contains destinations for rendered documents.
	Output OutputConfig `json:"output"`

	// Log contains logging settings.
	Log LogConfig `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains renderer settings.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation unit used when Pretty is set.
	Indent string `json:"indent,omitempty"`

	// Lang is the html lang attribute for full documents.
	Lang string `json:"lang,omitempty"`
}

// ServeConfig contains HTTP server settings.
type ServeConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Dir is the directory of JSON tree documents to serve.
	Dir string `json:"dir,omitempty"`
}

// OutputConfig contains destinations for rendered documents.
type OutputConfig struct {
	// Dir is the local output directory.
	Dir string `json:"dir,omitempty"`

	// S3 uploads documents to a bucket instead of Dir when Bucket is set.
	S3 S3Config `json:"s3,omitempty"`
}

// S3Config contains S3 upload settings.
type S3Config struct {
	Bucket   string `json:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Region   string `json:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// JSON switches the log handler from text to JSON.
	JSON bool `json:"json,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Render: RenderConfig{
			Indent: "  ",
			Lang:   "en",
		},
		Serve: ServeConfig{
			Host: DefaultHost,
			Port: DefaultPort,
			Dir:  DefaultPages,
		},
		Output: OutputConfig{
			Dir: DefaultOutput,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for htmlnode.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C141").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path))
		}
		return nil, errors.New("C120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C120").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("C120").Wrap(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.New("C120").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file, or ".".
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults restores defaults for fields the file set to zero values.
func (c *Config) applyDefaults() {
	defaults := New()
	if c.Render.Indent == "" {
		c.Render.Indent = defaults.Render.Indent
	}
	if c.Render.Lang == "" {
		c.Render.Lang = defaults.Render.Lang
	}
	if c.Serve.Host == "" {
		c.Serve.Host = defaults.Serve.Host
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = defaults.Serve.Port
	}
	if c.Serve.Dir == "" {
		c.Serve.Dir = defaults.Serve.Dir
	}
	if c.Output.Dir == "" {
		c.Output.Dir = defaults.Output.Dir
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("C122").
			WithDetail("serve.port must be between 0 and 65535")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Output.S3.Bucket != "" && c.Output.S3.Region == "" {
		return errors.New("C122").
			WithDetail("output.s3.region is required when output.s3.bucket is set")
	}
	if strings.TrimSpace(c.Render.Indent) != "" {
		return errors.New("C122").
			WithDetail("render.indent must contain only whitespace")
	}
	return nil
}

// ServeAddress returns the listen address for the server.
func (c *Config) ServeAddress() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// ResolvePath returns p relative to the config directory unless it is absolute.
func (c *Config) ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir(), p)
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.New("C122").
			WithDetail("log.level must be one of debug, info, warn, error; got " + strconv.Quote(level))
	}
}

// Exists reports whether dir contains htmlnode.json.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the first directory
// containing htmlnode.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("C141").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working
// directory or one of its parents.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
