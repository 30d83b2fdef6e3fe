// Package config loads pathtrack settings from a YAML file and the
// environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kk-code-lab/pathtrack/internal/logging"
	"github.com/kk-code-lab/pathtrack/pkg/pathtrack"
)

// Environment variables read by ApplyEnvOverrides and DefaultPath.
const (
	EnvConfig        = "PATHTRACK_CONFIG"
	EnvRoot          = "PATHTRACK_ROOT"
	EnvExclude       = "PATHTRACK_EXCLUDE"
	EnvIncludeHidden = "PATHTRACK_INCLUDE_HIDDEN"
	EnvNFC           = "PATHTRACK_NFC"
	EnvLogLevel      = "PATHTRACK_LOG_LEVEL"
	EnvFormat        = "PATHTRACK_FORMAT"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the pathtrack configuration.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// SearchConfig holds defaults for every query.
type SearchConfig struct {
	Root             string   `yaml:"root"`              // Empty = working directory
	Exclude          []string `yaml:"exclude"`           // Bare names skipped at any depth
	IncludeHidden    bool     `yaml:"include_hidden"`    // Also visit dot-files / hidden entries
	NormalizeUnicode bool     `yaml:"normalize_unicode"` // Compare names in NFC
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json or yaml
	Color  string `yaml:"color"`  // auto, always or never
	Long   bool   `yaml:"long"`   // Show kind, size and mtime
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // trace, debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Exclude: append([]string(nil), pathtrack.DefaultExclude...),
		},
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorAuto,
		},
		Log: LogConfig{
			Level: logging.DefaultLevel,
		},
	}
}

// DefaultPath returns the config file location: $PATHTRACK_CONFIG when set,
// otherwise pathtrack/config.yaml under the user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locating user config directory")
	}
	return filepath.Join(dir, "pathtrack", "config.yaml"), nil
}

// LoadFromFile loads configuration from path. A missing file yields the
// defaults. Environment overrides are applied after the file.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, cfg.Validate()
		}
		return nil, errors.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// SaveToFile writes the configuration as YAML, creating parent directories.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// ApplyEnvOverrides applies PATHTRACK_* variables on top of the current
// values. Unparseable booleans are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvRoot); v != "" {
		c.Search.Root = v
	}
	if v, ok := os.LookupEnv(EnvExclude); ok {
		c.Search.Exclude = SplitList(v)
	}
	if v := os.Getenv(EnvIncludeHidden); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Search.IncludeHidden = b
		}
	}
	if v := os.Getenv(EnvNFC); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Search.NormalizeUnicode = b
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Output.Format = strings.ToLower(strings.TrimSpace(v))
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !logging.IsValidLevel(c.Log.Level) {
		return errors.Errorf("log.level must be one of %s (got: %s)", strings.Join(logging.ValidLevels, ", "), c.Log.Level)
	}
	if !IsValidFormat(c.Output.Format) {
		return errors.Errorf("output.format must be text, json, or yaml (got: %s)", c.Output.Format)
	}
	if !isValidColor(c.Output.Color) {
		return errors.Errorf("output.color must be auto, always, or never (got: %s)", c.Output.Color)
	}
	for _, name := range c.Search.Exclude {
		if name == "" {
			return errors.New("search.exclude must not contain empty names")
		}
	}
	return nil
}

// SearchOptions converts the search section into library options. The
// logger and lister are left for the caller.
func (c *Config) SearchOptions() pathtrack.Options {
	exclude := c.Search.Exclude
	if exclude == nil {
		exclude = []string{}
	}
	return pathtrack.Options{
		Root:             c.Search.Root,
		Exclude:          append([]string{}, exclude...),
		IncludeHidden:    c.Search.IncludeHidden,
		NormalizeUnicode: c.Search.NormalizeUnicode,
	}
}

// SplitList splits a comma-separated list, trimming blanks and dropping
// empty items. The result is never nil.
func SplitList(v string) []string {
	out := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// IsValidFormat reports whether format is a supported output format.
func IsValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

func isValidColor(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}
