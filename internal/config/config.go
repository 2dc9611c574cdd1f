package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor a flag sets a value.
const (
	DefaultDataFile  = "students.txt"
	DefaultLogLevel  = "error"
	DefaultLogFormat = "text"
)

// Config holds settings loaded from roster.yml.
type Config struct {
	DataFile  string `yaml:"dataFile,omitempty"`
	LogLevel  string `yaml:"logLevel,omitempty"`
	LogFormat string `yaml:"logFormat,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataFile:  DefaultDataFile,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load attempts to read roster.yml or roster.yaml from the given directory.
// Returns the defaults (not an error) if no config file exists. Values left
// unset in the file keep their defaults. A relative dataFile is resolved
// against dir.
func Load(dir string) (*Config, error) {
	cfg := Default()
	for _, name := range []string{"roster.yml", "roster.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}

		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.merge(&file)
		if file.DataFile != "" && !filepath.IsAbs(file.DataFile) {
			cfg.DataFile = filepath.Join(dir, file.DataFile)
		}
		if err := cfg.Validate(); err != nil {
			return Default(), fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

// merge copies every non-empty field of o into c.
func (c *Config) merge(o *Config) {
	if o.DataFile != "" {
		c.DataFile = o.DataFile
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.DataFile) == "" {
		errs = append(errs, "dataFile must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logLevel (%q) must be one of: debug, info, warn, error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("logFormat (%q) must be one of: text, json", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
