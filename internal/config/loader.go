package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pagerd/internal/common/fsutil"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr      string `json:"addr" yaml:"addr" toml:"addr"`
	DefaultID string `json:"default_id" yaml:"default_id" toml:"default_id"`

	// Controls defaults. Nil booleans keep the built-in default (on).
	MaxSize        int   `json:"max_size" yaml:"max_size" toml:"max_size"`
	AutoHide       *bool `json:"auto_hide" yaml:"auto_hide" toml:"auto_hide"`
	DirectionLinks *bool `json:"direction_links" yaml:"direction_links" toml:"direction_links"`
	BoundaryLinks  bool  `json:"boundary_links" yaml:"boundary_links" toml:"boundary_links"`

	TemplatePath   string `json:"template_path" yaml:"template_path" toml:"template_path"`
	TemplateString string `json:"template_string" yaml:"template_string" toml:"template_string"`

	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format"`

	MaxBodyBytes          int64 `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	RequestTimeoutSeconds int   `json:"request_timeout_seconds" yaml:"request_timeout_seconds" toml:"request_timeout_seconds"`

	CORS      CORS       `json:"cors" yaml:"cors" toml:"cors"`
	Instances []Instance `json:"instances" yaml:"instances" toml:"instances"`
}

// CORS configures the opt-in CORS middleware.
type CORS struct {
	Enabled bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	Origins []string `json:"origins" yaml:"origins" toml:"origins"`
	Methods []string `json:"methods" yaml:"methods" toml:"methods"`
	Headers []string `json:"headers" yaml:"headers" toml:"headers"`
}

// Instance is a pagination instance bound at startup.
type Instance struct {
	ID            string `json:"id" yaml:"id" toml:"id"`
	Expression    string `json:"expression" yaml:"expression" toml:"expression"`
	Length        int    `json:"length" yaml:"length" toml:"length"`
	TotalItems    *int   `json:"total_items" yaml:"total_items" toml:"total_items"`
	SharePageWith string `json:"share_page_with" yaml:"share_page_with" toml:"share_page_with"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if cfg.TemplatePath, err = fsutil.ExpandHome(cfg.TemplatePath); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	var errs []error
	if c.MaxSize < 0 {
		errs = append(errs, fmt.Errorf("max_size must not be negative, got %d", c.MaxSize))
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be console or json, got %q", c.LogFormat))
	}
	if c.MaxBodyBytes < 0 {
		errs = append(errs, errors.New("max_body_bytes must not be negative"))
	}
	if c.RequestTimeoutSeconds < 0 {
		errs = append(errs, errors.New("request_timeout_seconds must not be negative"))
	}
	for i, in := range c.Instances {
		if strings.TrimSpace(in.Expression) == "" {
			errs = append(errs, fmt.Errorf("instances[%d]: expression is required", i))
		}
		if in.Length < 0 {
			errs = append(errs, fmt.Errorf("instances[%d]: length must not be negative", i))
		}
	}
	return errors.Join(errs...)
}
