// Package config loads campusnav settings: built-in defaults, then an
// optional YAML file, then CAMPUSNAV_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CAMPUSNAV_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MetricsEnabled  bool          `yaml:"metrics_enabled"`
}

// DataConfig points at the campus map.
type DataConfig struct {
	GraphFile string `yaml:"graph_file"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 8080
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultGraphFile       = "data/campus.dot"
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            defaultHost,
			Port:            defaultPort,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			MetricsEnabled:  true,
		},
		Data: DataConfig{GraphFile: defaultGraphFile},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
	}
}

// Load builds the configuration. path may be empty to skip the file.
// The result is validated before it is returned.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Read layers defaults, the file at path and the environment without
// validating. Callers that apply further overrides call Validate once
// they are done.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := decode(bytes.NewReader(raw), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decode overlays YAML onto cfg. Unknown keys are rejected; an empty
// document leaves cfg untouched.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overlays CAMPUSNAV_* variables. Malformed values are collected and
// reported together.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs error

	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("invalid %s%s value %q: %w", EnvPrefix, key, v, err))
				return
			}
			*dst = n
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = d
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("invalid %s%s value %q: %w", EnvPrefix, key, v, err))
				return
			}
			*dst = b
		}
	}

	str("HTTP_HOST", &cfg.HTTP.Host)
	num("HTTP_PORT", &cfg.HTTP.Port)
	dur("HTTP_READ_TIMEOUT", &cfg.HTTP.ReadTimeout)
	dur("HTTP_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout)
	dur("HTTP_IDLE_TIMEOUT", &cfg.HTTP.IdleTimeout)
	dur("HTTP_SHUTDOWN_TIMEOUT", &cfg.HTTP.ShutdownTimeout)
	flag("HTTP_METRICS_ENABLED", &cfg.HTTP.MetricsEnabled)
	str("DATA_GRAPH_FILE", &cfg.Data.GraphFile)
	str("LOG_LEVEL", &cfg.Logging.Level)
	str("LOG_FORMAT", &cfg.Logging.Format)
	flag("LOG_INCLUDE_CALLER", &cfg.Logging.IncludeCaller)

	if errs != nil {
		return fmt.Errorf("config: environment: %w", errs)
	}
	return nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs error
	invalid := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		invalid("http.port %d is out of range", c.HTTP.Port)
	}
	for _, t := range []struct {
		name string
		d    time.Duration
	}{
		{"read_timeout", c.HTTP.ReadTimeout},
		{"write_timeout", c.HTTP.WriteTimeout},
		{"idle_timeout", c.HTTP.IdleTimeout},
		{"shutdown_timeout", c.HTTP.ShutdownTimeout},
	} {
		if t.d <= 0 {
			invalid("http.%s must be positive, got %s", t.name, t.d)
		}
	}
	if strings.TrimSpace(c.Data.GraphFile) == "" {
		invalid("data.graph_file is empty")
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		invalid("logging.level %q is not one of debug|info|warn|error", c.Logging.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "text", "json":
	default:
		invalid("logging.format %q is not one of text|json", c.Logging.Format)
	}

	return errs
}

// Addr returns host:port for the HTTP listener.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
