// Package config loads the run configuration of the bitsearch CLI from YAML
// and turns it into solver limits and a configured logger.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and wraps every rejected field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the run configuration. Zero limits mean "no limit".
type Config struct {
	// Workers is the batch pool size.
	Workers int `yaml:"workers"`
	// MaxStates bounds the states one shortest-path search may discover.
	MaxStates int `yaml:"max_states"`
	// MaxFrames bounds the frames one path count may open.
	MaxFrames int `yaml:"max_frames"`
	// Timeout bounds a whole run, e.g. "30s".
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is any logrus level name.
	LogLevel string `yaml:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
	// Trace exports spans to stderr.
	Trace bool `yaml:"trace"`
	// Metrics logs a metrics summary after the run.
	Metrics bool `yaml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads the YAML file at path over Default, applies BITSEARCH_*
// environment overrides, and validates the result. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Decode strictly decodes one YAML document from r into cfg.
// An empty document leaves cfg unchanged.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// ApplyEnv overrides fields from BITSEARCH_WORKERS, BITSEARCH_LOG_LEVEL,
// BITSEARCH_LOG_FORMAT and BITSEARCH_TRACE, read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("BITSEARCH_WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: BITSEARCH_WORKERS=%q", ErrInvalidConfig, v)
		}
		c.Workers = n
	}
	if v, ok := lookup("BITSEARCH_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("BITSEARCH_LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := lookup("BITSEARCH_TRACE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: BITSEARCH_TRACE=%q", ErrInvalidConfig, v)
		}
		c.Trace = b
	}

	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be >= 1 (%d)", ErrInvalidConfig, c.Workers)
	case c.MaxStates < 0:
		return fmt.Errorf("%w: max_states must be >= 0 (%d)", ErrInvalidConfig, c.MaxStates)
	case c.MaxFrames < 0:
		return fmt.Errorf("%w: max_frames must be >= 0 (%d)", ErrInvalidConfig, c.MaxFrames)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must be >= 0 (%s)", ErrInvalidConfig, c.Timeout)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format must be text or json (%q)", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Fields returns the configuration as log fields.
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"workers":    c.Workers,
		"max_states": c.MaxStates,
		"max_frames": c.MaxFrames,
		"timeout":    c.Timeout.String(),
		"log_level":  c.LogLevel,
		"log_format": c.LogFormat,
		"trace":      c.Trace,
		"metrics":    c.Metrics,
	}
}

// NewLogger returns a logrus logger writing to w with the configured level
// and formatter.
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return log, nil
}
