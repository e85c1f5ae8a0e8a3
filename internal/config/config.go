// Package config provides configuration loading for the stripscan CLI.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/poolsense/stripscan/internal/strip"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Detection overrides a subset of the detection parameters. Zero values
	// keep the calibrated defaults.
	Detection struct {
		// SampleCount is the number of samples taken along the strip axis.
		SampleCount int `yaml:"sampleCount"`

		// ClusterDistanceMax is the color-break threshold of the cluster
		// strategy, in 0-255 RGB distance units.
		ClusterDistanceMax float64 `yaml:"clusterDistanceMax"`
	} `yaml:"detection"`

	Logging struct {
		// Level is the zerolog level name: "debug", "info", "warn", "error"
		// or "disabled".
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	cfg := &Config{}
	cfg.Logging.Level = "warn"
	return cfg
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Detection.SampleCount < 0 {
		return fmt.Errorf("detection.sampleCount must be positive, got %d", c.Detection.SampleCount)
	}
	if c.Detection.ClusterDistanceMax < 0 {
		return fmt.Errorf("detection.clusterDistanceMax must be positive, got %g", c.Detection.ClusterDistanceMax)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level %q: %w", c.Logging.Level, err)
	}
	return nil
}

// Params maps the configuration onto the calibrated detection parameters.
func (c *Config) Params() strip.Params {
	p := strip.DefaultParams()
	if c.Detection.SampleCount > 0 {
		p = p.WithSampleCount(c.Detection.SampleCount)
	}
	if c.Detection.ClusterDistanceMax > 0 {
		p = p.WithClusterDistance(c.Detection.ClusterDistanceMax)
	}
	return p
}

// LogLevel returns the configured zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}
