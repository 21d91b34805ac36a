// Package config loads CLI configuration from a YAML file with
// defaults suitable for running without one.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration.
type Config struct {
	// Kernel selects the geometry backend: "bsp" or "sdfx".
	Kernel string `yaml:"kernel"`
	// Segments is the sphere/cylinder surface resolution.
	Segments int `yaml:"segments"`
	// Output is the default output path; the -o flag overrides it.
	Output string `yaml:"output"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// LogFile enables rotated file logging when set.
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Kernel:   "bsp",
		Segments: 32,
		Output:   "out.stl",
		LogLevel: "info",
	}
}

// Load reads the YAML file at path, layered over Default. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Kernel {
	case "bsp", "sdfx":
	default:
		return fmt.Errorf("config: unknown kernel %q (want bsp or sdfx)", c.Kernel)
	}
	if c.Segments < 3 {
		return fmt.Errorf("config: segments must be at least 3, got %d", c.Segments)
	}
	return nil
}
