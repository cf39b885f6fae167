package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultPrompt       = "Enter number followed by unit:"
	defaultMaxLineBytes = 1024
	defaultWorkers      = 5
)

type Config struct {
	Prompt       string `yaml:"prompt"`
	MaxLineBytes int    `yaml:"max_line_bytes"`
	Workers      int    `yaml:"workers"`
}

func Default() Config {
	return Config{
		Prompt:       defaultPrompt,
		MaxLineBytes: defaultMaxLineBytes,
		Workers:      defaultWorkers,
	}
}

// Load reads a YAML config file on top of the defaults, so fields the
// file omits keep their default values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.MaxLineBytes < 1 {
		cfg.MaxLineBytes = defaultMaxLineBytes
	}

	if cfg.Workers < 1 {
		cfg.Workers = defaultWorkers
	}

	return cfg, nil
}
