package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// startupConfig is an optional, purely cosmetic startup knob set: the
// line protocol itself takes no configuration, but operators running
// roadmap as a long-lived process may want a log prefix or a hint at
// the expected input size.
type startupConfig struct {
	LogPrefix   string `yaml:"log_prefix"`
	BufferBytes int    `yaml:"buffer_bytes"`
}

func loadConfig(path string) (*startupConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	var cfg startupConfig
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &cfg, nil
}
