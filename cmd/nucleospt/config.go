package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config holds defaults loaded from an optional YAML file (--config),
// overridable by every subcommand's own flags.
type config struct {
	K             int `yaml:"k"`
	MaxMismatches int `yaml:"max_mismatches"`
}

func loadConfig(path string) (config, error) {
	var c config
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}
