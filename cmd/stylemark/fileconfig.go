package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// FileConfig is the YAML shape of the -c config file. Flags given on the
// command line win over file values.
type FileConfig struct {
	Open        string `yaml:"open"`
	Close       string `yaml:"close"`
	StrictStyle bool   `yaml:"strictStyle"`
	Match       string `yaml:"match"`
}

func (cfg *MainConfig) loadFile(path string) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config %q: %w", path, err)
	}
	fc := &FileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return fmt.Errorf("config %q: %w", path, err)
	}
	if cfg.Open == "" {
		cfg.Open = fc.Open
	}
	if cfg.Close == "" {
		cfg.Close = fc.Close
	}
	if fc.StrictStyle {
		cfg.Strict = true
	}
	if cfg.Match == "" {
		cfg.Match = fc.Match
	}
	return nil
}
