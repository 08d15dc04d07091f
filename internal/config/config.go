// Package config holds the matchprob CLI configuration: evidence directory
// locations, output path and solver toggles, stored as YAML. Flags override
// config values; config values override defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename probed in the working directory when no
// --config flag is given.
const DefaultFile = "matchprob.yaml"

// Config mirrors the YAML file. Zero-value fields fall back to defaults at
// load time, so a partial file is fine.
type Config struct {
	CeremonyDir   string `yaml:"ceremony_dir"`
	TruthBoothDir string `yaml:"truth_booth_dir"`
	Output        string `yaml:"output"`
	AllowComments bool   `yaml:"allow_comments"`
	Workers       int    `yaml:"workers"`
}

// Default returns the built-in configuration, matching the original tool's
// flag defaults.
func Default() Config {
	return Config{
		CeremonyDir:   "ceremony_data",
		TruthBoothDir: "truth_booth_data",
		Output:        "data.json",
		AllowComments: false,
		Workers:       1,
	}
}

// Load reads a YAML config over the defaults. When path is empty, DefaultFile
// is probed and its absence is not an error; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults backfills fields an explicit file left empty.
func (c *Config) applyDefaults() {
	d := Default()
	if c.CeremonyDir == "" {
		c.CeremonyDir = d.CeremonyDir
	}
	if c.TruthBoothDir == "" {
		c.TruthBoothDir = d.TruthBoothDir
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
}
