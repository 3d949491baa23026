package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for filespect. Fields
// are pointers so the CLI can distinguish "unset" from zero values when
// resolving precedence (CLI > local > global).
type FileConfig struct {
	Include     *string  `yaml:"include"`
	Exclude     *string  `yaml:"exclude"`
	Threads     *int     `yaml:"threads"`
	MaxDepth    *int     `yaml:"max_depth"`
	Stage       *string  `yaml:"stage"`
	FilterTypes []string `yaml:"filter_types"`
	IncludeDirs *bool    `yaml:"include_directories"`
	NoColor     *bool    `yaml:"no_color"`
	NoCache     *bool    `yaml:"no_cache"`
	NoSignature *bool    `yaml:"no_signature"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the scan root. It supports
// .filespect.yml/.yaml and filespect.yml/.yaml, in that order.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".filespect.yml", ".filespect.yaml", "filespect.yml", "filespect.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "filespect", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
