// Package config reads CLI-wide defaults from an optional ~/.lolli.yaml
// file (SPEC_FULL.md's AMBIENT STACK section). Absence of the file is not
// an error; Load returns the built-in defaults from Default().
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults ~/.lolli.yaml may override.
type Config struct {
	// Depth is the default proof-search depth budget (the -d flag's
	// default when unset on the command line).
	Depth int `yaml:"depth"`
	// Dialect names the default pretty-print dialect: "unicode", "ascii",
	// or "latex".
	Dialect string `yaml:"dialect"`
	// Color enables lipgloss-styled CLI output.
	Color bool `yaml:"color"`
}

// Default returns the built-in defaults, used when no config file exists
// or a field is left unset in one that does.
func Default() Config {
	return Config{Depth: 100, Dialect: "unicode", Color: true}
}

// Path returns the path Load reads from: $HOME/.lolli.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lolli.yaml"), nil
}

// Load reads the config file at Path(). A missing file is not an error:
// Load returns Default() unchanged. A malformed file is an error.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
