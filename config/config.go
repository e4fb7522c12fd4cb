/*
File   : loxmix/config/config.go

Package config loads optional REPL/CLI preferences from a YAML file,
entirely additive to the interpreter's semantics: its absence changes
nothing about how a Lox program is scanned, parsed, resolved, or
evaluated, only how the REPL/batch CLI surface around it behaves.
*/
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL/CLI knobs a ~/.loxmixrc (or $LOXMIX_CONFIG) file
// may override.
type Config struct {
	Prompt string `yaml:"prompt"`
	// Color is a pointer so "absent from the file" (autodetect via
	// isatty) is distinguishable from an explicit "color: false".
	Color       *bool  `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
	EnableClock bool   `yaml:"enable_clock"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Prompt:      "> ",
		HistoryFile: defaultHistoryFile(),
		EnableClock: true,
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".loxmix_history"
	}
	return filepath.Join(home, ".loxmix_history")
}

// path resolves the config file location: $LOXMIX_CONFIG if set,
// otherwise ~/.loxmixrc.
func path() string {
	if p := os.Getenv("LOXMIX_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".loxmixrc")
}

// Load reads and merges the config file over Default(). A missing file
// is not an error — it just means every default applies. override, when
// non-empty, is used instead of the resolved default path (wired to the
// CLI's --config flag).
func Load(override string) (Config, error) {
	cfg := Default()

	target := override
	if target == "" {
		target = path()
	}
	if target == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = defaultHistoryFile()
	}
	return cfg, nil
}
