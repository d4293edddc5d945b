package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/pairsum/internal/pairsum"
)

// Defaults applied by the CLI when neither a flag nor the config file sets a value.
const (
	DefaultSum       = 2020
	DefaultFile      = "input.txt"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FilePath string // one integer per line
	Sum      int
	Solvers  []string // pairsum catalogue names, in run order

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FilePath == "" {
		return nil, errors.New("FilePath is a required configuration field and cannot be empty")
	}
	if len(cfg.Solvers) == 0 {
		return nil, errors.New("at least one solver must be selected")
	}

	seen := make(map[string]struct{}, len(cfg.Solvers))
	for _, name := range cfg.Solvers {
		if _, err := pairsum.Lookup(name); err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("solver %q selected more than once", name)
		}
		seen[name] = struct{}{}
	}

	cfg.Solvers = append([]string(nil), cfg.Solvers...)
	return &cfg, nil
}
