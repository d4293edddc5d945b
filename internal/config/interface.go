package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the config file at path and translates it into a Model.
	Load(ctx context.Context, path string) (*Model, error)
}
