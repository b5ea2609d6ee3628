package config

import "context"

// Loader is the interface for a format-specific grid loader.
type Loader interface {
	// Load reads the given files and translates them into one grid.
	Load(ctx context.Context, files ...string) (*Grid, error)
}
