package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads profile definitions from the given paths and returns them
	// as a Model. Paths that do not exist are skipped.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
