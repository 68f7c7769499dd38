// Package config manages deptsched configuration and filesystem paths.
//
// Settings are resolved with viper from, in precedence order, command-line
// flags, DEPTSCHED_* environment variables, the config file and defaults.
// The default root is ~/.deptsched/ containing config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by deptsched.
type Paths struct {
	// Root is the base directory for deptsched data (default: ~/.deptsched)
	Root string

	// Config is the path to the global config file
	Config string
}

// DefaultPaths returns the default paths for deptsched.
// Paths can be overridden with environment variables:
// - DEPTSCHED_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("DEPTSCHED_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".deptsched")
	}

	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
	}, nil
}
