// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package envfile loads KEY=value settings from .env files so that
// CORPUS_ENGINE_* variables can live next to a corpus instead of in the
// shell profile.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultFile is read from the working directory at startup.
const DefaultFile = ".env"

// Load reads every file in paths and merges their variables; later files
// win. A missing file is not an error. Empty values are dropped.
func Load(paths ...string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, p := range paths {
		m, err := godotenv.Read(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading env file %s: %w", p, err)
		}
		for k, v := range m {
			if v != "" {
				vars[k] = v
			}
		}
	}
	return vars, nil
}

// Apply exports vars into the process environment, leaving variables that
// are already set untouched. It returns the number of variables exported.
func Apply(vars map[string]string) (int, error) {
	n := 0
	for k, v := range vars {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return n, fmt.Errorf("setting %s: %w", k, err)
		}
		n++
	}
	return n, nil
}

// LoadAndApply is Load followed by Apply.
func LoadAndApply(paths ...string) (int, error) {
	vars, err := Load(paths...)
	if err != nil {
		return 0, err
	}
	return Apply(vars)
}
