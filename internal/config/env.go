// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from the given environment using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any, environment map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environment})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// readDotEnv reads KEY=VALUE pairs from a .env file. A missing file is not
// an error.
func readDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading .env file %q: %w", path, err)
	}

	return vars, nil
}

// environment overlays the process environment on top of dotenv values,
// so variables exported in the shell take precedence over the .env file.
func environment(dotenv map[string]string) map[string]string {
	result := make(map[string]string, len(dotenv))
	maps.Copy(result, dotenv)
	maps.Copy(result, env.ToMap(os.Environ()))
	return result
}
