package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given .env files, or from .env in the
// working directory when no path is given. Later files override earlier
// ones; variables already present in the process environment are kept.
//
// Cached configurations are not refreshed. Call ResetCache or
// ForceReloadConfig when the new values must be picked up.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnv, err)
		}
		return nil
	}

	merged := make(map[string]string)
	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if err != nil {
			return errors.Join(ErrLoadingEnv, fmt.Errorf("%s: %w", path, err))
		}
		maps.Copy(merged, vars)
	}

	for k, v := range merged {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return errors.Join(ErrLoadingEnv, err)
		}
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}
