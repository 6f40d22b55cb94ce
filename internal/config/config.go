// SPDX-License-Identifier: MIT

// Package config resolves the pathcount settings from defaults, an optional
// .env file and PATHCOUNT_* environment variables. Command-line flags are
// layered on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel    = "PATHCOUNT_LOG_LEVEL"
	EnvLogFormat   = "PATHCOUNT_LOG_FORMAT"
	EnvCacheSize   = "PATHCOUNT_CACHE_SIZE"
	EnvConcurrency = "PATHCOUNT_CONCURRENCY"
)

// DefaultEnvFile is read when Load is called without file names.
const DefaultEnvFile = ".env"

// ErrInvalidConfig reports a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config holds the resolved settings.
type Config struct {
	LogLevel    string // debug, info, warn or error
	LogFormat   string // json or console
	CacheSize   int    // segment cache entries; 0 disables the cache
	Concurrency int    // parallel segment counts per waypoint query
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:    "warn",
		LogFormat:   "console",
		CacheSize:   1024,
		Concurrency: 1,
	}
}

// Load returns Default overlaid with the given .env files (DefaultEnvFile
// when none are named) and then the process environment. Missing files are
// skipped. The process environment wins over file values and is never
// modified.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	fileVals := make(map[string]string)
	for _, name := range envFiles {
		vals, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", name, err)
		}
		for k, v := range vals {
			if _, set := fileVals[k]; !set {
				fileVals[k] = v
			}
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v), true
		}
		v, ok := fileVals[key]

		return strings.TrimSpace(v), ok
	}

	cfg := Default()
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	for _, f := range []struct {
		key string
		dst *int
	}{
		{EnvCacheSize, &cfg.CacheSize},
		{EnvConcurrency, &cfg.Concurrency},
	} {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, f.key, v)
		}
		*f.dst = n
	}

	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q (want debug, info, warn or error)", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log format %q (want json or console)", ErrInvalidConfig, c.LogFormat)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache size %d < 0", ErrInvalidConfig, c.CacheSize)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency %d < 1", ErrInvalidConfig, c.Concurrency)
	}

	return nil
}
