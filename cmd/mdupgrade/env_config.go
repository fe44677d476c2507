package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-mdupgrade/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string   // MDUPGRADE_CONFIG: config file name or path
	Workers    int      // MDUPGRADE_WORKERS: parallel workers
	Verify     *bool    // MDUPGRADE_VERIFY: fence count check
	DryRun     *bool    // MDUPGRADE_DRY_RUN: report without writing
	Extensions []string // MDUPGRADE_EXTENSIONS: comma-separated
}

// knownEnvVars lists valid MDUPGRADE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDUPGRADE_CONFIG":     true,
	"MDUPGRADE_WORKERS":    true,
	"MDUPGRADE_VERIFY":     true,
	"MDUPGRADE_DRY_RUN":    true,
	"MDUPGRADE_EXTENSIONS": true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable numbers and booleans are ignored.
func loadEnvConfig(env *Environment) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.getenv("MDUPGRADE_CONFIG"),
	}

	if workers := env.getenv("MDUPGRADE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	cfg.Verify = parseBoolEnv(env.getenv("MDUPGRADE_VERIFY"))
	cfg.DryRun = parseBoolEnv(env.getenv("MDUPGRADE_DRY_RUN"))

	if exts := env.getenv("MDUPGRADE_EXTENSIONS"); exts != "" {
		for _, ext := range strings.Split(exts, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				cfg.Extensions = append(cfg.Extensions, ext)
			}
		}
	}

	return cfg
}

// parseBoolEnv returns nil for empty or invalid values.
func parseBoolEnv(v string) *bool {
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// warnUnknownEnvVars logs warnings for unrecognized MDUPGRADE_* variables.
// Helps catch typos like MDUPGRADE_WORKER instead of MDUPGRADE_WORKERS.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, "MDUPGRADE_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.Verify != nil {
		cfg.Verify = *env.Verify
	}
	if env.DryRun != nil {
		cfg.DryRun = *env.DryRun
	}
	if len(env.Extensions) > 0 {
		cfg.Extensions = env.Extensions
	}
}
