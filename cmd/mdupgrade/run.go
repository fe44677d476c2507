package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alnah/go-mdupgrade"
	"github.com/alnah/go-mdupgrade/internal/config"
	"github.com/alnah/go-mdupgrade/internal/fileutil"
	"github.com/alnah/go-mdupgrade/internal/hints"
)

// ErrTooManyArgs indicates more than one directory argument was given.
var ErrTooManyArgs = errors.New("expected a single directory argument")

// run resolves configuration, discovers files and upgrades them. Only
// fatal errors are returned; per-file failures are printed and absorbed.
func run(ctx context.Context, positional []string, flags *cliFlags, env *Environment, logger *slog.Logger) error {
	if len(positional) == 0 {
		return ErrNoDirectory
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyArgs, len(positional))
	}
	dir := positional[0]

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	files, err := discoverFiles(dir, cfg.Extensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "No files found in %s%s\n", dir, hints.ForNoFiles(cfg.Extensions))
		}
		return nil
	}

	workers := resolveWorkers(cfg.Workers)
	logger.Debug("upgrading folder", "dir", dir, "files", len(files), "workers", workers, "dryRun", cfg.DryRun, "verify", cfg.Verify)

	newUpgrader := func(path string) Upgrader {
		return mdupgrade.NewUpgrader(
			mdupgrade.WithLogger(logger.With("file", path)),
			mdupgrade.WithVerify(cfg.Verify),
		)
	}

	results := upgradeBatch(ctx, newUpgrader, files, workers, cfg.DryRun)
	printResults(results, flags.quiet, flags.verbose, cfg.DryRun, env)

	// A canceled batch is still a fatal condition for the process.
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

// resolveConfig builds the effective configuration.
// Priority: CLI flags > env vars > config file > defaults.
func resolveConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env)
	if env.Environ != nil {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg := config.DefaultConfig()
	configName := flags.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges explicitly set CLI flags into config. CLI values win.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	changed := flags.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if changed("workers") {
		cfg.Workers = flags.workers
	}
	if changed("verify") {
		cfg.Verify = flags.verify
	}
	if changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
}

// discoverFiles lists the markdown files directly inside dir.
func discoverFiles(dir string, exts []string) ([]string, error) {
	if err := fileutil.RequireDir(dir); err != nil {
		return nil, fmt.Errorf("folder does not exist or is not a directory: %w", err)
	}
	return fileutil.ListFiles(dir, exts)
}
