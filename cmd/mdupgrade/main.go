package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdupgrade/internal/config"
	"github.com/alnah/go-mdupgrade/internal/fileutil"
	"github.com/alnah/go-mdupgrade/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrNoDirectory indicates the directory argument is missing.
var ErrNoDirectory = errors.New("no directory specified")

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses arguments, runs the upgrade and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:], env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "mdupgrade %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags.quiet, flags.verbose)
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(logger)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, positional, flags, env, logger); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, positional))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs aligns GOMAXPROCS with the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(logger *slog.Logger) {
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
}

// hintFor picks an actionable hint for a fatal error.
func hintFor(err error, positional []string) string {
	switch {
	case errors.Is(err, fileutil.ErrNotDirectory):
		if len(positional) > 0 {
			return hints.ForNotADirectory(positional[0])
		}
		return hints.ForNotADirectory("")
	case errors.Is(err, os.ErrNotExist) && !errors.Is(err, config.ErrConfigNotFound):
		return hints.ForMissingDirectory()
	case errors.Is(err, os.ErrPermission):
		return hints.ForPermission()
	}

	var nf *config.NotFoundError
	if errors.As(err, &nf) {
		return hints.ForConfigNotFound(nf.Tried)
	}
	return ""
}
