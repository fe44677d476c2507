package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config  string
	workers int
	dryRun  bool
	verify  bool
	quiet   bool
	verbose bool
	help    bool
	version bool

	// changed reports whether a flag was set explicitly on the command line.
	changed func(name string) bool
}

// parseFlags parses command-line flags (without the program name) and
// returns the positional arguments.
func parseFlags(args []string, env *Environment) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdupgrade", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &cliFlags{changed: fs.Changed}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "report changes without writing files")
	fs.BoolVar(&f.verify, "verify", false, "skip files whose fenced block count changes")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show unchanged files and pass details")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
