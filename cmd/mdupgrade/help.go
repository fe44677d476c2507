package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdupgrade [flags] <folder>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite MyST Markdown files in <folder> in place (not recursive):")
	fmt.Fprintln(w, "  - drop empty +++ {\"user_expressions\": []} markers")
	fmt.Fprintln(w, "  - {doc}`title <target>` and {doc}`target` to Markdown links")
	fmt.Fprintln(w, "  - code-cell YAML headers to :label:, :caption:, :width:, :tags:")
	fmt.Fprintln(w, "  - lowercase directive names")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>     Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -n, --dry-run         Report changes without writing files")
	fmt.Fprintln(w, "      --verify          Skip files whose fenced block count changes")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show unchanged files and pass details")
	fmt.Fprintln(w, "  -h, --help            Show this help")
	fmt.Fprintln(w, "      --version         Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDUPGRADE_CONFIG      Config file name or path")
	fmt.Fprintln(w, "  MDUPGRADE_WORKERS     Parallel workers")
	fmt.Fprintln(w, "  MDUPGRADE_VERIFY      true/false")
	fmt.Fprintln(w, "  MDUPGRADE_DRY_RUN     true/false")
	fmt.Fprintln(w, "  MDUPGRADE_EXTENSIONS  Comma-separated extensions (default .md)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Per-file errors are reported but do not change the exit status.")
}
