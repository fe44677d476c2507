// Package mdupgrade rewrites MyST Markdown sources into the newer
// MyST/mystmd dialect.
//
// # Quick Start
//
// Transform a document with the default pipeline:
//
//	out := mdupgrade.Transform(content)
//
// # Rewrite Pipeline
//
// Transform runs five passes, in this order:
//
//  1. Remove empty +++ {"user_expressions": []} markers
//  2. {doc}`title <target>` -> [title](target.md)
//  3. {doc}`target` -> [](target.md)
//  4. Code-cell YAML headers -> :label:, :caption:, :width:, :tags: options
//  5. Lowercase directive names (```{PRF:Theorem} -> ```{prf:theorem})
//
// Text that no pass recognizes is copied through unchanged. A code-cell
// header with invalid YAML is left as written and a warning is logged.
//
// # Configuration
//
// Use functional options to log diagnostics or verify block structure:
//
//	u := mdupgrade.NewUpgrader(
//	    mdupgrade.WithLogger(slog.Default()),
//	    mdupgrade.WithVerify(true),
//	)
//	result, err := u.Upgrade(ctx, content)
//
// An Upgrader holds no mutable state and is safe for concurrent use.
package mdupgrade
