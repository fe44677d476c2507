// Package pipeline implements the MyST-to-Markdown rewrite pipeline.
//
// The pipeline is an ordered list of passes. Each pass is a pure function
// from document text to document text:
//   - Blank user-expression marker removal (+++ {"user_expressions": []})
//   - Titled {doc} cross-references to Markdown links
//   - Blank-title {doc} cross-references to Markdown links
//   - Code-cell YAML headers to inline directive options
//   - Directive name lowercasing (```{PRF:Theorem} -> ```{prf:theorem})
//
// Passes never share state, so a Pipeline is safe for concurrent use.
// Text outside a pass's pattern is copied through byte-for-byte.
package pipeline
