package mdupgrade

import (
	"context"
	"log/slog"

	"github.com/alnah/go-mdupgrade/internal/pipeline"
	"github.com/alnah/go-mdupgrade/internal/verify"
)

var defaultPipeline = pipeline.Default(nil)

// Transform applies the default rewrite pipeline to content.
// Diagnostics are discarded; use an Upgrader to receive them.
func Transform(content string) string {
	return defaultPipeline.Run(content)
}

// Upgrader runs the rewrite pipeline with optional logging and verification.
// Create with NewUpgrader.
type Upgrader struct {
	logger   *slog.Logger
	verify   bool
	pipeline *pipeline.Pipeline
}

// Option configures an Upgrader.
type Option func(*Upgrader)

// WithLogger sets the logger for parse warnings and per-pass debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Upgrader) {
		u.logger = logger
	}
}

// WithVerify enables the fenced code block count check in Upgrade.
func WithVerify(enabled bool) Option {
	return func(u *Upgrader) {
		u.verify = enabled
	}
}

// NewUpgrader creates an Upgrader with the default pass order.
func NewUpgrader(opts ...Option) *Upgrader {
	u := &Upgrader{}
	for _, opt := range opts {
		opt(u)
	}
	if u.logger == nil {
		u.logger = slog.New(slog.DiscardHandler)
	}
	u.pipeline = pipeline.Default(u.logger)
	return u
}

// Result holds the output of Upgrade.
type Result struct {
	Content string
	Changed bool
}

// Transform applies the pipeline to content.
func (u *Upgrader) Transform(content string) string {
	return u.pipeline.Run(content)
}

// Upgrade transforms content and reports whether it changed. With
// verification enabled, a fence count mismatch returns ErrFenceMismatch
// together with the transformed Result.
func (u *Upgrader) Upgrade(ctx context.Context, content string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := u.pipeline.Run(content)
	result := &Result{Content: out, Changed: out != content}

	if u.verify && result.Changed {
		if err := verify.CheckFences(content, out); err != nil {
			return result, err
		}
	}
	return result, nil
}

// PassNames returns the pipeline's pass names in execution order.
func (u *Upgrader) PassNames() []string {
	return u.pipeline.Names()
}
