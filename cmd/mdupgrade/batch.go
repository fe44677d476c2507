package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/alnah/go-mdupgrade"
	"github.com/alnah/go-mdupgrade/internal/fileutil"
	"github.com/alnah/go-mdupgrade/internal/hints"
)

// filePermissions applies only to files that do not exist yet; rewrites
// keep the original mode.
const filePermissions = 0o644 // rw-r--r--

// Sentinel errors for per-file operations.
var (
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWriteMarkdown = errors.New("failed to write markdown file")
)

// Upgrader is the interface for the rewrite service.
type Upgrader interface {
	Upgrade(ctx context.Context, content string) (*mdupgrade.Result, error)
}

// Compile-time interface implementation check.
var _ Upgrader = (*mdupgrade.Upgrader)(nil)

// FileResult holds the outcome of a single file.
type FileResult struct {
	Path     string
	Changed  bool
	Err      error
	Duration time.Duration
}

// upgradeBatch processes files concurrently with the given number of workers.
// Results are returned in input order.
func upgradeBatch(ctx context.Context, newUpgrader func(path string) Upgrader, files []string, workers int, dryRun bool) []FileResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]FileResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = FileResult{Path: files[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = upgradeFile(ctx, newUpgrader(files[idx]), files[idx], dryRun)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// upgradeFile reads, transforms and writes back a single file. Unchanged
// files and dry runs are never written.
func upgradeFile(ctx context.Context, u Upgrader, path string, dryRun bool) FileResult {
	start := time.Now()
	result := FileResult{Path: path}

	content, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	upgraded, err := u.Upgrade(ctx, string(content))
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Changed = upgraded.Changed

	if !upgraded.Changed || dryRun {
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFileAtomic(path, []byte(upgraded.Content), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrWriteMarkdown, err)
	}
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds per-outcome counts for a batch.
type ResultSummary struct {
	Changed   int
	Unchanged int
	Failed    int
}

// countResults tallies batch outcomes.
func countResults(results []FileResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Changed:
			summary.Changed++
		default:
			summary.Unchanged++
		}
	}
	return summary
}

// printResults outputs per-file results and a summary, returning the
// number of failed files.
func printResults(results []FileResult, quiet, verbose, dryRun bool, env *Environment) int {
	summary := countResults(results)

	changedVerb := "Transformed"
	if dryRun {
		changedVerb = "Would transform"
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.Path, r.Err, fileHint(r.Err))
			continue
		}

		if quiet {
			continue
		}

		switch {
		case r.Changed && verbose:
			fmt.Fprintf(env.Stdout, "%s: %s (%v)\n", changedVerb, r.Path, r.Duration.Round(time.Microsecond))
		case r.Changed:
			fmt.Fprintf(env.Stdout, "%s: %s\n", changedVerb, r.Path)
		case verbose:
			fmt.Fprintf(env.Stdout, "Unchanged: %s\n", r.Path)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d transformed, %d unchanged, %d failed\n", summary.Changed, summary.Unchanged, summary.Failed)
	}

	return summary.Failed
}

// fileHint picks a hint for a per-file error.
func fileHint(err error) string {
	switch {
	case errors.Is(err, mdupgrade.ErrFenceMismatch):
		return hints.ForFenceMismatch()
	case errors.Is(err, os.ErrPermission):
		return hints.ForPermission()
	}
	return ""
}
