package main

import (
	"runtime"

	"github.com/alnah/go-mdupgrade/internal/config"
)

// maxAutoWorkers caps the auto-detected worker count. Files are small and
// mostly I/O-bound, so more workers than this only adds contention.
const maxAutoWorkers = 8

// resolveWorkers determines the worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkers(configured int) int {
	if configured > 0 {
		if configured > config.MaxWorkers {
			return config.MaxWorkers
		}
		return configured
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}
