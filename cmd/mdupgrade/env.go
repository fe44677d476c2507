package main

import (
	"io"
	"log/slog"
	"os"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout      io.Writer
	Stderr      io.Writer
	LookupEnv   func(key string) (string, bool)
	Environ     func() []string
	SetMaxProcs func(logger *slog.Logger) // nil leaves GOMAXPROCS untouched
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		LookupEnv:   os.LookupEnv,
		Environ:     os.Environ,
		SetMaxProcs: setMaxProcs,
	}
}

// getenv returns the value of key, or "" when unset.
func (e *Environment) getenv(key string) string {
	if e.LookupEnv == nil {
		return ""
	}
	v, _ := e.LookupEnv(key)
	return v
}
