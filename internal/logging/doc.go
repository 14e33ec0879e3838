// Package logging assembles structured slog loggers and formatting helpers
// used across Trowel commands.
//
// It owns the configurable console/JSON handlers, centralizes level and sink
// plumbing, and keeps diagnostics on stderr so command stdout stays reserved
// for machine-readable output. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape and routing guarantees as the rest of the
// system.
package logging
