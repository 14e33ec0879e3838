// Package config loads, normalizes, and validates Trowel configuration data.
//
// Settings come from a TOML file resolved from an explicit --config path, a
// project-local trowel.toml, or the user-wide config, in that order. Loading
// expands tilde shortcuts, turns every path absolute, and fills defaults for
// anything the file leaves out, so the rest of the CLI never re-derives the
// repos root, output layout, or logging knobs.
package config
