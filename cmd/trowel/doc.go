// Package main hosts the Trowel CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into manifest
// reads and updates, framework discovery, recovery sweeps, skill catalog
// listings, brief assembly, and configuration scaffolding. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// New behavior belongs in the internal packages; commands here stay thin
// adapters over them. Plain-text results for humans go to stdout while logs
// and warnings go to stderr, so command output stays safe to capture in
// scripts.
package main
