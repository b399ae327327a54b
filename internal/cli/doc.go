// Package cli defines the Cobra command tree for the exgen CLI. Each file
// in this package registers one top-level command (new, generate:module,
// render, etc.) with the root command. Command implementations delegate to
// internal packages for business logic and only handle flag parsing, output
// formatting and prompting.
package cli
