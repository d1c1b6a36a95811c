// Package cli defines the Cobra command tree for the replicate CLI. Each file
// registers one top-level command with the root command. Commands delegate to
// internal packages for the scaffolding work and only handle flags, logging
// setup, and output.
package cli
