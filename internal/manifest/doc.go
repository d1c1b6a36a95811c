// Package manifest handles parsing and validation of Cargo.toml build
// manifests. It decodes TOML with go-toml and validates the result against an
// embedded JSON Schema describing the two-crate layout: a package table plus
// a [lib] target pointing at the library crate.
package manifest
