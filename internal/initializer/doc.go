// Package initializer defines the Initializer interface for the external tool
// that creates a starting single-binary project, and provides the cargo
// implementation plus a simulated one that reproduces cargo's output layout on
// an afero filesystem for dry runs and tests.
package initializer
