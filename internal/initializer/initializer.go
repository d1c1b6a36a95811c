package initializer

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

// Initializer creates a new project directory named name inside dir.
type Initializer interface {
	// Tool returns the binary name used in diagnostics (e.g., "cargo").
	Tool() string

	// Args returns the arguments New passes to the tool for name.
	Args(name string) []string

	// New runs the tool. A process that ran and exited non-zero is reported
	// through Outcome.ExitCode; error is reserved for failures to run at all
	// (binary not found, context canceled, I/O failure).
	New(ctx context.Context, dir, name string) (*Outcome, error)

	// Version reports the tool's own version.
	Version(ctx context.Context) (*semver.Version, error)
}

// Outcome captures the result of an initializer run.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the tool exited with status 0.
func (o *Outcome) Success() bool {
	return o != nil && o.ExitCode == 0
}
