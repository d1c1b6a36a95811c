package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a scaffold failure.
type Kind int

const (
	// KindIO is a filesystem failure during restructuring.
	KindIO Kind = iota + 1
	// KindInitializer means the external initializer could not run, exited
	// non-zero, or is older than the configured minimum.
	KindInitializer
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindInitializer:
		return "initializer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by Scaffolder.Run for every failure.
type Error struct {
	Kind Kind

	// IO failures.
	Op   string // "remove", "mkdir", "create", "append", "read"
	Path string // Path relative to the project root

	// Initializer failures.
	Tool     string
	Args     []string
	ExitCode int    // 0 when the tool never ran
	Stderr   string // Captured tool stderr, for diagnostics only

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInitializer:
		cmd := strings.TrimSpace(e.Tool + " " + strings.Join(e.Args, " "))
		if e.ExitCode != 0 {
			return fmt.Sprintf("`%s` failed with exit status %d", cmd, e.ExitCode)
		}
		if e.Err != nil {
			return fmt.Sprintf("`%s` failed: %v", cmd, e.Err)
		}
		return fmt.Sprintf("`%s` failed", cmd)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or 0 if err is not a scaffold error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// AsError returns (*Error, true) if err is or wraps a scaffold Error.
func AsError(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func ioError(op, path string, err error) error {
	return &Error{Kind: KindIO, Op: op, Path: path, Err: err}
}
