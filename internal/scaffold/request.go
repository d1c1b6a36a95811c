package scaffold

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Request is the immutable input to one scaffold run.
type Request struct {
	Name         string // Application name, used as directory and crate name
	Dependency   string // Dependency line placed in the manifest patch
	MinToolchain string // Optional minimum initializer version, e.g. "1.60.0"
}

// NewRequest validates name and returns a Request for it.
func NewRequest(name, dependency string) (Request, error) {
	if err := ValidateName(name); err != nil {
		return Request{}, err
	}
	return Request{Name: name, Dependency: dependency}, nil
}

// ValidateName checks that name works both as a path segment and as a Rust
// crate name once hyphens become underscores.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("application name must not be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid application name %q: must match pattern [A-Za-z_][A-Za-z0-9_-]*", name)
	}
	if strings.Trim(name, "_-") == "" {
		return fmt.Errorf("invalid application name %q: must contain a letter or digit", name)
	}
	return nil
}

// Context holds the paths a run resolves everything against. The process
// working directory is never changed.
type Context struct {
	BaseDir     string // Directory the initializer runs in
	ProjectRoot string // BaseDir/<name>
}

func newContext(baseDir, name string) (Context, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return Context{}, fmt.Errorf("resolving base directory %s: %w", baseDir, err)
	}
	return Context{
		BaseDir:     abs,
		ProjectRoot: filepath.Join(abs, name),
	}, nil
}
