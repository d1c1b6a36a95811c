package initializer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
)

// SimulatedVersion is the version the Simulated initializer reports.
const SimulatedVersion = "1.75.0"

// Simulated reproduces the layout `cargo new` creates, on an afero
// filesystem. It never starts a process.
type Simulated struct {
	Fs afero.Fs

	// SkipManifest leaves Cargo.toml out of the generated project.
	SkipManifest bool
}

// NewSimulated returns a Simulated initializer writing to fs.
func NewSimulated(fs afero.Fs) *Simulated {
	return &Simulated{Fs: fs}
}

// Tool returns "cargo".
func (s *Simulated) Tool() string { return DefaultTool }

// Args returns ["new", name].
func (s *Simulated) Args(name string) []string { return []string{"new", name} }

// Version returns SimulatedVersion.
func (s *Simulated) Version(context.Context) (*semver.Version, error) {
	return semver.NewVersion(SimulatedVersion)
}

// New writes <dir>/<name>/Cargo.toml and <dir>/<name>/src/main.rs. Like
// cargo, it exits with status 101 when the destination already exists.
func (s *Simulated) New(_ context.Context, dir, name string) (*Outcome, error) {
	root := filepath.Join(dir, name)

	exists, err := afero.Exists(s.Fs, root)
	if err != nil {
		return nil, err
	}
	if exists {
		return &Outcome{
			ExitCode: 101,
			Stderr:   fmt.Sprintf("error: destination `%s` already exists\n", root),
		}, nil
	}

	if err := s.Fs.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		return nil, err
	}
	if !s.SkipManifest {
		if err := afero.WriteFile(s.Fs, filepath.Join(root, "Cargo.toml"), []byte(DefaultManifest(name)), 0644); err != nil {
			return nil, err
		}
	}
	if err := afero.WriteFile(s.Fs, filepath.Join(root, "src", "main.rs"), []byte(DefaultMain), 0644); err != nil {
		return nil, err
	}

	return &Outcome{
		Stderr: fmt.Sprintf("     Created binary (application) `%s` package\n", name),
	}, nil
}

// DefaultManifest returns the Cargo.toml `cargo new` writes for name.
func DefaultManifest(name string) string {
	return fmt.Sprintf(`[package]
name = %q
version = "0.1.0"
edition = "2021"

[dependencies]
`, name)
}

// DefaultMain is the src/main.rs `cargo new` writes.
const DefaultMain = `fn main() {
    println!("Hello, world!");
}
`
