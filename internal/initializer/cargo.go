package initializer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultTool is the initializer binary used when none is configured.
const DefaultTool = "cargo"

// Cargo runs `cargo new <name>`.
type Cargo struct {
	// Bin is the binary to execute; defaults to DefaultTool.
	Bin string
}

// NewCargo returns a Cargo initializer for bin, or the default tool when bin is empty.
func NewCargo(bin string) *Cargo {
	if bin == "" {
		bin = DefaultTool
	}
	return &Cargo{Bin: bin}
}

// Tool returns the configured binary.
func (c *Cargo) Tool() string {
	if c.Bin == "" {
		return DefaultTool
	}
	return c.Bin
}

// Args returns ["new", name].
func (c *Cargo) Args(name string) []string {
	return []string{"new", name}
}

// New runs `<bin> new <name>` with dir as the working directory. Output is
// captured, never streamed, so the happy path stays silent.
func (c *Cargo) New(ctx context.Context, dir, name string) (*Outcome, error) {
	return c.run(ctx, dir, c.Args(name)...)
}

// Version runs `<bin> --version` and parses output such as
// "cargo 1.75.0 (1d8b05cdd 2023-11-20)".
func (c *Cargo) Version(ctx context.Context) (*semver.Version, error) {
	out, err := c.run(ctx, "", "--version")
	if err != nil {
		return nil, err
	}
	if !out.Success() {
		return nil, fmt.Errorf("%s --version exited with status %d", c.Tool(), out.ExitCode)
	}
	return ParseVersionOutput(out.Stdout)
}

func (c *Cargo) run(ctx context.Context, dir string, args ...string) (*Outcome, error) {
	bin, err := exec.LookPath(c.Tool())
	if err != nil {
		return nil, fmt.Errorf("initializer %q not found: %w", c.Tool(), err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	out := &Outcome{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return out, fmt.Errorf("running %s %s: %w", c.Tool(), strings.Join(args, " "), err)
	}

	return out, nil
}
