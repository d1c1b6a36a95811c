package cli

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/replicate-labs/replicate/internal/branding"
	"github.com/replicate-labs/replicate/internal/scaffold"
)

// Report writes err to w in the form
//
//	error: <message>
//	<captured initializer output, indented>
//	hint: <suggestion>
//
// and returns the process exit code. Only the first line is always present.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "error: %v\n", err)

	se, ok := scaffold.AsError(err)
	if !ok || se.Kind != scaffold.KindInitializer {
		return 1
	}

	if stderr := strings.TrimSpace(se.Stderr); stderr != "" {
		for _, line := range strings.Split(stderr, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	switch {
	case errors.Is(se.Err, exec.ErrNotFound):
		fmt.Fprintf(w, "hint: install %s or run '%s config set initializer <path>'\n", se.Tool, branding.CLIName())
	case se.ExitCode != 0:
		fmt.Fprintln(w, "hint: the destination directory may already exist")
	}
	return 1
}
