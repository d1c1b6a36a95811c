package initializer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersionOutput extracts the version from "<tool> <version> [...]".
func ParseVersionOutput(output string) (*semver.Version, error) {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return nil, fmt.Errorf("unrecognized version output %q", strings.TrimSpace(output))
	}
	v, err := semver.NewVersion(strings.TrimPrefix(fields[1], "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", fields[1], err)
	}
	return v, nil
}

// CheckVersion verifies the initializer's version is at least floor by
// semver precedence, so 1.80.0-nightly passes a 1.60.0 floor. An empty floor
// disables the check.
func CheckVersion(ctx context.Context, tool Initializer, floor string) error {
	if floor == "" {
		return nil
	}

	minimum, err := semver.NewVersion(strings.TrimPrefix(floor, "v"))
	if err != nil {
		return fmt.Errorf("parsing minimum version %q: %w", floor, err)
	}

	v, err := tool.Version(ctx)
	if err != nil {
		return fmt.Errorf("checking %s version: %w", tool.Tool(), err)
	}

	if v.Compare(minimum) < 0 {
		return fmt.Errorf("%s %s is older than the required %s", tool.Tool(), v, floor)
	}
	return nil
}
