//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
)

// fakeCargo mimics the parts of cargo the scaffolder relies on: --version and
// "new <name>" with cargo's exit status 101 on an existing destination.
// FAKE_CARGO_SKIP_MANIFEST=1 leaves Cargo.toml out.
const fakeCargo = `#!/bin/sh
case "$1" in
  --version)
    echo "cargo 1.75.0 (1d8b05cdd 2023-11-20)"
    ;;
  new)
    if [ -e "$2" ]; then
      echo "error: destination $PWD/$2 already exists" >&2
      exit 101
    fi
    mkdir -p "$2/src"
    if [ "$FAKE_CARGO_SKIP_MANIFEST" != "1" ]; then
      printf '[package]\nname = "%s"\nversion = "0.1.0"\nedition = "2021"\n\n[dependencies]\n' "$2" > "$2/Cargo.toml"
    fi
    printf 'fn main() {\n    println!("Hello, world!");\n}\n' > "$2/src/main.rs"
    echo "     Created binary (application) $2 package" >&2
    ;;
  *)
    exit 2
    ;;
esac
`

// installFakeCargo writes the fake cargo into a temp dir and puts it first on PATH.
func installFakeCargo(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake cargo is a shell script")
	}

	binDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(binDir, "cargo"), []byte(fakeCargo), 0755); err != nil {
		t.Fatalf("writing fake cargo: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// listFiles returns every regular file under root, relative and slash-separated, sorted.
func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	sort.Strings(files)
	return files
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func mustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	return wd
}

func expectedLayout(name string) []string {
	files := []string{
		"Cargo.toml",
		"src/bin/NAME/cli.rs",
		"src/bin/NAME/commands/init.rs",
		"src/bin/NAME/commands/mod.rs",
		"src/bin/NAME/main.rs",
		"src/NAME/lib.rs",
		"src/NAME/util/command_prelude.rs",
		"src/NAME/util/errors.rs",
		"src/NAME/util/mod.rs",
	}
	for i, f := range files {
		files[i] = strings.ReplaceAll(f, "NAME", name)
	}
	sort.Strings(files)
	return files
}
