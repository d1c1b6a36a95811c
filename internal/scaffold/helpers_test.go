package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/replicate-labs/replicate/internal/initializer"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// stubInitializer lets tests script the initializer's behaviour.
type stubInitializer struct {
	newFn   func(dir, name string) (*initializer.Outcome, error)
	version string
	calls   int
}

func (s *stubInitializer) Tool() string              { return "cargo" }
func (s *stubInitializer) Args(name string) []string { return []string{"new", name} }

func (s *stubInitializer) New(_ context.Context, dir, name string) (*initializer.Outcome, error) {
	s.calls++
	return s.newFn(dir, name)
}

func (s *stubInitializer) Version(context.Context) (*semver.Version, error) {
	if s.version == "" {
		return nil, errors.New("no version")
	}
	return semver.NewVersion(s.version)
}

// failingInitializer exits with code and writes nothing.
func failingInitializer(code int) *stubInitializer {
	return &stubInitializer{newFn: func(string, string) (*initializer.Outcome, error) {
		return &initializer.Outcome{ExitCode: code, Stderr: "error: destination already exists\n"}, nil
	}}
}

// layoutInitializer writes the given files (relative to <dir>/<name>) to fs.
func layoutInitializer(fs afero.Fs, files map[string]string) *stubInitializer {
	return &stubInitializer{newFn: func(dir, name string) (*initializer.Outcome, error) {
		root := filepath.Join(dir, name)
		for rel, content := range files {
			path := filepath.Join(root, filepath.FromSlash(rel))
			if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, err
			}
			if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
				return nil, err
			}
		}
		return &initializer.Outcome{}, nil
	}}
}

// listFiles returns every regular file under root, relative and slash-separated, sorted.
func listFiles(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()
	var files []string
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func snapshot(t *testing.T, fs afero.Fs, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, f := range listFiles(t, fs, root) {
		out[f] = readFile(t, fs, filepath.Join(root, filepath.FromSlash(f)))
	}
	return out
}

func mustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return wd
}
