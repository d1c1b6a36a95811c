package initializer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedNewLayout(t *testing.T) {
	mem := afero.NewMemMapFs()
	sim := NewSimulated(mem)

	out, err := sim.New(context.Background(), "/work", "test_app")
	require.NoError(t, err)
	assert.True(t, out.Success())

	main, err := afero.ReadFile(mem, "/work/test_app/src/main.rs")
	require.NoError(t, err)
	assert.Equal(t, DefaultMain, string(main))

	manifest, err := afero.ReadFile(mem, filepath.Join("/work/test_app", "Cargo.toml"))
	require.NoError(t, err)

	var parsed struct {
		Package struct {
			Name    string `toml:"name"`
			Version string `toml:"version"`
		} `toml:"package"`
	}
	require.NoError(t, toml.Unmarshal(manifest, &parsed))
	assert.Equal(t, "test_app", parsed.Package.Name)
	assert.Equal(t, "0.1.0", parsed.Package.Version)
}

func TestSimulatedRefusesExistingDestination(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work/taken", 0755))

	out, err := NewSimulated(mem).New(context.Background(), "/work", "taken")
	require.NoError(t, err)
	assert.Equal(t, 101, out.ExitCode)
	assert.Contains(t, out.Stderr, "already exists")
}

func TestSimulatedSkipManifest(t *testing.T) {
	mem := afero.NewMemMapFs()
	sim := &Simulated{Fs: mem, SkipManifest: true}

	_, err := sim.New(context.Background(), "/work", "bare")
	require.NoError(t, err)

	ok, err := afero.Exists(mem, "/work/bare/Cargo.toml")
	require.NoError(t, err)
	assert.False(t, ok)
}
