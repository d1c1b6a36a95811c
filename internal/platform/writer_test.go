package platform

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesAndTruncates(t *testing.T) {
	w := NewWriter(afero.NewMemMapFs())

	require.NoError(t, w.Write("/p/a.txt", []byte("first version")))
	require.NoError(t, w.Write("/p/a.txt", []byte("second")))

	got, err := w.ReadToString("/p/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestAppendCreatesThenAppends(t *testing.T) {
	w := NewWriter(afero.NewMemMapFs())

	require.NoError(t, w.Append("/Cargo.toml", []byte("[package]\n")))
	require.NoError(t, w.Append("/Cargo.toml", []byte("[lib]\n")))

	got, err := w.ReadToString("/Cargo.toml")
	require.NoError(t, err)
	assert.Equal(t, "[package]\n[lib]\n", got)
}

func TestRemove(t *testing.T) {
	w := NewWriter(afero.NewMemMapFs())
	require.NoError(t, w.Write("/src/main.rs", []byte("fn main() {}\n")))

	require.NoError(t, w.Remove("/src/main.rs"))
	ok, err := w.Exists("/src/main.rs")
	require.NoError(t, err)
	assert.False(t, ok)

	err = w.Remove("/src/main.rs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestReadToString(t *testing.T) {
	w := NewWriter(afero.NewMemMapFs())

	_, err := w.ReadToString("/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	require.NoError(t, w.Write("/bin", []byte{0xff, 0xfe, 0x00}))
	_, err = w.ReadToString("/bin")
	assert.True(t, errors.Is(err, ErrNotText), "got %v", err)
}

func TestCreateDirAll(t *testing.T) {
	mem := afero.NewMemMapFs()
	w := NewWriter(mem)

	require.NoError(t, w.CreateDirAll("/a/b/c"))
	require.NoError(t, w.CreateDirAll("/a/b/c"), "existing directory is not an error")

	ok, err := afero.DirExists(mem, "/a/b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOSWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewOSWriter()
	path := filepath.Join(dir, "nested", "file.rs")

	require.NoError(t, w.CreateDirAll(filepath.Dir(path)))
	require.NoError(t, w.Write(path, []byte("pub mod util;\n")))
	require.NoError(t, w.Append(path, []byte("pub mod more;\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pub mod util;\npub mod more;\n", string(got))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, FileMode, info.Mode().Perm()&FileMode)
	}
}

func TestWriteFailsWithoutParent(t *testing.T) {
	dir := t.TempDir()
	w := NewOSWriter()

	err := w.Write(filepath.Join(dir, "no", "such", "dir", "x.rs"), []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestBasePathResolution(t *testing.T) {
	mem := afero.NewMemMapFs()
	w := NewWriter(afero.NewBasePathFs(mem, "/work/test_app"))

	require.NoError(t, w.CreateDirAll("src/bin/test_app"))
	require.NoError(t, w.Write("src/bin/test_app/main.rs", []byte("fn main() {}\n")))

	ok, err := afero.Exists(mem, "/work/test_app/src/bin/test_app/main.rs")
	require.NoError(t, err)
	assert.True(t, ok)
}
