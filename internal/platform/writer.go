package platform

import (
	"errors"
	"os"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// File and directory permissions for everything the writer creates.
const (
	FileMode os.FileMode = 0644
	DirMode  os.FileMode = 0755
)

// ErrNotText is returned by ReadToString when a file is not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// Writer performs single-call filesystem operations on an afero.Fs. Errors
// from the underlying filesystem are returned unchanged; nothing is retried
// and partial writes are not recovered.
type Writer struct {
	fs afero.Fs
}

// NewWriter returns a Writer backed by fs.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// NewOSWriter returns a Writer backed by the real filesystem.
func NewOSWriter() *Writer {
	return NewWriter(afero.NewOsFs())
}

// Fs returns the backing filesystem.
func (w *Writer) Fs() afero.Fs {
	return w.fs
}

// Write creates path if absent, truncates it if present, and writes data.
func (w *Writer) Write(path string, data []byte) error {
	return w.writeFlags(path, data, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// Append opens path in append mode, creating it if absent, and writes data.
func (w *Writer) Append(path string, data []byte) error {
	return w.writeFlags(path, data, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
}

func (w *Writer) writeFlags(path string, data []byte, flag int) error {
	f, err := w.fs.OpenFile(path, flag, FileMode)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Remove deletes a single file. It fails if path does not exist.
func (w *Writer) Remove(path string) error {
	return w.fs.Remove(path)
}

// ReadToString returns the contents of path. It fails if path does not exist
// or does not hold valid UTF-8.
func (w *Writer) ReadToString(path string) (string, error) {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &os.PathError{Op: "read", Path: path, Err: ErrNotText}
	}
	return string(data), nil
}

// CreateDirAll creates path and any missing parents. It succeeds if path is
// already a directory.
func (w *Writer) CreateDirAll(path string) error {
	return w.fs.MkdirAll(path, DirMode)
}

// Exists reports whether path exists.
func (w *Writer) Exists(path string) (bool, error) {
	return afero.Exists(w.fs, path)
}
