// Package platform provides the filesystem primitives the scaffolder is built
// from: write, append, remove, read and recursive directory creation. Every
// primitive is a single call against an afero.Fs, so the same code runs on
// the real disk, an in-memory filesystem, or a base-path-restricted view.
package platform
