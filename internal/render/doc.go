// Package render turns an application name into the source files of a
// two-crate Rust CLI. Rendering is pure: it reads only the embedded template
// set and never touches the filesystem.
package render
