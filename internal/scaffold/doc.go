// Package scaffold turns a freshly initialized single-binary cargo project
// into a two-crate layout: a binary crate under src/bin/<name> and a library
// crate under src/<name>, with Cargo.toml patched to declare the library. It
// powers the "replicate cli" command.
package scaffold
