package manifest

// CargoManifest is the subset of Cargo.toml the scaffolder reads.
type CargoManifest struct {
	Package      Package                `toml:"package" json:"package"`
	Lib          *LibTarget             `toml:"lib,omitempty" json:"lib,omitempty"`
	Dependencies map[string]interface{} `toml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// Package is the [package] table.
type Package struct {
	Name        string   `toml:"name" json:"name"`
	Version     string   `toml:"version" json:"version"`
	Edition     string   `toml:"edition,omitempty" json:"edition,omitempty"`
	Authors     []string `toml:"authors,omitempty" json:"authors,omitempty"`
	Description string   `toml:"description,omitempty" json:"description,omitempty"`
}

// LibTarget is the [lib] table.
type LibTarget struct {
	Name string `toml:"name" json:"name"`
	Path string `toml:"path" json:"path"`
}

// HasDependency reports whether name is declared under [dependencies].
func (m *CargoManifest) HasDependency(name string) bool {
	_, ok := m.Dependencies[name]
	return ok
}
