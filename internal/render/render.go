package render

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

// WriteMode says how an artifact lands on disk.
type WriteMode int

const (
	// CreateOrTruncate creates the file or replaces its contents.
	CreateOrTruncate WriteMode = iota
	// AppendOrCreate appends to the file, creating it if absent.
	AppendOrCreate
)

func (m WriteMode) String() string {
	switch m {
	case CreateOrTruncate:
		return "create"
	case AppendOrCreate:
		return "append"
	default:
		return fmt.Sprintf("WriteMode(%d)", int(m))
	}
}

// Target groups artifacts by the crate (or file) they belong to.
type Target int

const (
	TargetBin Target = iota
	TargetLib
	TargetManifest
)

// Artifact is one rendered file. Path is relative to the project root and
// always uses forward slashes.
type Artifact struct {
	Path     string
	Contents []byte
	Mode     WriteMode
	Target   Target
}

// Data holds all template variables available to the templates.
type Data struct {
	Name       string // Application name, used verbatim in paths, e.g. "test_app"
	Crate      string // Library crate identifier, e.g. "test_app"
	ErrorType  string // Error enum name, e.g. "TestAppError"
	Dependency string // Dependency line placed in the manifest patch
}

// NewData creates a Data with derived fields populated.
func NewData(name, dependency string) Data {
	return Data{
		Name:       name,
		Crate:      CrateIdent(name),
		ErrorType:  TypeName(name) + "Error",
		Dependency: dependency,
	}
}

// BinDir returns the binary crate directory relative to the project root.
func BinDir(name string) string { return "src/bin/" + name }

// LibDir returns the library crate directory relative to the project root.
func LibDir(name string) string { return "src/" + name }

// ManifestPath is the build manifest relative to the project root.
const ManifestPath = "Cargo.toml"

// DefaultEntryPoint is the single-binary entry point the initializer creates.
const DefaultEntryPoint = "src/main.rs"

type fileSpec struct {
	tmpl string
	rel  string
}

var binFiles = []fileSpec{
	{"main.rs.tmpl", "main.rs"},
	{"cli.rs.tmpl", "cli.rs"},
	{"commands_mod.rs.tmpl", "commands/mod.rs"},
	{"commands_init.rs.tmpl", "commands/init.rs"},
}

var libFiles = []fileSpec{
	{"lib.rs.tmpl", "lib.rs"},
	{"util_mod.rs.tmpl", "util/mod.rs"},
	{"command_prelude.rs.tmpl", "util/command_prelude.rs"},
	{"errors.rs.tmpl", "util/errors.rs"},
}

// Render returns every artifact in write order: binary crate, library crate,
// then the manifest patch.
func Render(d Data) []Artifact {
	var out []Artifact
	out = append(out, RenderBin(d)...)
	out = append(out, RenderLib(d)...)
	out = append(out, RenderManifestPatch(d))
	return out
}

// RenderBin renders the binary crate sources under src/bin/<name>.
func RenderBin(d Data) []Artifact {
	return renderSet(d, BinDir(d.Name), binFiles, TargetBin)
}

// RenderLib renders the library crate sources under src/<name>.
func RenderLib(d Data) []Artifact {
	return renderSet(d, LibDir(d.Name), libFiles, TargetLib)
}

// RenderManifestPatch renders the fragment appended to Cargo.toml.
func RenderManifestPatch(d Data) Artifact {
	return Artifact{
		Path:     ManifestPath,
		Contents: execute("cargo_patch.toml.tmpl", d),
		Mode:     AppendOrCreate,
		Target:   TargetManifest,
	}
}

func renderSet(d Data, dir string, files []fileSpec, target Target) []Artifact {
	out := make([]Artifact, 0, len(files))
	for _, f := range files {
		out = append(out, Artifact{
			Path:     dir + "/" + f.rel,
			Contents: execute(f.tmpl, d),
			Mode:     CreateOrTruncate,
			Target:   target,
		})
	}
	return out
}

// execute panics on failure: the template set is embedded and Data carries
// only strings, so an error here is a bug in the templates themselves.
func execute(name string, d Data) []byte {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, d); err != nil {
		panic(fmt.Sprintf("render: executing template %s: %v", name, err))
	}
	return buf.Bytes()
}
