package scaffold

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/replicate-labs/replicate/internal/initializer"
	"github.com/replicate-labs/replicate/internal/manifest"
	"github.com/replicate-labs/replicate/internal/platform"
	"github.com/replicate-labs/replicate/internal/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Result holds the outcome of a scaffold run.
type Result struct {
	ProjectRoot string
	Files       []string // Paths written, relative to ProjectRoot, in write order
	Warnings    []string
}

// Scaffolder runs the initializer and restructures its output.
type Scaffolder struct {
	fs     afero.Fs
	tool   initializer.Initializer
	logger *logrus.Logger
}

// New returns a Scaffolder that writes to fs and creates projects with tool.
// A nil logger discards all output.
func New(fs afero.Fs, tool initializer.Initializer, logger *logrus.Logger) *Scaffolder {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Scaffolder{fs: fs, tool: tool, logger: logger}
}

// Run creates <baseDir>/<req.Name> with the initializer, then rewrites it into
// the two-crate layout. Steps run in order and the first failure ends the run;
// nothing already written is rolled back. An invalid name or base directory
// is reported as a plain error before anything runs; every later failure is
// an *Error.
func (s *Scaffolder) Run(ctx context.Context, req Request, baseDir string) (*Result, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, err
	}

	sc, err := newContext(baseDir, req.Name)
	if err != nil {
		return nil, err
	}

	log := s.logger.WithFields(logrus.Fields{
		"name": req.Name,
		"root": sc.ProjectRoot,
	})

	if err := s.initialize(ctx, req, sc, log); err != nil {
		return nil, err
	}
	return s.restructure(req, sc, log)
}

// initialize runs `<tool> new <name>` in the base directory.
func (s *Scaffolder) initialize(ctx context.Context, req Request, sc Context, log *logrus.Entry) error {
	tool := s.tool.Tool()
	args := s.tool.Args(req.Name)

	if err := initializer.CheckVersion(ctx, s.tool, req.MinToolchain); err != nil {
		return &Error{Kind: KindInitializer, Tool: tool, Args: []string{"--version"}, Err: err}
	}

	log.WithField("tool", tool).Debugf("running %s %s in %s", tool, strings.Join(args, " "), sc.BaseDir)
	out, err := s.tool.New(ctx, sc.BaseDir, req.Name)
	if err != nil {
		return &Error{Kind: KindInitializer, Tool: tool, Args: args, Err: err}
	}
	if !out.Success() {
		log.WithField("exit_code", out.ExitCode).Debugf("initializer stderr: %s", strings.TrimSpace(out.Stderr))
		return &Error{
			Kind:     KindInitializer,
			Tool:     tool,
			Args:     args,
			ExitCode: out.ExitCode,
			Stderr:   out.Stderr,
		}
	}
	return nil
}

// restructure performs the directory surgery. All paths are relative to the
// project root through a base-path filesystem.
func (s *Scaffolder) restructure(req Request, sc Context, log *logrus.Entry) (*Result, error) {
	w := platform.NewWriter(afero.NewBasePathFs(s.fs, sc.ProjectRoot))
	data := render.NewData(req.Name, req.Dependency)
	result := &Result{ProjectRoot: sc.ProjectRoot}

	if err := w.Remove(filepath.FromSlash(render.DefaultEntryPoint)); err != nil {
		return nil, ioError("remove", render.DefaultEntryPoint, err)
	}
	log.WithField("path", render.DefaultEntryPoint).Debug("removed default entry point")

	// Binary crate first; a failure here stops before the library is touched.
	for _, dir := range []string{
		render.BinDir(req.Name) + "/commands",
		render.LibDir(req.Name) + "/util",
	} {
		if err := w.CreateDirAll(filepath.FromSlash(dir)); err != nil {
			return nil, ioError("mkdir", dir, err)
		}
		log.WithField("path", dir).Debug("created directory")
	}

	artifacts := append(render.RenderBin(data), render.RenderLib(data)...)
	for _, a := range artifacts {
		if err := s.writeArtifact(w, a, log); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, a.Path)
	}

	if err := s.patchManifest(w, data, log); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, render.ManifestPath)

	result.Warnings = validateManifest(w.Fs())
	for _, warning := range result.Warnings {
		log.Warn(warning)
	}

	return result, nil
}

// patchManifest appends the library target to an existing Cargo.toml. A
// missing manifest is an error; the append must never create one.
func (s *Scaffolder) patchManifest(w *platform.Writer, data render.Data, log *logrus.Entry) error {
	existing, err := w.ReadToString(render.ManifestPath)
	if err != nil {
		return ioError("read", render.ManifestPath, err)
	}

	patch := render.RenderManifestPatch(data)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		patch.Contents = append([]byte("\n"), patch.Contents...)
	}
	return s.writeArtifact(w, patch, log)
}

func (s *Scaffolder) writeArtifact(w *platform.Writer, a render.Artifact, log *logrus.Entry) error {
	path := filepath.FromSlash(a.Path)

	var err error
	switch a.Mode {
	case render.AppendOrCreate:
		err = w.Append(path, a.Contents)
	default:
		err = w.Write(path, a.Contents)
	}
	if err != nil {
		return ioError(a.Mode.String(), a.Path, err)
	}

	log.WithFields(logrus.Fields{"path": a.Path, "op": a.Mode.String()}).Debug("wrote file")
	return nil
}

// validateManifest checks the patched manifest and returns any problems as
// warnings. The project is already on disk, so none of them are fatal.
func validateManifest(fs afero.Fs) []string {
	res, err := manifest.ValidateFile(fs, render.ManifestPath)
	if err != nil {
		return []string{fmt.Sprintf("could not validate %s: %v", render.ManifestPath, err)}
	}

	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, render.ManifestPath+": "+issue.String())
	}
	return warnings
}
