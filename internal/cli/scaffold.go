package cli

import (
	"fmt"

	"github.com/replicate-labs/replicate/internal/config"
	"github.com/replicate-labs/replicate/internal/initializer"
	"github.com/replicate-labs/replicate/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	scaffoldDir    string
	scaffoldDryRun bool
)

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldDir, "dir", "", "Parent directory for the new project (default: current directory)")
	scaffoldCmd.Flags().BoolVar(&scaffoldDryRun, "dry-run", false, "Show the files that would be created without touching the disk")
	rootCmd.AddCommand(scaffoldCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:     "cli <name>",
	Aliases: []string{"new"},
	Short:   "Create a Rust CLI application with a binary and a library crate",
	Long: `Run "cargo new <name>", then restructure the result:

  src/bin/<name>/   main.rs, cli.rs and an example init command
  src/<name>/       lib.rs with the error type and command helpers

Cargo.toml gains the argument-parser dependency and a [lib] section.

Examples:
  replicate cli test_app
  replicate cli my-tool --dir ~/src
  replicate cli my-tool --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Current()

		req, err := scaffold.NewRequest(args[0], settings.Dependency)
		if err != nil {
			return err
		}
		req.MinToolchain = settings.MinToolchain

		baseDir := scaffoldDir
		if baseDir == "" {
			baseDir = "."
		}

		if scaffoldDryRun {
			return runDryRun(cmd, req, baseDir)
		}

		s := scaffold.New(afero.NewOsFs(), initializer.NewCargo(settings.Initializer), logger)
		_, err = s.Run(cmd.Context(), req, baseDir)
		return err
	},
}

// runDryRun plays the whole pipeline against an in-memory layer over the real
// filesystem, so existing directories are still detected but nothing is written.
func runDryRun(cmd *cobra.Command, req scaffold.Request, baseDir string) error {
	overlay := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(afero.NewOsFs()), afero.NewMemMapFs())
	s := scaffold.New(overlay, initializer.NewSimulated(overlay), logger)

	result, err := s.Run(cmd.Context(), req, baseDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Would create %s\n", result.ProjectRoot)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	return nil
}
