package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
)

// withHome points the config directory at a temporary home.
func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func resetFlags() {
	logLevelFlag = ""
	verboseFlag = false
	scaffoldDir = ""
	scaffoldDryRun = false
	versionShort = false
	versionJSON = false
}

// executeCommand runs the root command with args and returns what it wrote
// to stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	viper.Reset()
	resetFlags()
	t.Cleanup(func() {
		viper.Reset()
		resetFlags()
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
