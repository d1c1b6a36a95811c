package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// resolveLevel picks the effective log level. An explicit --log-level wins
// over --verbose, which wins over the configured level.
func resolveLevel(flag string, verbose bool, configured string) string {
	switch {
	case flag != "":
		return flag
	case verbose:
		return logrus.DebugLevel.String()
	case configured != "":
		return configured
	default:
		return logrus.WarnLevel.String()
	}
}

// configureLogger points l at w with the given level. Colours are used only
// when w is a terminal.
func configureLogger(l *logrus.Logger, w io.Writer, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      isTerminal(w),
		DisableColors:    !isTerminal(w),
	})
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
