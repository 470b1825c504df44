// Package logging owns the command-line logger. Library packages never log
// on their own; the CLI hands Logger to the engine through core.WithLogger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable consulted when no level flag is set.
const EnvLevel = "LINESHAPE_LOG_LEVEL"

// Logger is the process-wide logger. It writes to stderr without timestamps.
var Logger = newLogger(os.Stderr, log.InfoLevel)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Prefix: "lineshape"})
	l.SetTimeFormat("")
	l.SetLevel(level)
	l.SetStyles(styles())
	return l
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Keys["model"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	s.Values["err"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	return s
}

// ParseLevel converts a level name (debug, info, warn, error) to a log level.
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("logging: unknown level %q", name)
	}
}

// Configure replaces Logger with one writing to w at the given level. An
// empty level falls back to $LINESHAPE_LOG_LEVEL, then info.
func Configure(w io.Writer, level string) error {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	Logger = newLogger(w, lvl)
	return nil
}
