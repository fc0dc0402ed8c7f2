// Package logging installs the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// NewCommandLogger logs warnings and errors to stderr: text when stderr is a
// terminal, JSON when it is piped.
func NewCommandLogger() *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelWarn}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

// ToFile sends debug logging to path and makes it the default logger. The
// standard log package is redirected to the same file.
func ToFile(path string) (io.Closer, error) {
	f, err := tea.LogToFile(path, "qb")
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f, nil
}

// Discard drops all logging, for when the TUI owns the terminal.
func Discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
