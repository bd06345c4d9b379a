// Package logging builds the shared slog logger.
package logging

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// New returns a logger writing text to a terminal and JSON otherwise, with
// the service name attached to every record.
func New(service string) *slog.Logger {
	var h slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		h = slog.NewTextHandler(os.Stderr, nil)
	} else {
		h = slog.NewJSONHandler(os.Stderr, nil)
	}

	return slog.New(h).With("service", service)
}
