package cmd

import (
	"io"
	"log/slog"

	"github.com/go-drift/reveal"
	"github.com/go-drift/reveal/pkg/errors"
)

// setupLogging installs a text logger on w for every reveal package and
// routes reported errors and recovered panics to it. Without verbose only
// warnings and errors are written.
func setupLogging(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	reveal.SetLogger(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
	return logger
}
