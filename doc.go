// Package reveal is the root of the reveal module.
//
// The mask engine lives in [github.com/go-drift/reveal/pkg/mask], the JSON
// tree converter in [github.com/go-drift/reveal/pkg/jsontree] and the
// image preview in [github.com/go-drift/reveal/pkg/preview]. This package
// only configures what they share.
package reveal

import (
	"log/slog"

	"github.com/go-drift/reveal/internal/logging"
)

// SetLogger installs the logger used by every reveal package. Passing nil
// silences logging again, which is the default.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger installed with SetLogger.
func Logger() *slog.Logger {
	return logging.Logger()
}
