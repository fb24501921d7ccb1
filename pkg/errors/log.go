package errors

import (
	"log/slog"

	"github.com/go-drift/reveal/internal/logging"
)

// LogHandler is an ErrorHandler that writes to a slog.Logger.
type LogHandler struct {
	// Logger receives the records. Nil uses the shared reveal logger.
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.Logger()
}

// HandleError logs an Error at error level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if err.Source != "" {
		attrs = append(attrs, "source", err.Source)
	}
	h.logger().Error("reveal error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("reveal panic", attrs...)
}
