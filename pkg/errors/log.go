package errors

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes one structured log line per
// error. The zero value logs JSON to stderr.
type LogHandler struct {
	// Verbose adds stack traces to the output.
	Verbose bool
	// Logger overrides the destination. Nil means JSON on stderr.
	Logger *zerolog.Logger
}

// NewLogHandler returns a LogHandler writing JSON lines to w.
func NewLogHandler(w io.Writer, verbose bool) *LogHandler {
	l := zerolog.New(w).With().Timestamp().Logger()
	return &LogHandler{Verbose: verbose, Logger: &l}
}

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &l
}

// HandleError logs a PaperError.
func (h *LogHandler) HandleError(err *PaperError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Err(err.Err)
	if err.Path != "" {
		ev = ev.Str("path", err.Path)
	}
	ev.Msg("paper error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("paper panic")
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().Str("widget", err.Widget)
	if err.Recovered != nil {
		ev = ev.Interface("recovered", err.Recovered)
	}
	if err.Err != nil {
		ev = ev.Err(err.Err)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("paper build error")
}
