package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// installed wraps the process-wide handler so it can live in an atomic.Pointer.
type installed struct{ h ErrorHandler }

var current atomic.Pointer[installed]

func init() {
	SetHandler(nil)
}

// SetHandler installs h as the process-wide handler. Nil installs a
// LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&installed{h: h})
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report hands err to the installed handler, stamping a zero Timestamp with
// the current time. Nil is ignored.
func Report(err *PaperError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleError(err)
}

// ReportBuildError is Report for widget build failures.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleBuildError(err)
}

// Recover reports a panic in progress as a PanicError for op. It must be
// called directly by a deferred statement:
//
//	defer errors.Recover("cmd.paper")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	Handler().HandlePanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the stack of its caller's caller, one function and
// file:line pair per frame, at most 32 frames deep.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(3, pcs)]
	if len(pcs) == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}
