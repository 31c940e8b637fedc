package logger

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/toolbox/core"
	"github.com/philipp01105/toolbox/formatter"
)

// WriterLogger writes timestamped lines to an io.Writer.
type WriterLogger struct {
	mu    sync.Mutex
	w     io.Writer
	clock core.Clock
}

// NewWriterLogger returns a logger writing to w (default: os.Stderr),
// stamped by clock (default: core.SystemClock).
func NewWriterLogger(w io.Writer, clock core.Clock) *WriterLogger {
	if w == nil {
		w = os.Stderr
	}
	if clock == nil {
		clock = core.SystemClock
	}
	return &WriterLogger{w: w, clock: clock}
}

// Print writes msg as one line. Write errors are dropped.
func (l *WriterLogger) Print(msg string) {
	l.mu.Lock()
	_ = formatter.WriteLine(l.w, l.clock(), msg)
	l.mu.Unlock()
}

// Printf formats with {} placeholders and prints the result.
func (l *WriterLogger) Printf(format string, args ...any) {
	l.Print(formatter.Format(format, args...))
}
