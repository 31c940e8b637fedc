package logger

import (
	"github.com/philipp01105/toolbox/formatter"
)

// Logger prints one line per call.
type Logger interface {
	Print(msg string)
}

// Printf substitutes each {} in format with the next argument and prints
// the result through l.
func Printf(l Logger, format string, args ...any) {
	l.Print(formatter.Format(format, args...))
}

// NoopLogger discards everything.
type NoopLogger struct{}

// Print does nothing.
func (NoopLogger) Print(string) {}

// Printf does nothing. The arguments are not formatted.
func (NoopLogger) Printf(string, ...any) {}

// Close does nothing.
func (NoopLogger) Close() error { return nil }
