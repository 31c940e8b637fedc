package logger

import (
	"io"

	"go.uber.org/multierr"

	"github.com/philipp01105/toolbox/formatter"
)

// MultiLogger sends every line to each of its loggers in order.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a new multi-logger
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Print forwards msg to every logger.
func (m *MultiLogger) Print(msg string) {
	for _, l := range m.loggers {
		l.Print(msg)
	}
}

// Printf formats once and forwards the result to every logger.
func (m *MultiLogger) Printf(format string, args ...any) {
	m.Print(formatter.Format(format, args...))
}

// Close closes every logger that implements io.Closer and returns all of
// their errors combined.
func (m *MultiLogger) Close() error {
	var err error
	for _, l := range m.loggers {
		if c, ok := l.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
