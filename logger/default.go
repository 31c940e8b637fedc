package logger

import (
	"os"
	"sync"

	"github.com/philipp01105/toolbox/core"
)

var (
	defaultLogger Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = NewWriterLogger(os.Stderr, core.SystemClock)
}

// Default returns the default logger
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil logger discards everything.
func SetDefault(l Logger) {
	if l == nil {
		l = NoopLogger{}
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Print logs msg using the default logger
func Print(msg string) {
	Default().Print(msg)
}

// Logf logs a {}-formatted message using the default logger
func Logf(format string, args ...any) {
	Printf(Default(), format, args...)
}
