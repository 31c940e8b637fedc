package check

import "sync"

var (
	defaultChecker = New(DefaultHandler)
	defaultMu      sync.RWMutex
)

// Default returns the process-wide Checker used when a check receives a
// nil *Checker.
func Default() *Checker {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultChecker
}

// SetDefault replaces the process-wide Checker.
func SetDefault(c *Checker) {
	if c == nil {
		c = New(DefaultHandler)
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultChecker = c
}

// SetErrorHandler replaces the handler of the process-wide Checker.
func SetErrorHandler(h Handler) {
	Default().SetHandler(h)
}

// Fatal reports msg through the process-wide Checker.
func Fatal(msg string) {
	Default().Fatal(msg)
}
