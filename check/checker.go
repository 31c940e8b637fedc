package check

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// stderr receives the diagnostics of DefaultHandler and of Fatal when a
// handler returns.
var stderr io.Writer = os.Stderr

// Handler reports a fatal error. A Handler must not return; if it does,
// Fatal terminates the process anyway.
type Handler func(msg string)

// Checker carries the error handler used by the checks. The zero value
// is not usable; create one with New. A nil *Checker passed to any check
// stands for Default().
type Checker struct {
	mu      sync.RWMutex
	handler Handler
}

// New creates a Checker reporting through h. A nil h selects DefaultHandler.
func New(h Handler) *Checker {
	if h == nil {
		h = DefaultHandler
	}
	return &Checker{handler: h}
}

// SetHandler replaces the handler used by subsequent checks.
func (c *Checker) SetHandler(h Handler) {
	c = resolve(c)
	if h == nil {
		h = DefaultHandler
	}
	c.mu.Lock()
	c.handler = h
	c.mu.Unlock()
}

// Handler returns the active handler.
func (c *Checker) Handler() Handler {
	c = resolve(c)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.handler
}

// Fatal reports msg through the active handler and never returns
// normally. A handler that returns is treated as broken: Fatal prints a
// notice to stderr and exits with status 1.
func (c *Checker) Fatal(msg string) {
	c.Handler()(msg)
	fmt.Fprintln(stderr, "Error handler failure - exiting")
	osExit(1)
}

// Fatalf formats with fmt.Sprintf and calls Fatal.
func (c *Checker) Fatalf(format string, args ...any) {
	c.Fatal(fmt.Sprintf(format, args...))
}

func resolve(c *Checker) *Checker {
	if c == nil {
		return Default()
	}
	return c
}

// DefaultHandler prints msg to stderr and exits with status 1.
func DefaultHandler(msg string) {
	fmt.Fprintf(stderr, "Fatal Error: %s\n\n", msg)
	osExit(1)
}

// Failure is the panic value raised by PanicHandler.
type Failure struct {
	Message string
}

func (f *Failure) Error() string { return f.Message }

// PanicHandler panics with a *Failure instead of exiting. Combined with
// Catch it lets embedding code turn fatal checks into errors.
func PanicHandler(msg string) {
	panic(&Failure{Message: msg})
}

// Catch runs fn and returns the *Failure raised by PanicHandler, if any.
// Other panics are propagated unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Failure)
			if !ok {
				panic(r)
			}
			err = f
		}
	}()
	fn()
	return nil
}
