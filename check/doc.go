// Package check provides fatal assertions with a pluggable error handler.
//
// Every check takes a *Checker as its first argument. The Checker holds
// the Handler invoked on failure; passing nil selects the process-wide
// Default(). The default handler prints the diagnostic to stderr and
// exits with status 1. A Handler must not return: if it does, Fatal
// prints "Error handler failure - exiting" and exits anyway.
//
//	c := check.New(nil)
//	check.EQ(c, len(moves), 3)
//	check.Prob(c, p)
//
// A failed check reports the source location, the argument expressions
// as written and their values:
//
//	board.go:42 len(moves) == 3
//	len(moves) = 2, 3 = 3
//
// The expressions are recovered by parsing the caller's source file with
// go/parser the first time a check fails there. When the source is not
// available (stripped binaries, -trimpath) generic names such as x and y
// are used instead.
//
// To embed code that uses checks in a larger program, install
// PanicHandler and wrap calls with Catch, which converts the failure into
// an error. ZapHandler routes failures through a zap logger.
//
// The D-prefixed family (DEQ, DTrue, DProb, ...) is compiled away when
// building with -tags release; see Debug.
package check
