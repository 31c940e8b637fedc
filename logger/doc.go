// Package logger writes plain timestamped lines.
//
// A Logger has a single method, Print. Every implementation in this
// package prefixes the message with the local time and ends it with a
// newline:
//
//	[2024-03-05 07:08:09.045] message
//
// FileLogger owns one file at <Dir>/log-<Name>.txt. It announces itself
// with "<Name> started", hands every line to the OS as it is printed
// (FileConfig.Sync adds an fsync per line) and writes
// "Closing the log." when closed. Printing to a closed FileLogger does
// nothing. NoopLogger discards everything and is the logger to pass when
// no output is wanted.
//
// Messages may use {} placeholders, filled left to right from the
// arguments:
//
//	logger.Printf(log, "{} plus {} is {}", 1, 1, 2)
//
// Placeholders without an argument stay as written and extra arguments
// are ignored.
//
// WriterLogger, MultiLogger and SlogHandler reuse the same line format for
// arbitrary writers, fan-out and log/slog. The package keeps a default
// Logger, writing to stderr, behind Print and Logf.
package logger
