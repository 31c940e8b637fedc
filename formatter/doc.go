// Package formatter turns messages into log lines.
//
// Format implements the "{}" placeholder syntax used by the loggers:
// each placeholder is replaced, left to right, by the fmt.Sprint form of
// the next argument. Missing arguments leave the placeholder in place and
// surplus arguments are ignored, so a mismatched call never fails.
//
// AppendLine, Line and WriteLine produce the single-line layout shared by
// every logger:
//
//	[2026-01-15 12:00:00.042] message
//
// Both paths rely on Append-style functions (fmt.Append,
// time.AppendFormat) writing into a pooled bytes.Buffer. Buffers larger
// than 64 KiB are not returned to the pool to prevent a single large log
// line from permanently inflating memory usage.
package formatter
