package formatter

import (
	"io"
	"time"
)

// TimestampLayout is the fixed layout of the log line prefix: local time
// with zero-padded millisecond precision.
const TimestampLayout = "2006-01-02 15:04:05.000"

// AppendLine appends "[<timestamp>] <msg>\n" to dst. The timestamp is
// always rendered in local time, whatever location t carries.
func AppendLine(dst []byte, t time.Time, msg string) []byte {
	dst = append(dst, '[')
	dst = t.Local().AppendFormat(dst, TimestampLayout)
	dst = append(dst, ']', ' ')
	dst = append(dst, msg...)
	return append(dst, '\n')
}

// Line returns the formatted log line for msg at t.
func Line(t time.Time, msg string) string {
	buf := getBuffer()
	buf.Write(AppendLine(buf.AvailableBuffer(), t, msg))
	s := buf.String()
	putBuffer(buf)
	return s
}

// WriteLine formats one line into a pooled buffer and writes it to w with
// a single Write call.
func WriteLine(w io.Writer, t time.Time, msg string) error {
	buf := getBuffer()
	buf.Write(AppendLine(buf.AvailableBuffer(), t, msg))
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}
