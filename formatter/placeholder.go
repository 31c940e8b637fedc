package formatter

import (
	"fmt"
	"strings"
)

// Placeholder is the token replaced by positional arguments.
const Placeholder = "{}"

// Format substitutes each literal "{}" in format, left to right, with the
// fmt.Sprint form of the corresponding argument.
//
// Substitution is deliberately lenient: once the arguments run out the
// remaining placeholders are kept as literal text, and arguments left over
// after the last placeholder are dropped.
//
//	Format("{} plus {} is {}", 1, 1, 2) // "1 plus 1 is 2"
//	Format("{} {}", 1)                  // "1 {}"
//	Format("{}", 1, 2)                  // "1"
func Format(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	buf := getBuffer()
	buf.Write(AppendFormat(buf.AvailableBuffer(), format, args...))
	s := buf.String()
	putBuffer(buf)
	return s
}

// AppendFormat is like Format but appends the result to dst.
func AppendFormat(dst []byte, format string, args ...any) []byte {
	for _, arg := range args {
		i := strings.Index(format, Placeholder)
		if i < 0 {
			break
		}
		dst = append(dst, format[:i]...)
		dst = fmt.Append(dst, arg)
		format = format[i+len(Placeholder):]
	}
	return append(dst, format...)
}
