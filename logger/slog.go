package logger

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger. Each record becomes one line of the form "LEVEL msg k=v ...".
type SlogHandler struct {
	logger Logger
	level  slog.Leveler
	attrs  []byte
	group  string
}

// NewSlogHandler creates a new slog.Handler printing through l. Records
// below level are dropped; a nil level means slog.LevelInfo.
func NewSlogHandler(l Logger, level slog.Leveler) *SlogHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &SlogHandler{logger: l, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

// Handle renders the record and prints it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	buf := make([]byte, 0, 64+len(record.Message)+len(s.attrs))
	buf = append(buf, record.Level.String()...)
	buf = append(buf, ' ')
	buf = append(buf, record.Message...)
	buf = append(buf, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, s.group, a)
		return true
	})
	s.logger.Print(string(buf))
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	newAttrs := make([]byte, len(s.attrs), len(s.attrs)+16*len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		level:  s.level,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{
		logger: s.logger,
		level:  s.level,
		attrs:  s.attrs,
		group:  joinKey(s.group, name),
	}
}

// appendAttr appends " key=value", flattening groups into dotted keys.
func appendAttr(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, prefix, ga)
		}
		return dst
	}

	dst = append(dst, ' ')
	dst = append(dst, joinKey(group, a.Key)...)
	dst = append(dst, '=')
	v := a.Value.String()
	if needsQuoting(v) {
		return strconv.AppendQuote(dst, v)
	}
	return append(dst, v...)
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

func needsQuoting(s string) bool {
	return s == "" || strings.ContainsAny(s, " =\"\t\r\n")
}
