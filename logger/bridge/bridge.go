package bridge

import (
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/philipp01105/toolbox/formatter"
	"github.com/philipp01105/toolbox/logger"
)

var (
	_ logger.Logger = (*ZapLogger)(nil)
	_ logger.Logger = ZerologLogger{}
	_ logger.Logger = LogrusLogger{}
)

// ZapLogger prints through a *zap.Logger at info level.
type ZapLogger struct {
	l *zap.Logger
}

// Zap wraps l. A nil l logs nothing.
func Zap(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{l: l}
}

// Print logs msg at info level.
func (z *ZapLogger) Print(msg string) {
	z.l.Info(msg)
}

// Printf formats with {} placeholders and prints the result.
func (z *ZapLogger) Printf(format string, args ...any) {
	if ce := z.l.Check(zap.InfoLevel, ""); ce != nil {
		ce.Message = formatter.Format(format, args...)
		ce.Write()
	}
}

// Close flushes buffered zap output.
func (z *ZapLogger) Close() error {
	return z.l.Sync()
}

// ZerologLogger prints through a zerolog.Logger at info level.
type ZerologLogger struct {
	l zerolog.Logger
}

// Zerolog wraps l.
func Zerolog(l zerolog.Logger) ZerologLogger {
	return ZerologLogger{l: l}
}

// Print logs msg at info level.
func (z ZerologLogger) Print(msg string) {
	z.l.Info().Msg(msg)
}

// Printf formats with {} placeholders and prints the result. Nothing is
// formatted when info is disabled.
func (z ZerologLogger) Printf(format string, args ...any) {
	if e := z.l.Info(); e.Enabled() {
		e.Msg(formatter.Format(format, args...))
	}
}

// LogrusLogger prints through a logrus.FieldLogger at info level.
type LogrusLogger struct {
	l logrus.FieldLogger
}

// Logrus wraps l, which may be a *logrus.Logger or a *logrus.Entry
// carrying fields.
func Logrus(l logrus.FieldLogger) LogrusLogger {
	return LogrusLogger{l: l}
}

// Print logs msg at info level.
func (r LogrusLogger) Print(msg string) {
	r.l.Info(msg)
}

// Printf formats with {} placeholders and prints the result.
func (r LogrusLogger) Printf(format string, args ...any) {
	r.l.Info(formatter.Format(format, args...))
}
