package check

import "go.uber.org/zap"

// ZapHandler reports failures as fatal entries on l. zap syncs the core
// and terminates the process after writing; a logger built with
// zap.WithFatalHook decides otherwise.
func ZapHandler(l *zap.Logger) Handler {
	return func(msg string) {
		l.Fatal(msg)
	}
}
