package logger

import (
	"io"
	"testing"

	"github.com/philipp01105/toolbox/core"
)

func BenchmarkFileLogger_Print(b *testing.B) {
	l := NewFileLogger(FileConfig{Dir: b.TempDir(), Name: "bench"})
	defer l.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Print("benchmark message")
	}
}

func BenchmarkFileLogger_PrintSync(b *testing.B) {
	l := NewFileLogger(FileConfig{Dir: b.TempDir(), Name: "bench", Sync: true})
	defer l.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Print("benchmark message")
	}
}

func BenchmarkWriterLogger_Print(b *testing.B) {
	l := NewWriterLogger(io.Discard, core.SystemClock)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Print("benchmark message")
	}
}

func BenchmarkWriterLogger_PrintCoarseClock(b *testing.B) {
	l := NewWriterLogger(io.Discard, core.CoarseClock())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Print("benchmark message")
	}
}

func BenchmarkWriterLogger_Printf(b *testing.B) {
	l := NewWriterLogger(io.Discard, core.SystemClock)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Printf("user {} logged in from {}", 42, "10.0.0.1")
	}
}

func BenchmarkNoopLogger_Printf(b *testing.B) {
	var l NoopLogger

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Printf("user {} logged in from {}", 42, "10.0.0.1")
	}
}
