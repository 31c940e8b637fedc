package logger

import (
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/toolbox/check"
	"github.com/philipp01105/toolbox/core"
	"github.com/philipp01105/toolbox/file"
	"github.com/philipp01105/toolbox/formatter"
	"github.com/philipp01105/toolbox/internal/fs"
)

// FileLogger writes timestamped lines to <Dir>/log-<Name>.txt. Each line
// is handed to the operating system by a single write, so nothing is held
// back in process memory.
type FileLogger struct {
	mu     sync.Mutex
	f      *file.File
	path   string
	clock  core.Clock
	sync   bool
	buf    []byte
	failed atomic.Uint64
}

// FileConfig holds configuration for a FileLogger
type FileConfig struct {
	// Dir is the directory of the log file (default: current directory)
	Dir string
	// Name identifies the log in the file name and the start line
	Name string
	// Mode is the fopen-style open mode (default: "w")
	Mode string
	// Clock stamps each line (default: core.SystemClock). core.CoarseClock()
	// avoids a wall-clock read per line for busy logs.
	Clock core.Clock
	// Checker reports open failures in NewFileLogger (default: check.Default())
	Checker *check.Checker
	// FileSystem opens the log file (default: the local filesystem)
	FileSystem fs.FileSystem
	// Sync commits every line to stable storage with fsync (default: false).
	// Lines survive a process crash either way; Sync also covers power loss
	// at the cost of one fsync per line.
	Sync bool
}

func applyDefaults(cfg FileConfig) FileConfig {
	if cfg.Mode == "" {
		cfg.Mode = "w"
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock
	}
	return cfg
}

func (cfg FileConfig) fileOptions() []file.Option {
	opts := []file.Option{file.WithChecker(cfg.Checker)}
	if cfg.FileSystem != nil {
		opts = append(opts, file.WithFileSystem(cfg.FileSystem))
	}
	return opts
}

// LogFilePath returns the path of the log file for name in dir.
func LogFilePath(dir, name string) string {
	return filepath.Join(dir, "log-"+name+".txt")
}

// NewFileLogger opens the log file and writes "<Name> started". Failing to
// open the file is fatal and reported through cfg.Checker.
func NewFileLogger(cfg FileConfig) *FileLogger {
	cfg = applyDefaults(cfg)
	f := file.Open(LogFilePath(cfg.Dir, cfg.Name), cfg.Mode, cfg.fileOptions()...)
	if f == nil {
		return nil
	}
	return newFileLogger(f, cfg)
}

// OpenFileLogger is like NewFileLogger but returns the open error.
func OpenFileLogger(cfg FileConfig) (*FileLogger, error) {
	cfg = applyDefaults(cfg)
	f, err := file.OpenFile(LogFilePath(cfg.Dir, cfg.Name), cfg.Mode, cfg.fileOptions()...)
	if err != nil {
		return nil, err
	}
	return newFileLogger(f, cfg), nil
}

func newFileLogger(f *file.File, cfg FileConfig) *FileLogger {
	l := &FileLogger{
		f:     f,
		path:  f.Name(),
		clock: cfg.Clock,
		sync:  cfg.Sync,
	}
	l.Print(cfg.Name + " started")
	return l
}

// Path returns the path of the log file.
func (l *FileLogger) Path() string { return l.path }

// Print writes msg as one line. After Close it does nothing.
func (l *FileLogger) Print(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return
	}
	l.writeLocked(msg)
}

// Printf formats with {} placeholders and prints the result.
func (l *FileLogger) Printf(format string, args ...any) {
	l.Print(formatter.Format(format, args...))
}

func (l *FileLogger) writeLocked(msg string) {
	l.buf = formatter.AppendLine(l.buf[:0], l.clock(), msg)
	ok := l.f.Write(l.buf)
	if ok && l.sync {
		ok = l.f.Flush()
	}
	if !ok {
		l.failed.Add(1)
	}
}

// Failed returns the number of lines that could not be written, or synced
// when Sync is set.
func (l *FileLogger) Failed() uint64 {
	return l.failed.Load()
}

// Close writes "Closing the log." and closes the file. It is safe to call
// more than once.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	l.writeLocked("Closing the log.")
	err := l.f.Close()
	l.f = nil
	return err
}
