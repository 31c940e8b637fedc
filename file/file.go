package file

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/toolbox/check"
	"github.com/philipp01105/toolbox/internal/fs"
)

// File is an owning handle to one open file.
//
// A File is used through a pointer and must not be copied. Move hands the
// descriptor to a new *File; the source is left vacated and any further
// use of it is reported through the handle's Checker. Close flushes and
// closes the file and is safe to call more than once.
//
// File performs no locking and no buffering of its own: every Write goes
// straight to the operating system.
type File struct {
	fd       fs.File
	name     string
	mode     string
	writable bool
	checker  *check.Checker
}

// Open opens path with an fopen-style mode ("r", "w", "a", "r+", "w+",
// "a+"). Failing to open is fatal: the error is reported through the
// configured Checker, whose handler terminates the process by default.
func Open(path, mode string, opts ...Option) *File {
	o := applyOptions(opts)
	f, err := open(path, mode, o)
	if err != nil {
		o.checker.Fatal(err.Error())
		return nil
	}
	return f
}

// OpenFile is like Open but returns an *OpenError instead of reporting it.
func OpenFile(path, mode string, opts ...Option) (*File, error) {
	return open(path, mode, applyOptions(opts))
}

func open(path, mode string, o options) (*File, error) {
	flag, writable, err := parseMode(mode)
	if err != nil {
		return nil, &OpenError{Path: path, Mode: mode, Err: err}
	}
	fd, err := o.fs.OpenFile(path, flag, o.perm)
	if err != nil {
		return nil, &OpenError{Path: path, Mode: mode, Err: errors.WithStack(err)}
	}
	return &File{
		fd:       fd,
		name:     path,
		mode:     mode,
		writable: writable,
		checker:  o.checker,
	}, nil
}

// handle returns the open descriptor, reporting use of a closed or moved
// File as fatal.
func (f *File) handle() fs.File {
	if f.fd == nil {
		f.checker.Fatal(fmt.Sprintf("file: use of closed or moved handle %q", f.name))
	}
	return f.fd
}

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.name }

// Mode returns the mode string the file was opened with.
func (f *File) Mode() string { return f.mode }

// IsOpen reports whether f still owns a descriptor.
func (f *File) IsOpen() bool { return f.fd != nil }

// Flush commits written data to stable storage. Read-only files have
// nothing to commit and always succeed.
func (f *File) Flush() bool {
	fd := f.handle()
	if !f.writable {
		return true
	}
	return fd.Sync() == nil
}

// Tell returns the current offset, or -1 on failure.
func (f *File) Tell() int64 {
	off, err := f.handle().Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return off
}

// Seek moves to offset bytes from the start of the file.
func (f *File) Seek(offset int64) bool {
	_, err := f.handle().Seek(offset, io.SeekStart)
	return err == nil
}

// Read reads up to count bytes. The result is shorter than count when the
// end of the file is reached first.
func (f *File) Read(count int64) []byte {
	fd := f.handle()
	if count <= 0 {
		return []byte{}
	}
	buf := make([]byte, count)
	n, _ := io.ReadFull(fd, buf)
	return buf[:n]
}

// ReadContents rewinds and reads the whole file.
func (f *File) ReadContents() []byte {
	f.Seek(0)
	return f.Read(f.Length())
}

// Write writes p and reports whether every byte was accepted.
func (f *File) Write(p []byte) bool {
	n, err := f.handle().Write(p)
	return err == nil && n == len(p)
}

// WriteString is Write for a string.
func (f *File) WriteString(s string) bool {
	return f.Write([]byte(s))
}

// Length returns the size of the file by seeking to the end and back. The
// current offset is preserved. The result is -1 if seeking fails.
func (f *File) Length() int64 {
	fd := f.handle()
	cur, err := fd.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	end, err := fd.Seek(0, io.SeekEnd)
	if err != nil {
		return -1
	}
	if _, err := fd.Seek(cur, io.SeekStart); err != nil {
		return -1
	}
	return end
}

// Move transfers ownership of the descriptor to a new File and vacates f.
func (f *File) Move() *File {
	moved := &File{
		fd:       f.handle(),
		name:     f.name,
		mode:     f.mode,
		writable: f.writable,
		checker:  f.checker,
	}
	f.fd = nil
	return moved
}

// Close flushes and closes the file. Closing a closed or moved File is a
// no-op.
func (f *File) Close() error {
	if f.fd == nil {
		return nil
	}
	fd := f.fd
	f.fd = nil

	var err error
	if f.writable {
		err = fd.Sync()
	}
	return multierr.Append(err, fd.Close())
}
