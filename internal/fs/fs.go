package fs

import (
	"io"
	"os"
)

// File represents an open file.
type File interface {
	io.ReadWriteCloser
	io.Seeker
	Sync() error
	Stat() (os.FileInfo, error)
	Name() string
}

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Stat(name string) (os.FileInfo, error)
	Mkdir(name string, perm os.FileMode) error
	// Rmdir removes an empty directory.
	Rmdir(name string) error
	// Unlink removes anything that is not a directory.
	Unlink(name string) error
}

// LocalFS implements FileSystem using the local os package.
type LocalFS struct{}

func (LocalFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm)
}

func (LocalFS) Stat(name string) (os.FileInfo, error)     { return os.Stat(name) }
func (LocalFS) Mkdir(name string, perm os.FileMode) error { return os.Mkdir(name, perm) }

// Default is the default local file system.
var Default FileSystem = LocalFS{}
