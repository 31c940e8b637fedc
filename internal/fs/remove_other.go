//go:build !unix

package fs

import (
	"errors"
	"os"
)

var (
	errNotDir = errors.New("not a directory")
	errIsDir  = errors.New("is a directory")
)

// Rmdir removes name if it is a directory. os.Remove would also delete a
// file, so the kind is checked first.
func (LocalFS) Rmdir(name string) error {
	info, err := os.Lstat(name)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "rmdir", Path: name, Err: errNotDir}
	}
	return os.Remove(name)
}

// Unlink removes name if it is not a directory.
func (LocalFS) Unlink(name string) error {
	info, err := os.Lstat(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &os.PathError{Op: "unlink", Path: name, Err: errIsDir}
	}
	return os.Remove(name)
}
