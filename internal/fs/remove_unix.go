//go:build unix

package fs

import (
	"os"

	"golang.org/x/sys/unix"
)

func (LocalFS) Rmdir(name string) error {
	return wrapErrno("rmdir", name, unix.Rmdir(name))
}

func (LocalFS) Unlink(name string) error {
	return wrapErrno("unlink", name, unix.Unlink(name))
}

// wrapErrno gives raw syscall errors the same *os.PathError shape as the
// os package, so errors.Is(err, os.ErrNotExist) keeps working.
func wrapErrno(op, name string, err error) error {
	if err == nil {
		return nil
	}
	return &os.PathError{Op: op, Path: name, Err: err}
}
