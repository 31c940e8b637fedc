package file

import (
	"os"

	"github.com/philipp01105/toolbox/check"
	"github.com/philipp01105/toolbox/internal/fs"
)

// DefaultPerm is the permission of files created by Open.
const DefaultPerm os.FileMode = 0644

// Option configures Open, OpenFile and the whole-file helpers.
type Option func(*options)

type options struct {
	checker *check.Checker
	fs      fs.FileSystem
	perm    os.FileMode
}

// WithChecker sets the Checker that reports open failures and misuse of a
// closed handle. The default is check.Default().
func WithChecker(c *check.Checker) Option {
	return func(o *options) {
		o.checker = c
	}
}

// WithFileSystem replaces the filesystem used to open files.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithPerm sets the permission of newly created files (default 0644).
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

func applyOptions(opts []Option) options {
	o := options{
		fs:   osfs,
		perm: DefaultPerm,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = osfs
	}
	return o
}
