package file

import (
	"os"

	"github.com/google/renameio/v2/maybe"
	"github.com/pkg/errors"
)

// ReadContentsFromFile opens path with mode, reads it whole and closes it.
// Failing to open is fatal, as with Open.
func ReadContentsFromFile(path, mode string, opts ...Option) []byte {
	f := Open(path, mode, opts...)
	defer f.Close()
	return f.ReadContents()
}

// WriteContentsToFile opens path with mode, writes contents and closes it.
// Failing to open is fatal, as with Open. The result reports whether the
// write and the final flush and close succeeded.
func WriteContentsToFile(path, mode string, contents []byte, opts ...Option) bool {
	f := Open(path, mode, opts...)
	ok := f.Write(contents)
	return f.Close() == nil && ok
}

// WriteContentsAtomic replaces path with contents so that readers see
// either the old or the new file, never a partial one. On platforms
// without atomic rename it falls back to a plain write.
func WriteContentsAtomic(path string, contents []byte, perm os.FileMode) error {
	return errors.Wrapf(maybe.WriteFile(path, contents, perm), "file: atomic write %s", path)
}
