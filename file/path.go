package file

import (
	"os"
	"path/filepath"

	"github.com/philipp01105/toolbox/internal/fs"
)

// DefaultDirPerm is the permission of directories created by
// CreateDirectory and CreateDirectories.
const DefaultDirPerm os.FileMode = 0755

// osfs backs the path utilities and is the default for Open.
var osfs fs.FileSystem = fs.Default

// Exists reports whether path can be stat'ed.
func Exists(path string) bool {
	_, err := osfs.Stat(path)
	return err == nil
}

// IsDirectory reports whether path exists and is a directory.
func IsDirectory(path string) bool {
	info, err := osfs.Stat(path)
	return err == nil && info.IsDir()
}

// CreateDirectory creates a single directory with DefaultDirPerm.
func CreateDirectory(path string) bool {
	return CreateDirectoryPerm(path, DefaultDirPerm)
}

// CreateDirectoryPerm creates a single directory with perm.
func CreateDirectoryPerm(path string, perm os.FileMode) bool {
	return osfs.Mkdir(path, perm) == nil
}

// CreateDirectories creates path and any missing parents with
// DefaultDirPerm.
func CreateDirectories(path string) bool {
	return CreateDirectoriesPerm(path, DefaultDirPerm)
}

// CreateDirectoriesPerm walks path from its root one separator at a time.
// Prefixes that already exist as directories are skipped; a prefix that
// exists as anything else fails the call, as does the first directory
// that cannot be created. Directories created before a failure are left
// in place.
func CreateDirectoriesPerm(path string, perm os.FileMode) bool {
	if path == "" {
		return false
	}
	// The first byte is never treated as a separator so that absolute
	// paths start with their first named component.
	for pos := 0; pos >= 0; {
		pos = indexSeparator(path, pos+1)
		sub := path
		if pos >= 0 {
			sub = path[:pos]
		}

		if info, err := osfs.Stat(sub); err == nil {
			if info.IsDir() {
				continue
			}
			return false
		}
		if !CreateDirectoryPerm(sub, perm) {
			return false
		}
	}
	return true
}

// Remove deletes path: rmdir for directories, which must be empty, and
// unlink for everything else.
func Remove(path string) bool {
	if IsDirectory(path) {
		return osfs.Rmdir(path) == nil
	}
	return osfs.Unlink(path) == nil
}

// indexSeparator returns the index of the first path separator in path at
// or after from, or -1.
func indexSeparator(path string, from int) int {
	for i := from; i < len(path); i++ {
		if os.IsPathSeparator(path[i]) {
			return i
		}
	}
	return -1
}

// CanonicalPath returns the absolute path of path with every symbolic
// link resolved, or "" if it cannot be resolved.
func CanonicalPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return ""
	}
	return resolved
}

// GetEnv returns the value of the environment variable key, or def if it
// is not set. A variable set to the empty string is returned as is.
func GetEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// GetTempDir returns $TMPDIR, or "/tmp" when it is unset.
//
// The same variable and default are used on every platform. On Windows
// TMPDIR is normally unset, so this returns "/tmp"; callers that need the
// platform directory should use os.TempDir.
func GetTempDir() string {
	return GetEnv("TMPDIR", "/tmp")
}
