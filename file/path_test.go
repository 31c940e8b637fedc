package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/toolbox/internal/fs"
)

// useFS swaps the filesystem behind the path utilities for the duration
// of the test.
func useFS(t *testing.T, fsys fs.FileSystem) {
	t.Helper()
	old := osfs
	osfs = fsys
	t.Cleanup(func() { osfs = old })
}

func TestExistsAndIsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	assert.True(t, Exists(dir))
	assert.True(t, IsDirectory(dir))
	assert.True(t, Exists(path))
	assert.False(t, IsDirectory(path))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
	assert.False(t, IsDirectory(filepath.Join(dir, "missing")))
}

func TestCreateDirectory(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, CreateDirectory(filepath.Join(dir, "one")))
	assert.True(t, IsDirectory(filepath.Join(dir, "one")))

	// Already exists.
	assert.False(t, CreateDirectory(filepath.Join(dir, "one")))
	// Parent missing.
	assert.False(t, CreateDirectory(filepath.Join(dir, "two", "three")))
}

func TestCreateDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c")

	require.True(t, CreateDirectories(path))
	assert.True(t, IsDirectory(filepath.Join(dir, "a")))
	assert.True(t, IsDirectory(filepath.Join(dir, "a", "b")))
	assert.True(t, IsDirectory(path))

	// Idempotent.
	assert.True(t, CreateDirectories(path))
}

func TestCreateDirectories_TrailingSeparator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x", "y") + string(os.PathSeparator)

	assert.True(t, CreateDirectories(path))
	assert.True(t, IsDirectory(filepath.Join(dir, "x", "y")))
}

func TestCreateDirectories_Empty(t *testing.T) {
	assert.False(t, CreateDirectories(""))
}

func TestCreateDirectories_FileInPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	assert.False(t, CreateDirectories(filepath.Join(blocker, "child")))
	assert.False(t, Exists(filepath.Join(blocker, "child")))
}

func TestCreateDirectories_StopsAtFirstFailure(t *testing.T) {
	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule("blocked", fs.Fault{FailOnMkdir: true})
	useFS(t, ffs)

	dir := t.TempDir()
	path := filepath.Join(dir, "alpha", "blocked", "gamma")

	assert.False(t, CreateDirectories(path))
	assert.True(t, IsDirectory(filepath.Join(dir, "alpha")))
	assert.False(t, Exists(filepath.Join(dir, "alpha", "blocked")))
	assert.False(t, Exists(path))
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, Remove(path))
	assert.False(t, Exists(path))

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.Mkdir(empty, 0755))
	assert.True(t, Remove(empty))
	assert.False(t, Exists(empty))

	full := filepath.Join(dir, "full")
	require.NoError(t, os.Mkdir(full, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(full, "f"), nil, 0644))
	assert.False(t, Remove(full))
	assert.True(t, IsDirectory(full))

	assert.False(t, Remove(filepath.Join(dir, "missing")))
}

func TestRemove_Fault(t *testing.T) {
	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule("locked", fs.Fault{FailOnRemove: true})
	useFS(t, ffs)

	dir := t.TempDir()
	path := filepath.Join(dir, "locked.txt")
	sub := filepath.Join(dir, "locked-dir")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	require.NoError(t, os.Mkdir(sub, 0755))

	assert.False(t, Remove(path))
	assert.False(t, Remove(sub))
	assert.True(t, Exists(path))
	assert.True(t, IsDirectory(sub))
}

func TestCanonicalPath(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	assert.Equal(t, target, CanonicalPath(link))
	assert.Equal(t, target, CanonicalPath(filepath.Join(dir, "target", "..", "link")))
	assert.Equal(t, "", CanonicalPath(filepath.Join(dir, "missing")))
	assert.Equal(t, "", CanonicalPath(""))
}

func TestCanonicalPath_Relative(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.Equal(t, dir, CanonicalPath("."))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TOOLBOX_TEST_SET", "value")
	t.Setenv("TOOLBOX_TEST_EMPTY", "")

	assert.Equal(t, "value", GetEnv("TOOLBOX_TEST_SET", "fallback"))
	assert.Equal(t, "", GetEnv("TOOLBOX_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("DOES_NOT_EXIST_XYZ", "fallback"))
}

func TestGetTempDir(t *testing.T) {
	t.Setenv("TMPDIR", "/custom/tmp")
	assert.Equal(t, "/custom/tmp", GetTempDir())

	require.NoError(t, os.Unsetenv("TMPDIR"))
	assert.Equal(t, "/tmp", GetTempDir())
}
