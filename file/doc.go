// Package file provides an owning file handle and small path utilities.
//
// Open returns a *File for an fopen-style mode string. Opening is
// fail-fast: an error is reported through a check.Checker, which by
// default prints the error and exits. OpenFile returns the *OpenError
// instead, for callers that want to handle it:
//
//	f := file.Open(path, "w")
//	defer f.Close()
//	f.WriteString("hello\n")
//
// The other operations report failure with a boolean, matching the
// underlying system call, and leave escalation to the caller.
//
// The path utilities (Exists, IsDirectory, CreateDirectory,
// CreateDirectories, Remove, CanonicalPath, GetEnv, GetTempDir) are thin
// wrappers over the operating system. CreateDirectories is not
// transactional: when it fails part way, the directories it already
// created stay behind.
package file
