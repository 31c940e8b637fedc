// Package fs provides the filesystem seam used by the file package.
//
//   - [File]: an open file with read/write/seek/sync capabilities
//   - [FileSystem]: open, stat, mkdir and remove
//
// [LocalFS] is the production implementation on top of package os and is
// exposed as [Default]. [FaultyFS] wraps another FileSystem and injects
// errors on writes, syncs, closes, opens or mkdirs of files whose name
// contains a configured pattern:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("log-", fs.Fault{FailWrites: true})
//
// Filesystem calls here take no context.Context; local file operations
// are not interruptible at the syscall level.
package fs
