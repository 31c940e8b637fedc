//go:build release

package check

// Debug reports whether the D-prefixed checks are compiled in. Build with
// -tags release to turn them off.
const Debug = false
