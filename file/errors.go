package file

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOpen matches every *OpenError via errors.Is.
	ErrOpen = errors.New("file: open failed")
	// ErrInvalidMode is wrapped by an *OpenError whose mode string is not
	// a valid fopen-style mode.
	ErrInvalidMode = errors.New("file: invalid mode")
)

// OpenError records a failed open.
//
// The underlying cause can be accessed via errors.Unwrap, so
// errors.Is(err, os.ErrNotExist) works as expected.
type OpenError struct {
	Path string
	Mode string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("file: open %s (mode %q): %v", e.Path, e.Mode, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Is reports whether target is ErrOpen.
func (e *OpenError) Is(target error) bool { return target == ErrOpen }
