package file

import (
	"os"

	"github.com/pkg/errors"
)

// parseMode maps an fopen-style mode string to os.OpenFile flags.
//
//	r   read                     r+  read/write
//	w   write, create, truncate  w+  read/write, create, truncate
//	a   append, create           a+  read/append, create
//
// A trailing 'b' or 't' is accepted and ignored, 'x' (with w) adds
// O_EXCL, and 'e' is accepted since Go always opens with close-on-exec.
func parseMode(mode string) (flag int, writable bool, err error) {
	if mode == "" {
		return 0, false, errors.Wrap(ErrInvalidMode, "empty mode")
	}

	var plus, excl bool
	for _, r := range mode[1:] {
		switch r {
		case '+':
			plus = true
		case 'x':
			excl = true
		case 'b', 't', 'e':
		default:
			return 0, false, errors.Wrapf(ErrInvalidMode, "%q", mode)
		}
	}

	switch mode[0] {
	case 'r':
		flag = os.O_RDONLY
		if plus {
			flag = os.O_RDWR
		}
	case 'w':
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if plus {
			flag = os.O_RDWR | os.O_CREATE | os.O_TRUNC
		}
	case 'a':
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		if plus {
			flag = os.O_RDWR | os.O_CREATE | os.O_APPEND
		}
	default:
		return 0, false, errors.Wrapf(ErrInvalidMode, "%q", mode)
	}

	if excl {
		if mode[0] != 'w' {
			return 0, false, errors.Wrapf(ErrInvalidMode, "%q: x requires w", mode)
		}
		flag |= os.O_EXCL
	}

	return flag, mode[0] != 'r' || plus, nil
}
