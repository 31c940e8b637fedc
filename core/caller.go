package core

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information. skip is the number of stack
// frames to ascend, with 0 identifying the caller of GetCaller.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// String returns the short "file:line" form, or "???" when undefined.
func (c CallerInfo) String() string {
	if !c.Defined {
		return "???"
	}
	return c.ShortFile + ":" + strconv.Itoa(c.Line)
}
