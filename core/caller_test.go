package core

import (
	"strings"
	"testing"
)

func TestGetCaller(t *testing.T) {
	caller := GetCaller(0)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}

	if caller.ShortFile != "caller_test.go" {
		t.Errorf("Expected short file caller_test.go, got %q", caller.ShortFile)
	}
	if !strings.HasSuffix(caller.File, "caller_test.go") {
		t.Errorf("Expected file ending in caller_test.go, got %q", caller.File)
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if !strings.HasSuffix(caller.Function, "TestGetCaller") {
		t.Errorf("Expected function TestGetCaller, got %q", caller.Function)
	}
}

func helperCaller() CallerInfo {
	return GetCaller(1)
}

func TestGetCaller_Skip(t *testing.T) {
	caller := helperCaller()
	if !strings.HasSuffix(caller.Function, "TestGetCaller_Skip") {
		t.Errorf("Expected skip=1 to report the helper's caller, got %q", caller.Function)
	}
}

func TestGetCaller_TooDeep(t *testing.T) {
	caller := GetCaller(1 << 20)
	if caller.Defined {
		t.Error("Expected undefined CallerInfo for an out-of-range skip")
	}
	if caller.String() != "???" {
		t.Errorf("Expected ??? for undefined caller, got %q", caller.String())
	}
}

func TestCallerInfo_String(t *testing.T) {
	c := CallerInfo{File: "/a/b/c.go", ShortFile: "c.go", Line: 42, Defined: true}
	if got := c.String(); got != "c.go:42" {
		t.Errorf("String() = %q, want %q", got, "c.go:42")
	}
}
