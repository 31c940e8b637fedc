package check

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/philipp01105/toolbox/core"
)

// EQ checks x == y.
func EQ[T comparable](c *Checker, x, y T) { eq(c, 1, "EQ", x, y) }

// NE checks x != y.
func NE[T comparable](c *Checker, x, y T) { ne(c, 1, "NE", x, y) }

// LT checks x < y.
func LT[T cmp.Ordered](c *Checker, x, y T) { lt(c, 1, "LT", x, y) }

// LE checks x <= y.
func LE[T cmp.Ordered](c *Checker, x, y T) { le(c, 1, "LE", x, y) }

// GT checks x > y.
func GT[T cmp.Ordered](c *Checker, x, y T) { gt(c, 1, "GT", x, y) }

// GE checks x >= y.
func GE[T cmp.Ordered](c *Checker, x, y T) { ge(c, 1, "GE", x, y) }

// True checks that cond holds.
func True(c *Checker, cond bool) { isTrue(c, 1, "True", cond) }

// False checks that cond does not hold.
func False(c *Checker, cond bool) { isFalse(c, 1, "False", cond) }

// The lower-case variants take the number of frames between their caller
// and user code, and the exported name the user wrote, so that the
// diagnostic points at the call site.

func eq[T comparable](c *Checker, skip int, name string, x, y T) {
	if !(x == y) {
		failOp(c, skip+1, name, "==", x, y)
	}
}

func ne[T comparable](c *Checker, skip int, name string, x, y T) {
	if !(x != y) {
		failOp(c, skip+1, name, "!=", x, y)
	}
}

func lt[T cmp.Ordered](c *Checker, skip int, name string, x, y T) {
	if !(x < y) {
		failOp(c, skip+1, name, "<", x, y)
	}
}

func le[T cmp.Ordered](c *Checker, skip int, name string, x, y T) {
	if !(x <= y) {
		failOp(c, skip+1, name, "<=", x, y)
	}
}

func gt[T cmp.Ordered](c *Checker, skip int, name string, x, y T) {
	if !(x > y) {
		failOp(c, skip+1, name, ">", x, y)
	}
}

func ge[T cmp.Ordered](c *Checker, skip int, name string, x, y T) {
	if !(x >= y) {
		failOp(c, skip+1, name, ">=", x, y)
	}
}

func isTrue(c *Checker, skip int, name string, cond bool) {
	if !cond {
		failBool(c, skip+1, name, "CHECK_TRUE")
	}
}

func isFalse(c *Checker, skip int, name string, cond bool) {
	if cond {
		failBool(c, skip+1, name, "CHECK_FALSE")
	}
}

// failOp reports a failed comparison as
//
//	file.go:12 a == b
//	a = 2, b = 3
func failOp(c *Checker, skip int, name, op string, x, y any) {
	caller := core.GetCaller(skip + 1)
	e := exprs(caller, name, "x", "y")
	resolve(c).Fatal(fmt.Sprintf("%s %s %s %s\n%s = %v, %s = %v",
		caller, e[0], op, e[1], e[0], x, e[1], y))
}

func failBool(c *Checker, skip int, name, label string) {
	caller := core.GetCaller(skip + 1)
	e := exprs(caller, name, "cond")
	resolve(c).Fatal(fmt.Sprintf("%s %s(%s)", caller, label, e[0]))
}

// failCall reports a failed predicate as
//
//	file.go:12 fn(a, b)
//	a = 1, b = 2
//
// When fn is empty the predicate is the first recovered expression.
func failCall(c *Checker, skip int, name, fn string, vals []any, fallback ...string) {
	caller := core.GetCaller(skip + 1)
	e := exprs(caller, name, fallback...)
	args := e
	if fn == "" {
		fn, args = e[0], e[1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s(%s)\n", caller, fn, strings.Join(args, ", "))
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s = %v", args[i], v)
	}
	resolve(c).Fatal(b.String())
}
