package check

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/philipp01105/toolbox/core"
)

// Float is the constraint satisfied by the floating-point checks.
type Float interface {
	~float32 | ~float64
}

// Prob checks that x is a probability: finite and within [0, 1].
func Prob[F Float](c *Checker, x F) { prob(c, 1, "Prob", float64(x), 0, false) }

// ProbTolerance checks that x is finite and within [-tol, 1+tol].
func ProbTolerance[F Float](c *Checker, x, tol F) {
	prob(c, 1, "ProbTolerance", float64(x), float64(tol), true)
}

// FloatEQ checks that x and y are equal up to the relative machine
// epsilon of F.
func FloatEQ[F Float](c *Checker, x, y F) { floatEQ(c, 1, "FloatEQ", x, y) }

// FloatNear checks |x - y| <= eps.
func FloatNear[F Float](c *Checker, x, y, eps F) { floatNear(c, 1, "FloatNear", x, y, eps) }

// Func2 checks fn(x, y).
func Func2[T, U any](c *Checker, fn func(T, U) bool, x T, y U) {
	func2(c, 1, "Func2", fn, x, y)
}

// Func3 checks fn(x, y, z).
func Func3[T, U, V any](c *Checker, fn func(T, U, V) bool, x T, y U, z V) {
	func3(c, 1, "Func3", fn, x, y, z)
}

// Near reports whether |x - y| <= eps.
func Near[F Float](x, y, eps F) bool {
	return math.Abs(float64(x)-float64(y)) <= float64(eps)
}

// AlmostEqual reports whether x and y differ by at most the machine
// epsilon of F relative to the larger magnitude.
func AlmostEqual[F Float](x, y F) bool {
	if x == y {
		return true
	}
	a, b := float64(x), float64(y)
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= epsilon[F]()*math.Max(math.Abs(a), math.Abs(b))
}

func epsilon[F Float]() float64 {
	var z F
	if unsafe.Sizeof(z) == 4 {
		return 0x1p-23
	}
	return 0x1p-52
}

func prob(c *Checker, skip int, name string, x, tol float64, hasTol bool) {
	lo, hi := 0-tol, 1+tol
	var cond string
	switch {
	case !(x >= lo):
		cond = ">= " + strconv.FormatFloat(lo, 'g', -1, 64)
	case !(x <= hi):
		cond = "<= " + strconv.FormatFloat(hi, 'g', -1, 64)
	case math.IsNaN(x) || math.IsInf(x, 0):
		cond = "is finite"
	default:
		return
	}

	caller := core.GetCaller(skip + 1)
	fallback := []string{"x"}
	if hasTol {
		fallback = append(fallback, "tol")
	}
	e := exprs(caller, name, fallback...)
	resolve(c).Fatal(fmt.Sprintf("%s %s(%s): %s %s\n%s = %v",
		caller, name, strings.Join(e, ", "), e[0], cond, e[0], x))
}

func floatEQ[F Float](c *Checker, skip int, name string, x, y F) {
	if !AlmostEqual(x, y) {
		failCall(c, skip+1, name, "FloatEQ", []any{x, y}, "x", "y")
	}
}

func floatNear[F Float](c *Checker, skip int, name string, x, y, eps F) {
	if !Near(x, y, eps) {
		failCall(c, skip+1, name, "FloatNear", []any{x, y, eps}, "x", "y", "eps")
	}
}

func func2[T, U any](c *Checker, skip int, name string, fn func(T, U) bool, x T, y U) {
	if !fn(x, y) {
		failCall(c, skip+1, name, "", []any{x, y}, "fn", "x", "y")
	}
}

func func3[T, U, V any](c *Checker, skip int, name string, fn func(T, U, V) bool, x T, y U, z V) {
	if !fn(x, y, z) {
		failCall(c, skip+1, name, "", []any{x, y, z}, "fn", "x", "y", "z")
	}
}
