package check

import "cmp"

// The D-prefixed checks behave like their counterparts unless the
// package is built with the release tag, in which case their bodies are
// compiled away. Go still evaluates the arguments at the call site; to
// skip an expensive operand in release builds guard the call instead:
//
//	if check.Debug {
//		check.EQ(c, tree.Height(), want)
//	}

// DEQ is EQ in debug builds and a no-op in release builds.
func DEQ[T comparable](c *Checker, x, y T) {
	if Debug {
		eq(c, 1, "DEQ", x, y)
	}
}

// DNE is NE in debug builds and a no-op in release builds.
func DNE[T comparable](c *Checker, x, y T) {
	if Debug {
		ne(c, 1, "DNE", x, y)
	}
}

// DLT is LT in debug builds and a no-op in release builds.
func DLT[T cmp.Ordered](c *Checker, x, y T) {
	if Debug {
		lt(c, 1, "DLT", x, y)
	}
}

// DLE is LE in debug builds and a no-op in release builds.
func DLE[T cmp.Ordered](c *Checker, x, y T) {
	if Debug {
		le(c, 1, "DLE", x, y)
	}
}

// DGT is GT in debug builds and a no-op in release builds.
func DGT[T cmp.Ordered](c *Checker, x, y T) {
	if Debug {
		gt(c, 1, "DGT", x, y)
	}
}

// DGE is GE in debug builds and a no-op in release builds.
func DGE[T cmp.Ordered](c *Checker, x, y T) {
	if Debug {
		ge(c, 1, "DGE", x, y)
	}
}

// DTrue is True in debug builds and a no-op in release builds.
func DTrue(c *Checker, cond bool) {
	if Debug {
		isTrue(c, 1, "DTrue", cond)
	}
}

// DFalse is False in debug builds and a no-op in release builds.
func DFalse(c *Checker, cond bool) {
	if Debug {
		isFalse(c, 1, "DFalse", cond)
	}
}

// DProb is Prob in debug builds and a no-op in release builds.
func DProb[F Float](c *Checker, x F) {
	if Debug {
		prob(c, 1, "DProb", float64(x), 0, false)
	}
}

// DProbTolerance is ProbTolerance in debug builds and a no-op in release builds.
func DProbTolerance[F Float](c *Checker, x, tol F) {
	if Debug {
		prob(c, 1, "DProbTolerance", float64(x), float64(tol), true)
	}
}

// DFloatEQ is FloatEQ in debug builds and a no-op in release builds.
func DFloatEQ[F Float](c *Checker, x, y F) {
	if Debug {
		floatEQ(c, 1, "DFloatEQ", x, y)
	}
}

// DFloatNear is FloatNear in debug builds and a no-op in release builds.
func DFloatNear[F Float](c *Checker, x, y, eps F) {
	if Debug {
		floatNear(c, 1, "DFloatNear", x, y, eps)
	}
}

// DFunc2 is Func2 in debug builds and a no-op in release builds.
func DFunc2[T, U any](c *Checker, fn func(T, U) bool, x T, y U) {
	if Debug {
		func2(c, 1, "DFunc2", fn, x, y)
	}
}

// DFunc3 is Func3 in debug builds and a no-op in release builds.
func DFunc3[T, U, V any](c *Checker, fn func(T, U, V) bool, x T, y U, z V) {
	if Debug {
		func3(c, 1, "DFunc3", fn, x, y, z)
	}
}
