package partial

// Bind1 fixes the first argument of a two-argument function.
func Bind1[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// Bind2 fixes the first two arguments of a three-argument function.
func Bind2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R { return f(a, b, c) }
}

// Bind3 fixes the first three arguments of a four-argument function.
func Bind3[A, B, C, D, R any](f func(A, B, C, D) R, a A, b B, c C) func(D) R {
	return func(d D) R { return f(a, b, c, d) }
}
