package partial_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/on-the-ground/closure_ive_go/partial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func concat4(x1, x2, x3, x4 string) string {
	return x1 + x2 + x3 + x4
}

func TestApply_AnySplitPoint(t *testing.T) {
	assert.Equal(t, "abcd", partial.Apply(concat4)("a", "b", "c", "d"))
	assert.Equal(t, "abcd", partial.Apply(concat4, "a")("b", "c", "d"))
	assert.Equal(t, "abcd", partial.Apply(concat4, "a", "b")("c", "d"))
	assert.Equal(t, "abcd", partial.Apply(concat4, "a", "b", "c")("d"))
	assert.Equal(t, "abcd", partial.Apply(concat4, "a", "b", "c", "d")())
}

func TestApply_BoundArgsAreReusable(t *testing.T) {
	greet := partial.Apply(fmt.Sprintf, "%s, %s!")
	assert.Equal(t, "Hello, world!", greet("Hello", "world"))
	assert.Equal(t, "Bye, moon!", greet("Bye", "moon"))
}

func TestApply_Variadic(t *testing.T) {
	sum := func(base int, rest ...int) int {
		for _, r := range rest {
			base += r
		}
		return base
	}
	assert.Equal(t, 10, partial.Apply(sum, 1, 2)(3, 4))
	assert.Equal(t, 1, partial.Apply(sum, 1)())
}

func TestApply_Results(t *testing.T) {
	called := false
	assert.Nil(t, partial.Apply(func(string) { called = true }, "x")())
	assert.True(t, called)

	res := partial.Apply(strconv.Atoi)("42")
	assert.Equal(t, []any{42, nil}, res)
}

func TestApply_NilArgument(t *testing.T) {
	isNil := func(err error) bool { return err == nil }
	assert.Equal(t, true, partial.Apply(isNil)(nil))
}

func TestApply_MalformedCallsPanic(t *testing.T) {
	var applyErr *partial.ApplyError

	for name, call := range map[string]func(){
		"not a function": func() { partial.Apply(42) },
		"too many":       func() { partial.Apply(concat4, "a", "b")("c", "d", "e") },
		"too few":        func() { partial.Apply(concat4, "a")("b") },
		"wrong type":     func() { partial.Apply(concat4, "a", 2)("c", "d") },
		"nil for string": func() { partial.Apply(concat4, nil)("b", "c", "d") },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic")
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.As(err, &applyErr))
			}()
			call()
		})
	}
}

func TestApplyAs(t *testing.T) {
	s, err := partial.ApplyAs[string](concat4, "a", "b")("c", "d")
	require.NoError(t, err)
	assert.Equal(t, "abcd", s)

	_, err = partial.ApplyAs[int](concat4, "a", "b")("c", "d")
	assert.Error(t, err)
}

func TestBind(t *testing.T) {
	assert.Equal(t, "ab", partial.Bind1(func(a, b string) string { return a + b }, "a")("b"))
	assert.Equal(t, "abc", partial.Bind2(func(a, b, c string) string { return a + b + c }, "a", "b")("c"))
	assert.Equal(t, "abcd", partial.Bind3(concat4, "a", "b", "c")("d"))
}
