package introspect_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/closure_ive_go/introspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hiHello() string {
	return "hello world"
}

func nullArgs() string {
	return "hello world"
}

func myFunc(x int) int {
	return x
}

type greeter struct{}

func (greeter) Greet(name string) string { return "hi " + name }

func whoAmI() string {
	return introspect.CallerName(0)
}

func whoCalledMe() string {
	return introspect.CallerName(1)
}

func TestCurrentFunctionName(t *testing.T) {
	assert.Equal(t, "CurrentFunctionName", introspect.CurrentFunctionName())
}

func TestCallerName(t *testing.T) {
	assert.Equal(t, "whoAmI", whoAmI())
	assert.Equal(t, "TestCallerName", whoCalledMe())
}

func TestFunctionName(t *testing.T) {
	assert.Equal(t, "Cos", introspect.FunctionName(math.Cos))
	assert.Equal(t, "hiHello", introspect.FunctionName(hiHello))
	assert.Equal(t, "Greet", introspect.FunctionName(greeter{}.Greet))
	assert.Equal(t, "func1", introspect.FunctionName(func() {}))
	assert.Equal(t, "", introspect.FunctionName(nil))
	assert.Equal(t, "", introspect.FunctionName("hiHello"))

	var nilFn func()
	assert.Equal(t, "", introspect.FunctionName(nilFn))
}

func TestFunctionBody(t *testing.T) {
	body, err := introspect.FunctionBody(hiHello)
	require.NoError(t, err)
	assert.Equal(t, "func hiHello() string {\n\treturn \"hello world\"\n}", body)

	body, err = introspect.FunctionBody(nil)
	require.NoError(t, err)
	assert.Equal(t, "", body)
}

func TestFunctionBody_Closure(t *testing.T) {
	double := func(x int) int {
		return x * 2
	}
	body, err := introspect.FunctionBody(double)
	require.NoError(t, err)
	assert.Equal(t, "func(x int) int {\n\t\treturn x * 2\n\t}", body)
}

func TestFunctionBody_NotFunc(t *testing.T) {
	_, err := introspect.FunctionBody(42)
	assert.ErrorIs(t, err, introspect.ErrNotFunc)
}

func TestArgumentsCount(t *testing.T) {
	for _, tc := range []struct {
		name     string
		funcs    []any
		expected []int
	}{
		{name: "empty", funcs: []any{}, expected: []int{}},
		{
			name: "mixed",
			funcs: []any{
				nullArgs,
				myFunc,
				func(a, b int) int { return a * b },
			},
			expected: []int{0, 1, 2},
		},
		{
			name:     "variadic counts once",
			funcs:    []any{func(format string, args ...any) {}},
			expected: []int{2},
		},
		{
			name:     "non function",
			funcs:    []any{"nope", nil},
			expected: []int{-1, -1},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, introspect.ArgumentsCount(tc.funcs...))
		})
	}
}

func TestArity(t *testing.T) {
	n, err := introspect.Arity(greeter{}.Greet)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = introspect.Arity(3)
	assert.ErrorIs(t, err, introspect.ErrNotFunc)
}
