package introspect

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrNotFunc = errors.New("not a function")

// Arity returns the number of parameters fn declares.
// A variadic parameter counts once.
func Arity(fn any) (int, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return 0, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}
	return t.NumIn(), nil
}

// ArgumentsCount maps each function to its arity, keeping the order.
// Entries that are not functions are reported as -1.
func ArgumentsCount(fns ...any) []int {
	counts := make([]int, len(fns))
	for i, fn := range fns {
		n, err := Arity(fn)
		if err != nil {
			n = -1
		}
		counts[i] = n
	}
	return counts
}
