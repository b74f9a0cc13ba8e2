// Package partial fixes a prefix of a function's arguments in advance.
//
// Apply works on any function through reflection and hands results back as any.
// Bind1, Bind2 and Bind3 are the statically typed counterparts for common shapes.
package partial

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/closure_ive_go/shared/helper"
)

// ApplyError describes a call that does not fit the function being applied.
type ApplyError struct {
	Func   string
	Reason string
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("partial: %s: %s", e.Func, e.Reason)
}

// Apply returns a function that calls fn with bound followed by the arguments it
// receives. A call with no results yields nil, a single result is returned as is,
// several results come back as []any. A nil argument stands for the zero value of
// its parameter. Malformed calls panic with an *ApplyError.
func Apply(fn any, bound ...any) func(rest ...any) any {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		panic(&ApplyError{Func: fmt.Sprintf("%T", fn), Reason: "not a function"})
	}
	bound = append([]any(nil), bound...)

	return func(rest ...any) any {
		args := make([]any, 0, len(bound)+len(rest))
		args = append(args, bound...)
		args = append(args, rest...)

		in, err := argValues(fv.Type(), args)
		if err != nil {
			panic(err)
		}
		return results(fv.Call(in))
	}
}

// ApplyAs is Apply with a typed result. A result that is not an R is an error.
func ApplyAs[R any](fn any, bound ...any) func(rest ...any) (R, error) {
	applied := Apply(fn, bound...)
	return func(rest ...any) (R, error) {
		return helper.GetTypedValueOf[R](func() (any, error) {
			return applied(rest...), nil
		})
	}
}

// argValues converts args into call values for ft, checking count and assignability.
func argValues(ft reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	fixed := numIn
	if ft.IsVariadic() {
		fixed--
	}
	if len(args) < fixed || (!ft.IsVariadic() && len(args) > numIn) {
		return nil, &ApplyError{
			Func:   ft.String(),
			Reason: fmt.Sprintf("got %d arguments, want %d", len(args), numIn),
		}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(numIn - 1).Elem()
		}

		if arg == nil {
			if !helper.IsNilable(pt) {
				return nil, &ApplyError{Func: ft.String(), Reason: fmt.Sprintf("argument %d: nil for %v", i, pt)}
			}
			in[i] = reflect.Zero(pt)
			continue
		}

		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(pt) {
			return nil, &ApplyError{Func: ft.String(), Reason: fmt.Sprintf("argument %d: %v is not assignable to %v", i, v.Type(), pt)}
		}
		in[i] = v
	}
	return in, nil
}

func results(out []reflect.Value) any {
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		res := make([]any, len(out))
		for i, v := range out {
			res[i] = v.Interface()
		}
		return res
	}
}
