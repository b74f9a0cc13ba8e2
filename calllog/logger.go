package calllog

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/closure_ive_go/introspect"
)

// Logger wraps fn so that each call is reported to logFunc before and after fn runs.
// The wrapper has fn's signature and returns fn's results unchanged. If fn panics the
// "ends" line is not emitted and the panic propagates.
func Logger[F any](fn F, logFunc func(string)) F {
	return Named(introspect.FunctionName(fn), fn, logFunc)
}

// Named is Logger with an explicit name, for closures whose runtime name is funcN.
func Named[F any](name string, fn F, logFunc func(string)) F {
	return wrap(fn, func(args []any, invoke func() []reflect.Value) []reflect.Value {
		call := FormatCall(name, args)
		logFunc(call + " starts")
		out := invoke()
		logFunc(call + " ends")
		return out
	})
}

// wrap builds a function of fn's type that hands each call to around.
// around receives the call arguments, variadic ones flattened, and must call
// invoke to run fn.
func wrap[F any](fn F, around func(args []any, invoke func() []reflect.Value) []reflect.Value) F {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		panic(fmt.Sprintf("calllog: cannot wrap %T", fn))
	}
	ft := fv.Type()

	wrapper := reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		return around(callArgs(ft, in), func() []reflect.Value {
			if ft.IsVariadic() {
				return fv.CallSlice(in)
			}
			return fv.Call(in)
		})
	})
	return wrapper.Interface().(F)
}

func callArgs(ft reflect.Type, in []reflect.Value) []any {
	args := make([]any, 0, len(in))
	for i, v := range in {
		if ft.IsVariadic() && i == len(in)-1 {
			for j := 0; j < v.Len(); j++ {
				args = append(args, v.Index(j).Interface())
			}
			continue
		}
		args = append(args, v.Interface())
	}
	return args
}
