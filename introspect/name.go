package introspect

import (
	"reflect"
	"runtime"
	"strings"
)

// CurrentFunctionName returns the name of the function executing the call,
// which is always "CurrentFunctionName".
func CurrentFunctionName() string {
	return frameName(0)
}

// CallerName returns the name of the function skip frames above its caller.
// CallerName(0) is the name of the function that called CallerName.
func CallerName(skip int) string {
	return frameName(skip + 1)
}

// FunctionName returns the declared short name of fn.
// Returns "" for nil or non-function values.
func FunctionName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	return shortName(f.Name())
}

// frameName walks logical frames, so inlined callers are still reported.
// skip 0 is the caller of frameName.
func frameName(skip int) string {
	pcs := make([]uintptr, skip+8)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for i := 0; ; i++ {
		frame, more := frames.Next()
		if i == skip+1 {
			return shortName(frame.Function)
		}
		if !more {
			return ""
		}
	}
}

// shortName strips the package path, receiver and type arguments from a symbol name.
func shortName(fullName string) string {
	fullName = strings.ReplaceAll(fullName, "[...]", "")
	elements := strings.Split(fullName, ".")
	shortName := elements[len(elements)-1]
	return strings.TrimSuffix(shortName, "-fm")
}
