package calllog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// FormatCall renders name(arg1,arg2,...).
func FormatCall(name string, args []any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = FormatArg(arg)
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}

// FormatArg renders a single argument as JSON text.
// Values JSON cannot represent (NaN, channels, functions) render as null.
func FormatArg(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(jsonValue(reflect.ValueOf(v))); err != nil {
		return "null"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

var (
	marshalerType = reflect.TypeFor[json.Marshaler]()
	errorType     = reflect.TypeFor[error]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
)

// jsonValue maps a value onto the variants encoding/json renders the way we want.
func jsonValue(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
	}

	if v.CanInterface() {
		switch t := v.Type(); {
		case t.Implements(marshalerType):
			return v.Interface()
		case t.Implements(errorType):
			return v.Interface().(error).Error()
		case t.Implements(stringerType):
			return v.Interface().(fmt.Stringer).String()
		}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return jsonValue(v.Elem())

	case reflect.String:
		return v.String()

	case reflect.Bool:
		return v.Bool()

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()

	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f

	case reflect.Slice, reflect.Array:
		items := make([]any, v.Len())
		for i := range items {
			items[i] = jsonValue(v.Index(i))
		}
		return items

	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		obj := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			obj[fmt.Sprint(iter.Key().Interface())] = jsonValue(iter.Value())
		}
		return obj

	case reflect.Struct:
		if v.CanInterface() {
			return v.Interface()
		}
		return nil

	default:
		// chan, func, complex, unsafe pointer
		return nil
	}
}
