// Package calllog wraps functions so that every call is traced.
//
// A wrapped function keeps the exact signature of the function it wraps. Before that
// function runs, a line of the form
//
//	name(arg1,arg2,...) starts
//
// is handed to a log function, and once it returns the same call is reported
// with "ends". Arguments are rendered as JSON: strings quoted, slices bracketed,
// numbers bare.
//
// Example:
//
//	cos := calllog.Logger(math.Cos, func(line string) { fmt.Println(line) })
//	cos(math.Pi)
//	// Cos(3.141592653589793) starts
//	// Cos(3.141592653589793) ends
package calllog
