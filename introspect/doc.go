// Package introspect reports what the runtime knows about functions: their names,
// their declared arity and, when the source tree is still around, their source text.
//
// Names come from the symbol table (runtime.FuncForPC), so they are the declared
// names: "Cos" for math.Cos, "Method" for a method value, "func1" for an anonymous
// closure. Source text is read from the file recorded in the binary's line table,
// which means FunctionBody only works where that file exists, typically in tests
// and in binaries built without -trimpath.
package introspect
