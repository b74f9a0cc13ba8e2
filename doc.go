// Package closure is the root of closure_ive_go, a small set of functional-programming
// utilities built on closures and reflection.
//
// Nothing lives in this package itself; the utilities are split by concern:
//   - introspect: function names, source text and arity
//   - curve: power and polynomial function factories
//   - memo: run-once memoization and argument-keyed tables (Tableize)
//   - retry: bounded retry of fallible calls
//   - calllog: signature-preserving call tracing, plain or through zap
//   - partial: partial application, reflective and typed
//   - sequence: independent id generators
//
// Each wrapper owns its state privately. Nothing is shared between two wrappers,
// even when they are built from the same function.
package closure
