// Package memo caches the results of functions.
//
// Memoize is the simplest form: a zero-argument function is evaluated once and its
// result is handed back on every later call. It is the lazy constant of this library.
//
// The Tableize family goes one step further and treats a pure function of up to four
// arguments as a lazily filled table:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// If the answer to both is yes, tableizing it is safe. Keys must be comparable or
// implement fmt.Stringer; anything else panics on the first call.
//
// Features:
//   - Memoize / MemoizeErr: run-once wrappers for zero-argument functions.
//   - TableizeI1O1 to TableizeI4O2: typed, generic memoizers for common arities.
//   - Bounded two-generation tables, sharded by an xxhash of the key.
//
// WARNING: Do not tableize impure functions (e.g., those depending on time, I/O, etc).
package memo
