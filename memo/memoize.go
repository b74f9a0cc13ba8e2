package memo

import "sync"

// Memo owns the result of a zero-argument function that is computed at most once.
type Memo[T any] struct {
	mu       sync.Mutex
	fn       func() T
	value    T
	computed bool
}

func NewMemo[T any](fn func() T) *Memo[T] {
	return &Memo[T]{fn: fn}
}

// Call returns the cached value, evaluating fn only on the first call.
// If fn panics nothing is cached and the panic propagates.
func (m *Memo[T]) Call() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.computed {
		m.value = m.fn()
		m.computed = true
		m.fn = nil
	}
	return m.value
}

// Computed reports whether the value has been computed.
func (m *Memo[T]) Computed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.computed
}

// Memoize wraps fn so that it runs once; later calls return the first result.
func Memoize[T any](fn func() T) func() T {
	return NewMemo(fn).Call
}

// MemoizeErr is like Memoize but only a successful result is cached.
// A failed call leaves the wrapper empty so the next call tries again.
func MemoizeErr[T any](fn func() (T, error)) func() (T, error) {
	var (
		mu       sync.Mutex
		value    T
		computed bool
	)
	return func() (T, error) {
		mu.Lock()
		defer mu.Unlock()
		if computed {
			return value, nil
		}
		v, err := fn()
		if err != nil {
			var zero T
			return zero, err
		}
		value, computed = v, true
		return value, nil
	}
}
