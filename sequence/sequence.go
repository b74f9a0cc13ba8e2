// Package sequence hands out increasing ids from private counters.
package sequence

import "sync/atomic"

// Generator is a counter that returns its current value and then moves on by one.
// Generators never share state, and concurrent callers get distinct ids.
type Generator struct {
	next atomic.Int64
}

func NewGenerator(start int64) *Generator {
	g := &Generator{}
	g.next.Store(start)
	return g
}

// Next returns the current id and advances the counter.
func (g *Generator) Next() int64 {
	return g.next.Add(1) - 1
}

// Peek returns the id the next call to Next will hand out.
func (g *Generator) Peek() int64 {
	return g.next.Load()
}

// IDGenerator returns a function yielding startFrom, startFrom+1, ... on successive calls.
func IDGenerator(startFrom int) func() int {
	g := NewGenerator(int64(startFrom))
	return func() int {
		return int(g.Next())
	}
}
