package memo

import (
	"fmt"
)

// ComparableOrStringer is an argument accepted by the Tableize family.
// It must be comparable or implement fmt.Stringer.
type ComparableOrStringer any

// ComparableOrString is the key an argument is stored under.
type ComparableOrString any

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	config TableConfig,
) func(I1) O1 {
	memo := NewTable[O1](config)
	return func(i1 I1) O1 {
		return loadOrCompute(memo, func() O1 { return pureFn(i1) }, i1)
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	config TableConfig,
) func(I1, I2) O1 {
	memo := NewTable[O1](config)
	return func(i1 I1, i2 I2) O1 {
		return loadOrCompute(memo, func() O1 { return pureFn(i1, i2) }, i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	config TableConfig,
) func(I1, I2, I3) O1 {
	memo := NewTable[O1](config)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return loadOrCompute(memo, func() O1 { return pureFn(i1, i2, i3) }, i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	config TableConfig,
) func(I1, I2, I3, I4) O1 {
	memo := NewTable[O1](config)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return loadOrCompute(memo, func() O1 { return pureFn(i1, i2, i3, i4) }, i1, i2, i3, i4)
	}
}

type pair[O1, O2 any] struct {
	first  O1
	second O2
}

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	config TableConfig,
) func(I1) (O1, O2) {
	memo := NewTable[pair[O1, O2]](config)
	return func(i1 I1) (O1, O2) {
		p := loadOrCompute(memo, func() pair[O1, O2] { return pairOf[O1, O2](pureFn(i1)) }, i1)
		return p.first, p.second
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	config TableConfig,
) func(I1, I2) (O1, O2) {
	memo := NewTable[pair[O1, O2]](config)
	return func(i1 I1, i2 I2) (O1, O2) {
		p := loadOrCompute(memo, func() pair[O1, O2] { return pairOf[O1, O2](pureFn(i1, i2)) }, i1, i2)
		return p.first, p.second
	}
}

func TableizeI3O2[I1, I2, I3 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	config TableConfig,
) func(I1, I2, I3) (O1, O2) {
	memo := NewTable[pair[O1, O2]](config)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		p := loadOrCompute(memo, func() pair[O1, O2] { return pairOf[O1, O2](pureFn(i1, i2, i3)) }, i1, i2, i3)
		return p.first, p.second
	}
}

func TableizeI4O2[I1, I2, I3, I4 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	config TableConfig,
) func(I1, I2, I3, I4) (O1, O2) {
	memo := NewTable[pair[O1, O2]](config)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		p := loadOrCompute(memo, func() pair[O1, O2] { return pairOf[O1, O2](pureFn(i1, i2, i3, i4)) }, i1, i2, i3, i4)
		return p.first, p.second
	}
}

func pairOf[O1, O2 any](o1 O1, o2 O2) pair[O1, O2] {
	return pair[O1, O2]{first: o1, second: o2}
}

// tableKey turns an argument into a map key; Stringers are keyed by their text.
func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

// loadOrCompute is not atomic: two concurrent misses on the same key may both compute.
// That is harmless for pure functions.
func loadOrCompute[O any](memo *Table[O], compute func() O, args ...ComparableOrStringer) O {
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	v, ok := memo.Load(keys)
	if !ok {
		v = compute()
		memo.Store(keys, v)
	}
	return v
}
