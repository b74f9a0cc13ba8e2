package calllog_test

import (
	"errors"
	"math"
	"testing"

	"github.com/on-the-ground/closure_ive_go/calllog"
	"github.com/stretchr/testify/assert"
)

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type color int

func (c color) String() string { return [...]string{"red", "green"}[c] }

func TestFormatArg(t *testing.T) {
	var nilSlice []int
	var nilPtr *point
	p := point{X: 1, Y: 2}

	for _, tc := range []struct {
		name     string
		in       any
		expected string
	}{
		{"pi", math.Pi, "3.141592653589793"},
		{"integral float", -1.0, "-1"},
		{"fraction", 2.5, "2.5"},
		{"int", 0, "0"},
		{"string", "a<b", `"a<b"`},
		{"bool", true, "true"},
		{"nil", nil, "null"},
		{"nan", math.NaN(), "null"},
		{"inf", math.Inf(1), "null"},
		{"mixed slice", []any{"expected", "test", 1}, `["expected","test",1]`},
		{"nested", [][]int{{1}, {2, 3}}, `[[1],[2,3]]`},
		{"nil slice", nilSlice, "[]"},
		{"map", map[string]int{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{"struct", p, `{"x":1,"y":2}`},
		{"pointer", &p, `{"x":1,"y":2}`},
		{"nil pointer", nilPtr, "null"},
		{"stringer", color(1), `"green"`},
		{"error", errors.New("boom"), `"boom"`},
		{"func", func() {}, "null"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, calllog.FormatArg(tc.in))
		})
	}
}

func TestFormatCall(t *testing.T) {
	assert.Equal(t, "f()", calllog.FormatCall("f", nil))
	assert.Equal(t, `f("a",1,[true])`, calllog.FormatCall("f", []any{"a", 1, []bool{true}}))
}
