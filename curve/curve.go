// Package curve builds numeric functions out of their parameters.
package curve

import "math"

// PowerFunction returns f(x) = x^exponent. The exponent may be fractional.
func PowerFunction(exponent float64) func(float64) float64 {
	return func(x float64) float64 {
		return math.Pow(x, exponent)
	}
}

// Polynom returns the polynomial with the given coefficients, highest degree first:
// Polynom(2, 3, 5) is 2x² + 3x + 5. Returns nil when no coefficients are given.
func Polynom(coefficients ...float64) func(float64) float64 {
	if len(coefficients) == 0 {
		return nil
	}
	cs := append([]float64(nil), coefficients...)
	return func(x float64) float64 {
		// Horner's rule
		y := 0.0
		for _, c := range cs {
			y = y*x + c
		}
		return y
	}
}
