// Package xmath provides tiny generic numeric helpers for stack bound
// checks, grounded on the constraints package the corpus's catrate and
// logiface modules already depend on.
package xmath

import "golang.org/x/exp/constraints"

// Clamp restricts v to the closed range [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
