// SPDX-License-Identifier: MIT
// Package: stride
//
// Purpose:
//   - Single source of truth for shape, coordinate and axis checks.
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing. Cost is O(rank).

package stride

import "math"

// validateShape ensures dims is non-empty, every size is >= 1, and the element
// count fits in an int. It returns that element count.
// Complexity: O(rank).
func validateShape(dims []int) (int, error) {
	if len(dims) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, d := range dims {
		if d < 1 {
			return 0, ErrBadShape
		}
		if n > math.MaxInt/d {
			return 0, ErrBadShape
		}
		n *= d
	}

	return n, nil
}

// validateCoordinate ensures len(coord) == len(dims) and coord[i] ∈ [1, dims[i]].
// Complexity: O(rank).
func validateCoordinate(dims, coord []int) error {
	if len(coord) != len(dims) {
		return ErrRankMismatch
	}
	for i, c := range coord {
		if c < 1 || c > dims[i] {
			return ErrOutOfRange
		}
	}

	return nil
}

// validateAxis ensures the 1-based axis number names an existing axis.
func validateAxis(rank, axis int) error {
	if axis < 1 || axis > rank {
		return ErrAxisOutOfRange
	}

	return nil
}

// computeStrides fills a fresh stride vector from dims with the standard
// recurrence. dims must already be validated.
func computeStrides(dims []int) []int {
	strides := make([]int, len(dims))
	strides[0] = 1 // one step between neighbours on the first axis
	for i := 1; i < len(dims); i++ {
		strides[i] = strides[i-1] * dims[i-1]
	}

	return strides
}

// stridesMatch reports whether strides follows the recurrence for dims.
func stridesMatch(dims, strides []int) bool {
	if len(strides) != len(dims) || len(dims) == 0 {
		return false
	}
	want := 1
	for i := range dims {
		if strides[i] != want {
			return false
		}
		want *= dims[i]
	}

	return true
}
