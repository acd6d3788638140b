// SPDX-License-Identifier: MIT

package stride

import "slices"

// TraceDirection walks the array from start, adding direction to the
// coordinate after each step, and collects every slot visited. The walk stops
// as soon as any axis leaves [1, dim]. Steps may be any integer per axis;
// -1, 0 and +1 give rows, columns and diagonals.
//
// The start slot always comes first. The result is empty when start is
// invalid or len(direction) != Rank(). An all-zero direction yields only the
// start slot.
//
// Example (3×3 numbered 1..9):
//   - TraceDirection([1 1], [1 1])   -> [1 5 9]
//   - TraceDirection([1 3], [1 -1])  -> [7 5 3]
//   - TraceDirection([3 3], [-1 -1]) -> [9 5 1]
//
// Complexity: O(path length × rank).
func (a *Array[T]) TraceDirection(start, direction []int) []Slot[T] {
	idx, err := a.indexOf(start)
	if err != nil || len(direction) != len(a.dims) {
		return []Slot[T]{}
	}
	out := []Slot[T]{a.data[idx]}
	if isZeroStep(direction) {
		return out
	}

	cur := slices.Clone(start)
	for {
		for i := range cur {
			cur[i] += direction[i]
		}
		idx, err = a.indexOf(cur)
		if err != nil {
			return out
		}
		out = append(out, a.data[idx])
	}
}

// TraceValues is TraceDirection reduced to the present values along the path.
func (a *Array[T]) TraceValues(start, direction []int) []T {
	slots := a.TraceDirection(start, direction)
	out := make([]T, 0, len(slots))
	for _, s := range slots {
		if v, ok := s.Value(); ok {
			out = append(out, v)
		}
	}

	return out
}

func isZeroStep(direction []int) bool {
	for _, d := range direction {
		if d != 0 {
			return false
		}
	}

	return true
}
