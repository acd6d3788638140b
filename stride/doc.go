// SPDX-License-Identifier: MIT

// Package stride stores fixed-rank multidimensional grids in one flat slice,
// addressed through a stride table instead of nested containers.
//
// A tic-tac-toe board is New[rune]([]int{3, 3}), a sudoku grid of nine 3×3
// boxes is New[int]([]int{3, 3, 9}), a chessboard is New[string]([]int{8, 8}).
//
// Addressing:
//
//	strides[0] = 1, strides[i] = strides[i-1] * dims[i-1]
//	index(c1..cn) = Σ (c_i - 1) * strides[i-1]      (coordinates are 1-based)
//	coord_i(index) = index / strides[i-1] % dims[i-1] + 1
//
// The first axis varies fastest. For a 3×3 array numbered 1..9 the first axis
// walks "1 2 3" and the second walks "1 4 7".
//
// Every slot holds either a value or the empty marker (see Slot), so "nothing
// written" never collides with an application value. Reads at invalid
// coordinates report not-found and writes there are dropped; errors are kept
// for index math, slicing, construction and ExtendAxis.
//
// Operations:
//   - Get/Set/Clear and the *AtIndex forms, Fill, Reset.
//   - FindFirst/FindLast/FindAll and their Func/Empty variants.
//   - Slice with Wildcard entries: nested Sections, highest wildcard axis outermost.
//   - TraceDirection: rows, columns, diagonals or any integer step.
//   - ExtendAxis/ExtendAxisWith: grow one axis in front or at the back.
//   - Snapshot/Restore/FromRecord: a four-field Record for persistence.
//
// An Array has no internal locking. Callers serialize mutations.
package stride
