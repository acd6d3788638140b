package board

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stride/stride"
)

// Lines returns every row, every column and both main diagonals of a square
// 2D array, in that order. Rows are Slice(Wildcard, y), columns Slice(x, Wildcard),
// diagonals TraceDirection from (1,1) by (1,1) and from (1,n) by (1,-1).
// Returns ErrNotBoard for rank != 2, ErrNotSquare for unequal axes.
// Complexity: O(n²).
func Lines[T comparable](a *stride.Array[T]) ([]Line[T], error) {
	dims := a.Dimensions()
	if len(dims) != 2 {
		return nil, fmt.Errorf("Lines: rank %d: %w", len(dims), ErrNotBoard)
	}
	n := dims[0]
	if dims[1] != n {
		return nil, fmt.Errorf("Lines: dims %v: %w", dims, ErrNotSquare)
	}

	lines := make([]Line[T], 0, 2*n+2)
	for y := 1; y <= n; y++ {
		slots, _ := a.SliceSlots(stride.Wildcard, y) // rank already checked
		lines = append(lines, Line[T]{Start: []int{1, y}, Direction: []int{1, 0}, Slots: slots})
	}
	for x := 1; x <= n; x++ {
		slots, _ := a.SliceSlots(x, stride.Wildcard)
		lines = append(lines, Line[T]{Start: []int{x, 1}, Direction: []int{0, 1}, Slots: slots})
	}
	for _, d := range []struct{ start, dir []int }{
		{[]int{1, 1}, []int{1, 1}},
		{[]int{1, n}, []int{1, -1}},
	} {
		lines = append(lines, Line[T]{Start: d.start, Direction: d.dir, Slots: a.TraceDirection(d.start, d.dir)})
	}

	return lines, nil
}

// runDirections lists one direction per line orientation for the given rank:
// every vector in {-1,0,1}^rank whose first non-zero component is +1.
// In 2D: (0,1), (1,-1), (1,0), (1,1).
func runDirections(rank int) [][]int {
	var out [][]int
	cur := make([]int, rank)
	var walk func(axis int, lead bool)
	walk = func(axis int, lead bool) {
		if axis == rank {
			if !lead {
				out = append(out, slices.Clone(cur))
			}
			return
		}
		steps := []int{-1, 0, 1}
		if lead {
			steps = []int{0, 1} // no non-zero component yet: the first one must be +1
		}
		for _, s := range steps {
			cur[axis] = s
			walk(axis+1, lead && s == 0)
		}
	}
	walk(0, true)

	return out
}

// Runs returns every window of k consecutive cells, along any straight
// direction (axis-aligned or diagonal), whose cells all hold the same present
// value. Windows are reported by start cell in flat index order, then by
// direction in runDirections order. Overlapping windows are all reported.
// A window of one cell has no direction, so k == 1 yields one window per
// present cell, carrying the first direction.
// Returns ErrBadRunLength for k < 1.
// Complexity: O(N × 3^rank × k).
func Runs[T comparable](a *stride.Array[T], k int) ([]Line[T], error) {
	if k < 1 {
		return nil, fmt.Errorf("Runs: k=%d: %w", k, ErrBadRunLength)
	}
	dirs := runDirections(a.Rank())
	if k == 1 {
		dirs = dirs[:1]
	}
	var runs []Line[T]
	for i := 0; i < a.Len(); i++ {
		if a.AtIndex(i).IsEmpty() {
			continue
		}
		start, _ := a.IndexToCoordinate(i)
		for _, d := range dirs {
			slots := a.TraceDirection(start, d)
			if len(slots) < k {
				continue
			}
			l := Line[T]{Start: start, Direction: d, Slots: slots[:k]}
			if _, ok := l.Uniform(); ok {
				runs = append(runs, l)
			}
		}
	}

	return runs, nil
}

// Winner returns the value of the first run of k equal cells, if any.
// In tic-tac-toe Winner(a, 3) names the player who completed a line.
func Winner[T comparable](a *stride.Array[T], k int) (T, bool, error) {
	var zero T
	runs, err := Runs(a, k)
	if err != nil {
		return zero, false, err
	}
	if len(runs) == 0 {
		return zero, false, nil
	}
	v, _ := runs[0].Uniform()

	return v, true, nil
}
