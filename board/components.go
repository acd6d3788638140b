package board

import (
	"slices"

	"github.com/katalvlaran/stride/stride"
)

// neighborOffsets returns the per-axis offsets for conn on an array of the
// given rank, in a fixed order.
//   - Conn4: for each axis, -1 then +1.
//   - Conn8: every vector in {-1,0,1}^rank except all-zero, lexicographic.
func neighborOffsets(rank int, conn Connectivity) [][]int {
	if conn != Conn8 {
		offs := make([][]int, 0, 2*rank)
		for axis := 0; axis < rank; axis++ {
			for _, s := range []int{-1, 1} {
				d := make([]int, rank)
				d[axis] = s
				offs = append(offs, d)
			}
		}
		return offs
	}

	var offs [][]int
	cur := make([]int, rank)
	var walk func(axis int, moved bool)
	walk = func(axis int, moved bool) {
		if axis == rank {
			if moved {
				offs = append(offs, slices.Clone(cur))
			}
			return
		}
		for _, s := range []int{-1, 0, 1} {
			cur[axis] = s
			walk(axis+1, moved || s != 0)
		}
	}
	walk(0, false)

	return offs
}

// Neighbors returns the in-bounds neighbours of coord under conn, as 1-based
// coordinates in neighborOffsets order. An invalid coord has no neighbours.
// Complexity: O(d × rank), d = 2·rank or 3^rank-1.
func Neighbors[T comparable](a *stride.Array[T], conn Connectivity, coord ...int) [][]int {
	if _, err := a.CoordinateToIndex(coord...); err != nil {
		return nil
	}
	var out [][]int
	for _, d := range neighborOffsets(a.Rank(), conn) {
		next := make([]int, len(coord))
		for i := range coord {
			next[i] = coord[i] + d[i]
		}
		if _, err := a.CoordinateToIndex(next...); err == nil {
			out = append(out, next)
		}
	}

	return out
}

// Components finds every contiguous region of cells accepted by match,
// according to conn. Regions are seeded in flat index order; each region
// lists its cells as flat indices in breadth-first order from its seed.
//
// To convert an index back to a coordinate, use a.IndexToCoordinate.
//
// Time:   O(N·d·rank), d = number of neighbour offsets.
// Memory: O(N) for visited flags and output.
func Components[T comparable](a *stride.Array[T], conn Connectivity, match func(stride.Slot[T]) bool) [][]int {
	seen := make([]bool, a.Len())
	offsets := neighborOffsets(a.Rank(), conn)
	dims := a.Dimensions()
	var comps [][]int

	for i0 := 0; i0 < a.Len(); i0++ {
		if seen[i0] || !match(a.AtIndex(i0)) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			uc, _ := a.IndexToCoordinate(u)
			for _, d := range offsets {
				vc := make([]int, len(uc))
				for ax := range uc {
					vc[ax] = uc[ax] + d[ax]
				}
				if !inBounds(dims, vc) {
					continue
				}
				vi, _ := a.CoordinateToIndex(vc...)
				if !seen[vi] && match(a.AtIndex(vi)) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// inBounds reports whether coord lies within dims (1-based).
func inBounds(dims, coord []int) bool {
	for i, c := range coord {
		if c < 1 || c > dims[i] {
			return false
		}
	}

	return true
}
