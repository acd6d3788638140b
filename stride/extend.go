// SPDX-License-Identifier: MIT

// Package stride - axis extension.
//
// Purpose:
//   - Grow one axis by `amount` positions in front of position 1 or past the
//     last position, keeping the rank unchanged.
//
// Layout facts the plan relies on (axis k, 0-based, strides s, dims d):
//   - Fixing every axis above k selects a contiguous slab of s[k+1] = s[k]*d[k]
//     slots; there are product(d[k+1:]) such slabs, laid out back to back.
//   - Growing axis k by m adds m*s[k] slots to the front or back of every slab.
//
// Complexity:
//   - Time O(N + inserted), Space O(N + inserted): one pass into a fresh buffer.

package stride

// extension describes where extendAxis inserts blocks, in old-buffer terms
// and in the new-buffer terms of the classic insertion loop.
type extension struct {
	start int // first insertion offset
	reps  int // number of blocks = product of sizes of axes above the grown one
	block int // slots per block = amount * stride[axis]
	step  int // distance between insertion points in the grown buffer = slab + block
	slab  int // distance between insertion points in the old buffer
}

// planExtension computes the insertion plan for growing the 0-based axis k by
// amount. dims and strides must be consistent and length must equal
// product(dims).
// Stage 1: start = 0 when before, else the stride of the axis above k
// (or length for the highest axis): the boundary just past the first slab.
// Stage 2: reps = product(dims[k+1:]).
// Stage 3: block = amount*strides[k]; step = slab + block.
func planExtension(dims, strides []int, length, k, amount int, before bool) extension {
	slab := length
	if k+1 < len(strides) {
		slab = strides[k+1]
	}

	p := extension{slab: slab, reps: 1, block: amount * strides[k]}
	if !before {
		p.start = slab
	}
	for _, d := range dims[k+1:] {
		p.reps *= d
	}
	p.step = slab + p.block

	return p
}

// insertionPoints lists the offsets, in the grown buffer, at which each block
// lands when blocks are inserted one after another.
func (p extension) insertionPoints() []int {
	pts := make([]int, p.reps)
	for i := range pts {
		pts[i] = p.start + i*p.step
	}

	return pts
}

// applyExtension returns a new buffer with one block at each insertion point.
// Between two points exactly slab old elements are copied.
func applyExtension[T comparable](data []Slot[T], p extension, fill Slot[T]) []Slot[T] {
	out := make([]Slot[T], len(data)+p.reps*p.block)
	src, dst := 0, 0
	for _, at := range p.insertionPoints() {
		src += copy(out[dst:at], data[src:])
		for j := at; j < at+p.block; j++ {
			out[j] = fill
		}
		dst = at + p.block
	}
	copy(out[dst:], data[src:])

	return out
}

// ExtendAxis grows the 1-based axis by amount positions filled with the empty
// marker. See ExtendAxisWith.
func (a *Array[T]) ExtendAxis(axis, amount int, before bool) error {
	return a.extendAxis(axis, amount, before, Slot[T]{})
}

// ExtendAxisWith grows the 1-based axis by amount positions holding fill.
// MAIN DESCRIPTION:
//   - before=false appends positions past the current last one; every existing
//     element keeps its coordinate.
//   - before=true inserts positions in front of position 1; existing elements
//     move by amount along the grown axis and keep every other coordinate.
//
// Errors:
//   - ErrAxisOutOfRange when axis ∉ [1, Rank()]: a structural misuse, the
//     array is left unchanged.
//   - ErrBadShape when amount < 0 or the grown size overflows int.
//   - ErrStrideMismatch when a restored record left dims, strides and data
//     out of agreement.
//
// Notes:
//   - amount == 0 is a no-op.
//   - Dimensions change for one axis only; strides are recomputed from scratch.
func (a *Array[T]) ExtendAxisWith(axis, amount int, before bool, fill T) error {
	return a.extendAxis(axis, amount, before, Full(fill))
}

func (a *Array[T]) extendAxis(axis, amount int, before bool, fill Slot[T]) error {
	if err := validateAxis(len(a.dims), axis); err != nil {
		return arrayErrorf(ctxExtend, []int{axis, amount}, err)
	}
	if amount < 0 {
		return arrayErrorf(ctxExtend, []int{axis, amount}, ErrBadShape)
	}
	if amount == 0 {
		return nil
	}
	if n, err := validateShape(a.dims); err != nil || n != len(a.data) || !stridesMatch(a.dims, a.strides) {
		// Only reachable after Restore with a record whose fields disagree.
		return arrayErrorf(ctxExtend, []int{axis, amount}, ErrStrideMismatch)
	}

	k := axis - 1
	grown := make([]int, len(a.dims))
	copy(grown, a.dims)
	grown[k] += amount
	if _, err := validateShape(grown); err != nil || grown[k] < a.dims[k] {
		return arrayErrorf(ctxExtend, []int{axis, amount}, ErrBadShape)
	}

	p := planExtension(a.dims, a.strides, len(a.data), k, amount, before)
	a.data = applyExtension(a.data, p, fill)
	a.dims = grown
	a.strides = computeStrides(grown)

	a.logger().Debug("stride: axis extended",
		"axis", axis,
		"amount", amount,
		"before", before,
		"dims", a.dims,
		"len", len(a.data),
	)

	return nil
}
