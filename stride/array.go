// SPDX-License-Identifier: MIT

// Package stride - construction, index math & introspection.
//
// Purpose:
//   - Allocate one flat backing slice of product(dims) slots and address it
//     through a stride table computed from the dimension vector.
//   - Map 1-based coordinates to flat indices and back, exactly inverse.
//   - Keep every instance's slices private: accessors hand out copies.
//
// Complexity quicksheet:
//   - New/NewNumbered/NewFilled: O(N); CoordinateToIndex/IndexToCoordinate: O(rank);
//     Clone/Slots/Equal/String: O(N).

package stride

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Number is the element constraint for auto-numbered arrays.
type Number interface {
	constraints.Integer | constraints.Float
}

// New creates an array of the given shape with every slot empty.
// MAIN DESCRIPTION:
//   - dims lists the axis sizes; len(dims) is the rank and stays fixed.
//
// Implementation:
//   - Stage 1: validate dims (non-empty, every size >= 1, product fits in int).
//   - Stage 2: copy dims, compute strides, allocate empty slots.
//
// Errors:
//   - ErrBadShape (wrapped with the offending dims).
//
// Complexity:
//   - Time O(N), Space O(N), N = product(dims).
func New[T comparable](dims []int, opts ...Option) (*Array[T], error) {
	n, err := validateShape(dims)
	if err != nil {
		return nil, arrayErrorf(ctxNew, dims, err)
	}
	o := gatherOptions(opts...)
	if o.offsetClamped {
		o.logger.Debug("stride: negative offset replaced", "offset", o.offset)
	}

	return &Array[T]{
		offset:  o.offset,
		dims:    slices.Clone(dims),
		strides: computeStrides(dims),
		data:    make([]Slot[T], n), // zero Slot is the empty marker
		opts:    o,
	}, nil
}

// NewNumbered creates an array whose slots hold 1..N in ascending index order.
// Returns ErrBadShape when N does not fit in T.
func NewNumbered[T Number](dims []int, opts ...Option) (*Array[T], error) {
	a, err := New[T](dims, opts...)
	if err != nil {
		return nil, err
	}
	n := len(a.data)
	if !labelsExact[T](n) {
		return nil, arrayErrorf(ctxNumbering, dims, ErrBadShape)
	}
	for i := range a.data {
		a.data[i] = Full(T(i + 1))
	}

	return a, nil
}

// labelsExact reports whether T holds every label 1..n exactly.
// Integers overflow only at n. Floats lose exactness past 2^mantissa, where
// one of n-1 and n is odd and so not representable.
func labelsExact[T Number](n int) bool {
	exact := func(v int) bool { return int(T(v)) == v }

	return exact(n) && (n < 2 || exact(n-1))
}

// NewFilled creates an array with every slot holding v.
func NewFilled[T comparable](dims []int, v T, opts ...Option) (*Array[T], error) {
	a, err := New[T](dims, opts...)
	if err != nil {
		return nil, err
	}
	a.Fill(v)

	return a, nil
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	return len(a.dims)
}

// Len returns the number of slots in the backing store.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Offset returns the persistence offset.
func (a *Array[T]) Offset() int {
	return a.offset
}

// Dimensions returns a copy of the axis sizes.
func (a *Array[T]) Dimensions() []int {
	return slices.Clone(a.dims)
}

// Strides returns a copy of the stride table.
func (a *Array[T]) Strides() []int {
	return slices.Clone(a.strides)
}

// Slots returns a copy of the backing store in flat index order.
func (a *Array[T]) Slots() []Slot[T] {
	return slices.Clone(a.data)
}

// CoordinateToIndex maps a 1-based coordinate to its flat index.
// Stage 1 (Validate): rank and per-axis bounds.
// Stage 2 (Execute): Σ (coord[i]-1)*stride[i].
// Errors: ErrRankMismatch, ErrOutOfRange.
// Complexity: O(rank).
func (a *Array[T]) CoordinateToIndex(coord ...int) (int, error) {
	idx, err := a.indexOf(coord)
	if err != nil {
		return 0, arrayErrorf(ctxToIndex, coord, err)
	}

	return idx, nil
}

// indexOf is the unwrapped form of CoordinateToIndex used on hot paths.
func (a *Array[T]) indexOf(coord []int) (int, error) {
	if err := validateCoordinate(a.dims, coord); err != nil {
		return 0, err
	}
	if !a.addressable() {
		return 0, ErrOutOfRange
	}
	idx := 0
	for i, c := range coord {
		idx += (c - 1) * a.strides[i]
	}
	// Only reachable after Restore with a record whose fields disagree.
	if idx >= len(a.data) {
		return 0, ErrOutOfRange
	}

	return idx, nil
}

// addressable reports whether the stride table can drive index math: one
// stride per axis, each >= 1. Constructors always satisfy it; a restored
// record may not.
func (a *Array[T]) addressable() bool {
	if len(a.strides) != len(a.dims) {
		return false
	}
	for _, s := range a.strides {
		if s < 1 {
			return false
		}
	}

	return true
}

// IndexToCoordinate maps a flat index back to its 1-based coordinate.
// coord[i] = (index / stride[i]) % dim[i] + 1.
// Errors: ErrOutOfRange when index is outside [0, Len()-1].
// Complexity: O(rank).
func (a *Array[T]) IndexToCoordinate(index int) ([]int, error) {
	if index < 0 || index >= len(a.data) || !a.addressable() {
		return nil, arrayErrorf(ctxToCoord, []int{index}, ErrOutOfRange)
	}
	coord := make([]int, len(a.dims))
	for i := range a.dims {
		coord[i] = index/a.strides[i]%a.dims[i] + 1
	}

	return coord, nil
}

// Clone returns a deep copy that shares no storage with a.
// Complexity: O(N).
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		offset:  a.offset,
		dims:    slices.Clone(a.dims),
		strides: slices.Clone(a.strides),
		data:    slices.Clone(a.data),
		opts:    a.opts,
	}
}

// Equal reports whether a and b have the same offset, shape and slots.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.offset == b.offset &&
		slices.Equal(a.dims, b.dims) &&
		slices.Equal(a.strides, b.strides) &&
		slices.Equal(a.data, b.data)
}

// String implements fmt.Stringer for debugging: a header line with offset,
// dimensions and strides, then the slots in flat order ("_" marks empty).
func (a *Array[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "stride.Array offset=%d dims=%v strides=%v\n", a.offset, a.dims, a.strides)
	sb.WriteString(_fmtOpen)
	for i, s := range a.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(s.String())
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
