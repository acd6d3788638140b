// SPDX-License-Identifier: MIT

package stride

import "fmt"

// Wildcard in a Slice pattern selects every position of that axis.
// Coordinates are 1-based, so 0 never collides with a fixed position.
const Wildcard = 0

// Slot is one element of the backing store: either a value or the empty
// marker. The zero Slot is empty, which keeps "nothing written here" apart
// from an application value that happens to equal T's zero value.
type Slot[T comparable] struct {
	value T
	set   bool
}

// Full returns a Slot holding v.
func Full[T comparable](v T) Slot[T] {
	return Slot[T]{value: v, set: true}
}

// Empty returns the empty marker for T.
func Empty[T comparable]() Slot[T] {
	return Slot[T]{}
}

// Value returns the stored value and whether the slot holds one.
func (s Slot[T]) Value() (T, bool) {
	return s.value, s.set
}

// IsEmpty reports whether the slot holds the empty marker.
func (s Slot[T]) IsEmpty() bool {
	return !s.set
}

// Is reports whether the slot holds exactly v. Empty slots match nothing.
func (s Slot[T]) Is(v T) bool {
	return s.set && s.value == v
}

// String renders the value, or "_" for the empty marker.
func (s Slot[T]) String() string {
	if !s.set {
		return "_"
	}

	return fmt.Sprint(s.value)
}

// Array is a fixed-rank N-dimensional array over one flat backing slice.
//   - dims[i] is the size of axis i+1 (axes are numbered from 1 in the API).
//   - strides[i] is the flat distance between neighbours along axis i+1;
//     strides[0] == 1 and strides[i] == strides[i-1]*dims[i-1].
//   - data holds product(dims) slots; coordinate (c1..cn) lives at
//     Σ (c_i-1)*strides[i-1].
//
// An Array is not safe for concurrent mutation. Concurrent reads are fine
// while nothing writes.
type Array[T comparable] struct {
	offset  int     // persistence only; never used for addressing
	dims    []int   // axis sizes, each >= 1
	strides []int   // recomputed in full on every shape change
	data    []Slot[T]
	opts    Options // construction settings (logger)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array[int])(nil)
