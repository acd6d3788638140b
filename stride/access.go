// SPDX-License-Identifier: MIT

package stride

// Element access degrades gracefully: invalid coordinates or indices make
// reads report "not found" and writes do nothing. Nothing here panics.

// Get returns the value at coord. ok is false when coord is invalid or the
// slot is empty; that result never collides with a stored value.
// Complexity: O(rank).
func (a *Array[T]) Get(coord ...int) (v T, ok bool) {
	return a.At(coord...).Value()
}

// At returns the raw slot at coord, or the empty marker when coord is invalid.
func (a *Array[T]) At(coord ...int) Slot[T] {
	idx, err := a.indexOf(coord)
	if err != nil {
		return Slot[T]{}
	}

	return a.data[idx]
}

// Set stores v at coord. It reports false and leaves the array unchanged
// when coord is invalid.
func (a *Array[T]) Set(v T, coord ...int) bool {
	return a.put(Full(v), coord)
}

// Clear writes the empty marker at coord. Same policy as Set.
func (a *Array[T]) Clear(coord ...int) bool {
	return a.put(Slot[T]{}, coord)
}

func (a *Array[T]) put(s Slot[T], coord []int) bool {
	idx, err := a.indexOf(coord)
	if err != nil {
		return false
	}
	a.data[idx] = s

	return true
}

// GetAtIndex returns the value at flat index i, bypassing coordinates.
// ok is false when i is outside [0, Len()-1] or the slot is empty.
func (a *Array[T]) GetAtIndex(i int) (v T, ok bool) {
	return a.AtIndex(i).Value()
}

// AtIndex returns the raw slot at flat index i, or the empty marker when out of range.
func (a *Array[T]) AtIndex(i int) Slot[T] {
	if i < 0 || i >= len(a.data) {
		return Slot[T]{}
	}

	return a.data[i]
}

// SetAtIndex stores v at flat index i; out-of-range writes are dropped.
func (a *Array[T]) SetAtIndex(i int, v T) bool {
	return a.putAtIndex(i, Full(v))
}

// ClearAtIndex writes the empty marker at flat index i.
func (a *Array[T]) ClearAtIndex(i int) bool {
	return a.putAtIndex(i, Slot[T]{})
}

func (a *Array[T]) putAtIndex(i int, s Slot[T]) bool {
	if i < 0 || i >= len(a.data) {
		return false
	}
	a.data[i] = s

	return true
}

// Fill overwrites every slot with v.
// Complexity: O(N).
func (a *Array[T]) Fill(v T) {
	s := Full(v)
	for i := range a.data {
		a.data[i] = s
	}
}

// Reset overwrites every slot with the empty marker.
func (a *Array[T]) Reset() {
	clear(a.data)
}
