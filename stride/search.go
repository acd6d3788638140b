// SPDX-License-Identifier: MIT

package stride

// Linear scans over the backing store in flat index order.
// Value searches only match written slots; use the *Empty variants to
// locate slots nothing has been written to.

// FindFirstFunc returns the lowest index whose slot satisfies match.
// Complexity: O(N).
func (a *Array[T]) FindFirstFunc(match func(Slot[T]) bool) (int, bool) {
	for i, s := range a.data {
		if match(s) {
			return i, true
		}
	}

	return 0, false
}

// FindLastFunc returns the highest index whose slot satisfies match.
func (a *Array[T]) FindLastFunc(match func(Slot[T]) bool) (int, bool) {
	for i := len(a.data) - 1; i >= 0; i-- {
		if match(a.data[i]) {
			return i, true
		}
	}

	return 0, false
}

// FindAllFunc returns every index whose slot satisfies match, ascending.
// The result is never nil.
func (a *Array[T]) FindAllFunc(match func(Slot[T]) bool) []int {
	out := []int{}
	for i, s := range a.data {
		if match(s) {
			out = append(out, i)
		}
	}

	return out
}

// FindFirst returns the lowest index holding v; false means not found.
func (a *Array[T]) FindFirst(v T) (int, bool) {
	return a.FindFirstFunc(func(s Slot[T]) bool { return s.Is(v) })
}

// FindLast returns the highest index holding v; false means not found.
func (a *Array[T]) FindLast(v T) (int, bool) {
	return a.FindLastFunc(func(s Slot[T]) bool { return s.Is(v) })
}

// FindAll returns every index holding v, ascending.
func (a *Array[T]) FindAll(v T) []int {
	return a.FindAllFunc(func(s Slot[T]) bool { return s.Is(v) })
}

// FindFirstEmpty returns the lowest index holding the empty marker.
func (a *Array[T]) FindFirstEmpty() (int, bool) {
	return a.FindFirstFunc(Slot[T].IsEmpty)
}

// FindAllEmpty returns every index holding the empty marker, ascending.
func (a *Array[T]) FindAllEmpty() []int {
	return a.FindAllFunc(Slot[T].IsEmpty)
}
