// SPDX-License-Identifier: MIT

// Package stride - wildcard slicing.
//
// A pattern has one entry per axis: a fixed 1-based position or Wildcard.
// Wildcard axes are expanded from the highest axis number down, so the
// outermost nesting level of the result walks the highest wildcard axis and
// the innermost level walks the lowest one.
//
// Example (3×3 numbered 1..9, rows "1 2 3 / 4 5 6 / 7 8 9"):
//   - Slice(Wildcard, 1) -> [1 2 3]
//   - Slice(1, Wildcard) -> [1 4 7]
//   - Slice(Wildcard, Wildcard) -> [[1 2 3] [4 5 6] [7 8 9]]

package stride

import (
	"slices"
	"strings"
)

// Section is the result of Slice: either a single slot (leaf) or an ordered
// list of nested sections, one per position of the expanded axis.
type Section[T comparable] struct {
	leaf  bool
	slot  Slot[T]
	items []Section[T]
}

// IsLeaf reports whether the section is a single slot.
func (s Section[T]) IsLeaf() bool { return s.leaf }

// Slot returns the leaf slot; the empty marker for a non-leaf section.
func (s Section[T]) Slot() Slot[T] { return s.slot }

// Value returns the leaf value; ok is false for empty slots and non-leaves.
func (s Section[T]) Value() (T, bool) { return s.slot.Value() }

// Len returns the number of nested sections (0 for a leaf).
func (s Section[T]) Len() int { return len(s.items) }

// Item returns the i-th nested section (0-based).
func (s Section[T]) Item(i int) Section[T] { return s.items[i] }

// Items returns a copy of the nested sections.
func (s Section[T]) Items() []Section[T] { return slices.Clone(s.items) }

// Slots flattens the section depth-first into its leaf slots, preserving order.
func (s Section[T]) Slots() []Slot[T] {
	if s.leaf {
		return []Slot[T]{s.slot}
	}
	out := make([]Slot[T], 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.Slots()...)
	}

	return out
}

// Values flattens the section into the present leaf values, skipping empty slots.
func (s Section[T]) Values() []T {
	slots := s.Slots()
	out := make([]T, 0, len(slots))
	for _, sl := range slots {
		if v, ok := sl.Value(); ok {
			out = append(out, v)
		}
	}

	return out
}

// String renders nested brackets, e.g. "[[1 2 3] [4 5 6]]".
func (s Section[T]) String() string {
	if s.leaf {
		return s.slot.String()
	}
	parts := make([]string, len(s.items))
	for i, it := range s.items {
		parts[i] = it.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Slice reads the elements selected by pattern.
// Stage 1 (Validate): len(pattern) must equal Rank().
// Stage 2 (Execute): without wildcards return a leaf holding At(pattern...);
// otherwise expand the highest wildcard axis and recurse.
// Errors: ErrRankMismatch.
// Complexity: O(size of the selection × rank).
func (a *Array[T]) Slice(pattern ...int) (Section[T], error) {
	if len(pattern) != len(a.dims) {
		return Section[T]{}, arrayErrorf(ctxSlice, pattern, ErrRankMismatch)
	}

	return a.section(slices.Clone(pattern)), nil
}

// SliceSlots is Slice flattened into leaf order.
func (a *Array[T]) SliceSlots(pattern ...int) ([]Slot[T], error) {
	sec, err := a.Slice(pattern...)
	if err != nil {
		return nil, err
	}

	return sec.Slots(), nil
}

// section expands pat in place; the caller owns pat.
func (a *Array[T]) section(pat []int) Section[T] {
	axis := -1
	for i := len(pat) - 1; i >= 0; i-- {
		if pat[i] == Wildcard {
			axis = i
			break
		}
	}
	if axis < 0 {
		return Section[T]{leaf: true, slot: a.At(pat...)}
	}

	items := make([]Section[T], max(a.dims[axis], 0)) // restored dims may be < 1
	for p := 1; p <= a.dims[axis]; p++ {
		pat[axis] = p
		items[p-1] = a.section(pat)
	}
	pat[axis] = Wildcard // restore for the caller's remaining iterations

	return Section[T]{items: items}
}
