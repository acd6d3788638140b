package stride_test

import (
	"testing"

	"github.com/katalvlaran/stride/stride"
	"github.com/stretchr/testify/require"
)

// TestSetGet validates Set followed by Get on valid coordinates.
func TestSetGet(t *testing.T) {
	a, err := stride.New[string]([]int{8, 8})
	require.NoError(t, err)

	require.True(t, a.Set("K", 5, 1)) // king on e1
	v, ok := a.Get(5, 1)
	require.True(t, ok)
	require.Equal(t, "K", v)

	idx, err := a.CoordinateToIndex(5, 1)
	require.NoError(t, err)
	v, ok = a.GetAtIndex(idx)
	require.True(t, ok)
	require.Equal(t, "K", v)
}

// TestZeroValueIsNotEmpty ensures T's zero value is stored, not confused with empty.
func TestZeroValueIsNotEmpty(t *testing.T) {
	a, err := stride.New[int]([]int{2, 2})
	require.NoError(t, err)

	_, ok := a.Get(1, 1)
	require.False(t, ok) // empty

	a.Set(0, 1, 1)
	v, ok := a.Get(1, 1)
	require.True(t, ok)
	require.Equal(t, 0, v)
	require.False(t, a.At(1, 1).IsEmpty())
}

// TestSetOutOfRangeIsNoop ensures invalid writes leave every slot unchanged.
func TestSetOutOfRangeIsNoop(t *testing.T) {
	a, err := stride.NewNumbered[int]([]int{3, 3})
	require.NoError(t, err)
	before := a.Slots()

	require.False(t, a.Set(-5, 0, 1))
	require.False(t, a.Set(-5, 4, 1))
	require.False(t, a.Set(-5, 1, 1, 1))
	require.False(t, a.Set(-5))
	require.False(t, a.Clear(1, 9))
	require.False(t, a.SetAtIndex(-1, -5))
	require.False(t, a.SetAtIndex(9, -5))
	require.False(t, a.ClearAtIndex(100))

	require.Equal(t, before, a.Slots())
}

// TestGetOutOfRangeSentinel ensures invalid reads report not-found and never panic.
func TestGetOutOfRangeSentinel(t *testing.T) {
	a, err := stride.NewFilled([]int{3, 3}, 0)
	require.NoError(t, err)

	for _, coord := range [][]int{{0, 1}, {4, 4}, {1}, {1, 1, 1}, nil} {
		v, ok := a.Get(coord...)
		require.False(t, ok, "coord %v", coord)
		require.Zero(t, v)
		require.True(t, a.At(coord...).IsEmpty())
	}
	for _, i := range []int{-1, 9, 1 << 30} {
		_, ok := a.GetAtIndex(i)
		require.False(t, ok)
		require.True(t, a.AtIndex(i).IsEmpty())
	}
}

// TestClear writes the empty marker back.
func TestClear(t *testing.T) {
	a, err := stride.NewNumbered[int]([]int{3, 3})
	require.NoError(t, err)

	require.True(t, a.Clear(2, 2))
	_, ok := a.Get(2, 2)
	require.False(t, ok)

	require.True(t, a.ClearAtIndex(0))
	require.Equal(t, []int{0, 4}, a.FindAllEmpty())
}

// TestFillReset covers whole-store overwrites.
func TestFillReset(t *testing.T) {
	a, err := stride.NewNumbered[int]([]int{2, 3})
	require.NoError(t, err)

	a.Fill(7)
	require.Len(t, a.FindAll(7), 6)

	a.Reset()
	require.Len(t, a.FindAllEmpty(), 6)
	require.Equal(t, 6, a.Len())
}

// TestSlotHelpers covers the Slot surface.
func TestSlotHelpers(t *testing.T) {
	s := stride.Full("x")
	v, ok := s.Value()
	require.True(t, ok)
	require.Equal(t, "x", v)
	require.True(t, s.Is("x"))
	require.False(t, s.Is("o"))
	require.Equal(t, "x", s.String())

	e := stride.Empty[string]()
	require.True(t, e.IsEmpty())
	require.False(t, e.Is(""))
	require.Equal(t, "_", e.String())
}
