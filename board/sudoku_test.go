package board_test

import (
	"testing"

	"github.com/katalvlaran/stride/board"
	"github.com/katalvlaran/stride/stride"
	"github.com/stretchr/testify/require"
)

// solved fills a complete valid grid using the shifted-row pattern.
func solved(t *testing.T) *stride.Array[int] {
	t.Helper()
	a, err := board.NewSudoku()
	require.NoError(t, err)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.True(t, board.SetSudoku(a, r+1, c+1, (r*3+r/3+c)%9+1))
		}
	}
	return a
}

func digits(t *testing.T, slots []stride.Slot[int]) []int {
	t.Helper()
	out := make([]int, len(slots))
	for i, s := range slots {
		v, ok := s.Value()
		require.True(t, ok)
		out[i] = v
	}
	return out
}

// TestBoxCoordinate checks the board → box mapping at a few anchors.
func TestBoxCoordinate(t *testing.T) {
	cases := []struct {
		row, col int
		want     []int
	}{
		{1, 1, []int{1, 1, 1}},
		{5, 5, []int{2, 2, 5}},
		{9, 9, []int{3, 3, 9}},
		{4, 7, []int{1, 1, 6}},
		{2, 8, []int{2, 2, 3}},
	}
	for _, tc := range cases {
		got, err := board.BoxCoordinate(tc.row, tc.col)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "(%d,%d)", tc.row, tc.col)
	}

	_, err := board.BoxCoordinate(0, 1)
	require.ErrorIs(t, err, board.ErrOutOfRange)
	_, err = board.BoxCoordinate(1, 10)
	require.ErrorIs(t, err, board.ErrOutOfRange)
}

// TestSudokuUnits reads a row, a column and a box of a solved grid.
func TestSudokuUnits(t *testing.T) {
	a := solved(t)

	row, err := board.Row(a, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, digits(t, row))

	col, err := board.Column(a, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 7, 2, 5, 8, 3, 6, 9}, digits(t, col))

	box, err := board.Box(a, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, digits(t, box))

	_, err = board.Box(a, 10)
	require.ErrorIs(t, err, board.ErrOutOfRange)
	_, err = board.Row(a, 0)
	require.ErrorIs(t, err, board.ErrOutOfRange)
}

// TestValidSudoku covers solved, partial, duplicate and bad-digit grids.
func TestValidSudoku(t *testing.T) {
	require.NoError(t, board.ValidSudoku(solved(t)))

	partial, err := board.NewSudoku()
	require.NoError(t, err)
	require.NoError(t, board.ValidSudoku(partial))
	require.True(t, board.SetSudoku(partial, 1, 1, 5))
	require.True(t, board.SetSudoku(partial, 9, 9, 5))
	require.NoError(t, board.ValidSudoku(partial))

	require.True(t, board.SetSudoku(partial, 1, 9, 5)) // same row as (1,1)
	err = board.ValidSudoku(partial)
	require.ErrorIs(t, err, board.ErrDuplicate)
	require.Contains(t, err.Error(), "row 1")

	boxDup, err := board.NewSudoku()
	require.NoError(t, err)
	require.True(t, board.SetSudoku(boxDup, 1, 1, 3))
	require.True(t, board.SetSudoku(boxDup, 2, 2, 3))
	err = board.ValidSudoku(boxDup)
	require.ErrorIs(t, err, board.ErrDuplicate)
	require.Contains(t, err.Error(), "box 1")

	bad := solved(t)
	require.True(t, board.SetSudoku(bad, 5, 5, 0))
	require.ErrorIs(t, board.ValidSudoku(bad), board.ErrBadDigit)
}

// TestSudokuShape rejects grids of the wrong shape.
func TestSudokuShape(t *testing.T) {
	a, err := stride.New[int]([]int{9, 9})
	require.NoError(t, err)
	require.ErrorIs(t, board.ValidSudoku(a), board.ErrNotSudoku)
	_, err = board.Box(a, 1)
	require.ErrorIs(t, err, board.ErrNotSudoku)
}

// TestSetSudokuBounds reports off-board writes.
func TestSetSudokuBounds(t *testing.T) {
	a, err := board.NewSudoku()
	require.NoError(t, err)
	require.False(t, board.SetSudoku(a, 10, 1, 1))
	require.Len(t, a.FindAllEmpty(), 81)
}
