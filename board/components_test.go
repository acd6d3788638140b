package board_test

import (
	"testing"

	"github.com/katalvlaran/stride/board"
	"github.com/katalvlaran/stride/stride"
	"github.com/stretchr/testify/require"
)

func isLand(s stride.Slot[rune]) bool { return s.Is('#') }

// TestNeighborsCorner checks offsets at a corner for both connectivities.
func TestNeighborsCorner(t *testing.T) {
	a, err := stride.New[rune]([]int{3, 3})
	require.NoError(t, err)

	require.Equal(t, [][]int{{2, 1}, {1, 2}}, board.Neighbors(a, board.Conn4, 1, 1))
	require.Equal(t, [][]int{{1, 2}, {2, 1}, {2, 2}}, board.Neighbors(a, board.Conn8, 1, 1))
	require.Len(t, board.Neighbors(a, board.Conn4, 2, 2), 4)
	require.Len(t, board.Neighbors(a, board.Conn8, 2, 2), 8)
	require.Nil(t, board.Neighbors(a, board.Conn4, 0, 0))
}

// TestNeighborsRank3 checks neighbour counts in the centre of a cube.
func TestNeighborsRank3(t *testing.T) {
	a, err := stride.New[int]([]int{3, 3, 3})
	require.NoError(t, err)
	require.Len(t, board.Neighbors(a, board.Conn4, 2, 2, 2), 6)
	require.Len(t, board.Neighbors(a, board.Conn8, 2, 2, 2), 26)
}

// TestComponentsConn4 separates diagonal-only contacts.
func TestComponentsConn4(t *testing.T) {
	a := parseBoard(t,
		"##..",
		"#..#",
		"..##",
		"#...",
	)
	comps := board.Components(a, board.Conn4, isLand)
	require.Len(t, comps, 3)
	require.Equal(t, []int{0, 1, 4}, comps[0])   // top-left L
	require.Equal(t, []int{7, 11, 10}, comps[1]) // right hook, BFS order
	require.Equal(t, []int{12}, comps[2])        // lone cell
}

// TestComponentsConn8 joins regions that touch diagonally.
func TestComponentsConn8(t *testing.T) {
	a := parseBoard(t,
		"#...",
		".#..",
		"..#.",
		"...#",
	)
	require.Len(t, board.Components(a, board.Conn4, isLand), 4)

	comps := board.Components(a, board.Conn8, isLand)
	require.Len(t, comps, 1)
	require.Equal(t, []int{0, 5, 10, 15}, comps[0])
}

// TestComponentsEmptyCells groups unwritten cells.
func TestComponentsEmptyCells(t *testing.T) {
	a := parseBoard(t,
		"x.x",
		"xxx",
		"x.x",
	)
	comps := board.Components(a, board.Conn4, stride.Slot[rune].IsEmpty)
	require.Equal(t, [][]int{{1}, {7}}, comps)
}
