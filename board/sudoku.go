package board

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/stride/stride"
)

// Sudoku grids are stored as nine 3×3 boxes: shape 3×3×9, coordinate
// (x, y, box) with x, y ∈ 1..3 inside the box and box ∈ 1..9 numbered left to
// right, top to bottom. Box k is the slice (Wildcard, Wildcard, k).
var sudokuDims = []int{3, 3, 9}

// NewSudoku allocates an empty 3×3×9 grid.
func NewSudoku(opts ...stride.Option) (*stride.Array[int], error) {
	return stride.New[int](sudokuDims, opts...)
}

// BoxCoordinate maps a 1-based (row, col) on the 9×9 board to (x, y, box).
func BoxCoordinate(row, col int) ([]int, error) {
	if row < 1 || row > 9 || col < 1 || col > 9 {
		return nil, fmt.Errorf("BoxCoordinate(%d,%d): %w", row, col, ErrOutOfRange)
	}
	r, c := row-1, col-1

	return []int{c%3 + 1, r%3 + 1, (r/3)*3 + c/3 + 1}, nil
}

func checkSudoku[T comparable](a *stride.Array[T]) error {
	if !slices.Equal(a.Dimensions(), sudokuDims) {
		return fmt.Errorf("dims %v: %w", a.Dimensions(), ErrNotSudoku)
	}

	return nil
}

// Box returns the nine cells of box k in (x, y) reading order.
func Box[T comparable](a *stride.Array[T], k int) ([]stride.Slot[T], error) {
	if err := checkSudoku(a); err != nil {
		return nil, err
	}
	if k < 1 || k > 9 {
		return nil, fmt.Errorf("Box(%d): %w", k, ErrOutOfRange)
	}

	return a.SliceSlots(stride.Wildcard, stride.Wildcard, k)
}

// Row returns the nine cells of board row r, left to right.
func Row[T comparable](a *stride.Array[T], r int) ([]stride.Slot[T], error) {
	return sudokuLine(a, r, func(i int) (int, int) { return r, i })
}

// Column returns the nine cells of board column c, top to bottom.
func Column[T comparable](a *stride.Array[T], c int) ([]stride.Slot[T], error) {
	return sudokuLine(a, c, func(i int) (int, int) { return i, c })
}

func sudokuLine[T comparable](a *stride.Array[T], n int, at func(i int) (row, col int)) ([]stride.Slot[T], error) {
	if err := checkSudoku(a); err != nil {
		return nil, err
	}
	if n < 1 || n > 9 {
		return nil, fmt.Errorf("line %d: %w", n, ErrOutOfRange)
	}
	out := make([]stride.Slot[T], 9)
	for i := 1; i <= 9; i++ {
		coord, _ := BoxCoordinate(at(i))
		out[i-1] = a.At(coord...)
	}

	return out, nil
}

// ValidSudoku checks a (possibly partial) grid: every present digit is in
// 1..9 and no digit repeats within a row, column or box. Empty cells are
// allowed.
// Errors: ErrNotSudoku, ErrBadDigit, ErrDuplicate (wrapped with the unit).
func ValidSudoku(a *stride.Array[int]) error {
	if err := checkSudoku(a); err != nil {
		return err
	}
	units := []struct {
		name string
		read func(*stride.Array[int], int) ([]stride.Slot[int], error)
	}{
		{"row", Row[int]},
		{"column", Column[int]},
		{"box", Box[int]},
	}
	for _, u := range units {
		for n := 1; n <= 9; n++ {
			cells, err := u.read(a, n)
			if err != nil {
				return err
			}
			var seen [10]bool
			for _, s := range cells {
				d, ok := s.Value()
				if !ok {
					continue
				}
				if d < 1 || d > 9 {
					return fmt.Errorf("%s %d: %d: %w", u.name, n, d, ErrBadDigit)
				}
				if seen[d] {
					return fmt.Errorf("%s %d: %d: %w", u.name, n, d, ErrDuplicate)
				}
				seen[d] = true
			}
		}
	}

	return nil
}

// SetSudoku writes digit d at board position (row, col).
// It reports false when the position is off the board.
func SetSudoku(a *stride.Array[int], row, col, d int) bool {
	coord, err := BoxCoordinate(row, col)
	if err != nil {
		return false
	}

	return a.Set(d, coord...)
}
