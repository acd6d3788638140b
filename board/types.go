// Package board defines core types and sentinel errors for game-board
// helpers built on stride arrays.
package board

import (
	"errors"

	"github.com/katalvlaran/stride/stride"
)

// Sentinel errors for board operations.
var (
	// ErrNotBoard indicates an array whose rank does not fit the operation.
	ErrNotBoard = errors.New("board: unsupported array rank")
	// ErrNotSquare indicates a 2D array whose axes differ in size.
	ErrNotSquare = errors.New("board: board must be square")
	// ErrBadRunLength indicates a run length below 1.
	ErrBadRunLength = errors.New("board: run length must be >= 1")
	// ErrNotSudoku indicates an array that is not shaped 3×3×9.
	ErrNotSudoku = errors.New("board: sudoku grid must be shaped 3x3x9")
	// ErrOutOfRange indicates a sudoku row, column or box number outside 1..9.
	ErrOutOfRange = errors.New("board: position out of range")
	// ErrBadDigit indicates a sudoku cell holding a value outside 1..9.
	ErrBadDigit = errors.New("board: sudoku digit out of range")
	// ErrDuplicate indicates a digit repeated within a sudoku row, column or box.
	ErrDuplicate = errors.New("board: duplicate digit")
)

// Connectivity selects neighbour connectivity.
//
// The names follow the 2D case. On arrays of any rank Conn4 means the
// axis-aligned neighbours (±1 on exactly one axis) and Conn8 adds every
// diagonal (each axis moves by -1, 0 or +1, not all 0).
type Connectivity int

const (
	// Conn4 uses axis-aligned connectivity: N, E, S, W in 2D.
	Conn4 Connectivity = iota
	// Conn8 adds diagonals: N, NE, E, SE, S, SW, W, NW in 2D.
	Conn8
)

// Line is a sequence of cells read along one direction.
type Line[T comparable] struct {
	Start     []int // 1-based coordinate of the first cell
	Direction []int // per-axis step between cells
	Slots     []stride.Slot[T]
}

// Uniform reports the shared value when every cell of the line holds the same
// present value. Empty lines and lines with empty cells are not uniform.
func (l Line[T]) Uniform() (T, bool) {
	var zero T
	if len(l.Slots) == 0 {
		return zero, false
	}
	first, ok := l.Slots[0].Value()
	if !ok {
		return zero, false
	}
	for _, s := range l.Slots[1:] {
		if !s.Is(first) {
			return zero, false
		}
	}

	return first, true
}
