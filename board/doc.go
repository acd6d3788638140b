// Package board provides game-board utilities on top of stride arrays:
//
//   - Lines: rows, columns and main diagonals of a square 2D board
//   - Runs / Winner: k equal cells in a row along any straight direction,
//     on boards of any rank (3×3 tic-tac-toe, 15×15 gomoku, 4×4×4 cubes)
//   - Neighbors / Components: Conn4 or Conn8 adjacency and connected regions
//   - Sudoku helpers for the 3×3×9 box layout
//
// Coordinates are 1-based and follow stride's axis order: on a 2D board the
// first axis is the column (x) and the second the row (y).
package board
