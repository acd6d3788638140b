// Package stride is the module root for flat-buffer N-dimensional arrays.
//
// The module is organised as:
//
//	stride/    Array[T] with 1-based coordinates over one contiguous slot
//	           buffer, slicing with Wildcard axes, direction tracing, axis
//	           growth and persistence records (JSON / YAML)
//	board/     game-board helpers built on stride: lines, k-in-a-row runs,
//	           neighbourhoods, connected regions and the 3×3×9 sudoku layout
//	examples/  a runnable tour of both packages
//
// Quick example (numbered 3×3, first axis fastest):
//
//	a, _ := stride.NewNumbered[int]([]int{3, 3})
//	a.TraceValues([]int{1, 1}, []int{1, 1}) // [1 5 9]
//	row, _ := a.Slice(stride.Wildcard, 2)   // [4 5 6]
package stride
