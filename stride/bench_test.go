package stride_test

import (
	"testing"

	"github.com/katalvlaran/stride/stride"
)

// BenchmarkGet measures coordinate translation plus a read on an 8×8 board.
func BenchmarkGet(b *testing.B) {
	a, _ := stride.NewNumbered[int]([]int{8, 8})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Get(i%8+1, (i/8)%8+1)
	}
}

// BenchmarkSliceBox measures a wildcard slice over a 3×3×9 grid.
func BenchmarkSliceBox(b *testing.B) {
	a, _ := stride.NewNumbered[int]([]int{3, 3, 9})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Slice(stride.Wildcard, stride.Wildcard, i%9+1)
	}
}

// BenchmarkTraceDiagonal measures a main-diagonal walk on a 64×64 grid.
func BenchmarkTraceDiagonal(b *testing.B) {
	a, _ := stride.NewNumbered[int]([]int{64, 64})
	start, dir := []int{1, 1}, []int{1, 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.TraceDirection(start, dir)
	}
}

// BenchmarkExtendAxis measures growing the first axis of a 32×32×8 array.
func BenchmarkExtendAxis(b *testing.B) {
	base, _ := stride.NewNumbered[int]([]int{32, 32, 8})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := base.Clone()
		_ = a.ExtendAxis(1, 1, false)
	}
}
