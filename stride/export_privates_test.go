// SPDX-License-Identifier: MIT

package stride

// Test-Bridge (white-box) for the axis-extension planner and numbering.
//
// Purpose:
//   - Expose planExtension and its derived insertion points to stride_test only,
//     so property tests can check the arithmetic without widening the API.
//   - Expose the label exactness check, whose float limits need ~2^24 slots
//     to reach through NewNumbered.

// ExtensionPlan is a read-only snapshot of an extension plan.
type ExtensionPlan struct {
	Start, Reps, Block, Step, Slab int
	Points                         []int
}

// PlanExtensionTestOnly runs planExtension for the 1-based axis of a.
func PlanExtensionTestOnly[T comparable](a *Array[T], axis, amount int, before bool) ExtensionPlan {
	p := planExtension(a.dims, a.strides, len(a.data), axis-1, amount, before)

	return ExtensionPlan{
		Start:  p.start,
		Reps:   p.reps,
		Block:  p.block,
		Step:   p.step,
		Slab:   p.slab,
		Points: p.insertionPoints(),
	}
}

// ExportedStridesMatch exposes the stride recurrence check.
var ExportedStridesMatch = stridesMatch

// Label exactness for a few element types.
var (
	ExportedLabelsExactInt8    = labelsExact[int8]
	ExportedLabelsExactFloat32 = labelsExact[float32]
	ExportedLabelsExactFloat64 = labelsExact[float64]
)
