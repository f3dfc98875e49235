// Package stepfn: core type and accessor surface.
package stepfn

// Instance exposes one data row to a function. ValueAt returns NaN for
// a missing value; any attribute index the row does not cover is
// treated as missing.
type Instance interface {
	ValueAt(attr int) float64
}

// StepFn is a piecewise-constant function of one real input.
//
// Invariants (established at construction, preserved by every method):
//   - len(splits) == len(preds) >= 1
//   - splits strictly increasing
//   - splits[len(splits)-1] == +Inf
type StepFn struct {
	attIndex  int
	splits    []float64
	preds     []float64
	onMissing float64
}

// AttrIndex returns the input dimension this function is defined over.
func (f *StepFn) AttrIndex() int { return f.attIndex }

// SetAttrIndex rebinds the function to another input dimension.
func (f *StepFn) SetAttrIndex(attIndex int) { f.attIndex = attIndex }

// Splits returns a copy of the breakpoint array. The copy keeps the
// sorted-breakpoint invariant out of callers' reach.
func (f *StepFn) Splits() []float64 {
	return append([]float64(nil), f.splits...)
}

// Predictions returns a copy of the per-segment prediction array.
func (f *StepFn) Predictions() []float64 {
	return append([]float64(nil), f.preds...)
}

// OnMissing returns the prediction for a missing (NaN) input.
func (f *StepFn) OnMissing() float64 { return f.onMissing }

// SetOnMissing replaces the prediction for a missing input.
func (f *StepFn) SetOnMissing(v float64) { f.onMissing = v }

// Len returns the number of segments.
func (f *StepFn) Len() int { return len(f.splits) }
