package stepfn

import (
	"fmt"
	"math"
	"sort"

	"github.com/gamlab/stepdiag/numutil"
)

// New builds a StepFn from a breakpoint/prediction pair, validating the
// invariants up front. Both slices are copied; the caller keeps
// ownership of its arguments.
//
// Returns ErrMalformedFunction when the arrays have different lengths,
// are empty, are not strictly increasing, or do not end in +Inf.
func New(attIndex int, splits, preds []float64, onMissing float64) (*StepFn, error) {
	if len(splits) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrMalformedFunction)
	}
	if len(splits) != len(preds) {
		return nil, fmt.Errorf("%w: %d splits vs %d predictions",
			ErrMalformedFunction, len(splits), len(preds))
	}
	if !math.IsInf(splits[len(splits)-1], 1) {
		return nil, fmt.Errorf("%w: last split must be +Inf, got %v",
			ErrMalformedFunction, splits[len(splits)-1])
	}
	for i := 1; i < len(splits); i++ {
		if !(splits[i-1] < splits[i]) {
			return nil, fmt.Errorf("%w: splits not strictly increasing at index %d",
				ErrMalformedFunction, i)
		}
	}
	return &StepFn{
		attIndex:  attIndex,
		splits:    append([]float64(nil), splits...),
		preds:     append([]float64(nil), preds...),
		onMissing: onMissing,
	}, nil
}

// Constant returns the function that predicts the same value on every
// input, missing included: a single (-Inf, +Inf) segment.
func Constant(attIndex int, prediction float64) *StepFn {
	return &StepFn{
		attIndex:  attIndex,
		splits:    []float64{math.Inf(1)},
		preds:     []float64{prediction},
		onMissing: prediction,
	}
}

// Zero returns the constant-zero function on the given attribute.
func Zero(attIndex int) *StepFn {
	return Constant(attIndex, 0)
}

// SetZero resets the function in place to the constant-zero function,
// collapsing it to a single infinite segment.
func (f *StepFn) SetZero() {
	f.splits = []float64{math.Inf(1)}
	f.preds = []float64{0}
	f.onMissing = 0
}

// Evaluate returns the function value at x. A NaN input routes to the
// missing-value prediction; every other input hits exactly one segment
// since the breakpoint array ends in +Inf. O(log n).
func (f *StepFn) Evaluate(x float64) float64 {
	if math.IsNaN(x) {
		return f.onMissing
	}
	return f.preds[f.segmentIndex(x)]
}

// Regress evaluates the function on the instance's value for this
// function's attribute.
func (f *StepFn) Regress(inst Instance) float64 {
	return f.Evaluate(inst.ValueAt(f.attIndex))
}

// segmentIndex returns the smallest i with x <= splits[i].
// Callers guarantee x is not NaN.
func (f *StepFn) segmentIndex(x float64) int {
	return sort.SearchFloat64s(f.splits, x)
}

// hasSplit reports whether v occurs in the breakpoint array, compared
// bit-exact.
func (f *StepFn) hasSplit(v float64) bool {
	i := sort.SearchFloat64s(f.splits, v)
	return i < len(f.splits) && f.splits[i] == v
}

// Scale multiplies every prediction and the missing-value prediction by
// c; returns the receiver for chaining.
func (f *StepFn) Scale(c float64) *StepFn {
	for i := range f.preds {
		f.preds[i] *= c
	}
	f.onMissing *= c
	return f
}

// Div divides every prediction and the missing-value prediction by c;
// returns the receiver. Division by zero follows IEEE semantics
// (±Inf / NaN) and is not an error; callers needing finite output must
// check for themselves.
func (f *StepFn) Div(c float64) *StepFn {
	for i := range f.preds {
		f.preds[i] /= c
	}
	f.onMissing /= c
	return f
}

// Offset adds c to every prediction and the missing-value prediction;
// returns the receiver.
func (f *StepFn) Offset(c float64) *StepFn {
	for i := range f.preds {
		f.preds[i] += c
	}
	f.onMissing += c
	return f
}

// Sub subtracts c from every prediction and the missing-value
// prediction; returns the receiver.
func (f *StepFn) Sub(c float64) *StepFn {
	return f.Offset(-c)
}

// MergeAdd adds other into f pointwise: after the call,
// f(x) == old f(x) + other(x) for every x, over the union of both
// breakpoint sets. Both functions must be defined over the same
// attribute; otherwise ErrIncompatibleTerm is returned and f is
// untouched.
//
// Breakpoints of other absent from f (bit-exact comparison) are
// inserted; the merged prediction at every breakpoint is computed from
// the pre-merge arrays, and the new arrays are installed only once
// fully built. When other introduces no new breakpoints the update is
// done in place. The missing-value predictions are always summed.
//
// Returns the receiver for chaining.
func (f *StepFn) MergeAdd(other *StepFn) (*StepFn, error) {
	if f.attIndex != other.attIndex {
		return nil, fmt.Errorf("%w: attribute %d vs %d",
			ErrIncompatibleTerm, f.attIndex, other.attIndex)
	}

	// The terminal +Inf is present in both by invariant; only interior
	// breakpoints can be new.
	var fresh []float64
	for _, s := range other.splits[:len(other.splits)-1] {
		if !f.hasSplit(s) {
			fresh = append(fresh, s)
		}
	}

	if len(fresh) > 0 {
		merged := make([]float64, 0, len(f.splits)+len(fresh))
		merged = append(merged, f.splits...)
		merged = append(merged, fresh...)
		sort.Float64s(merged)

		preds := make([]float64, len(merged))
		for i, s := range merged {
			preds[i] = f.Evaluate(s) + other.Evaluate(s)
		}
		f.splits = merged
		f.preds = preds
	} else {
		for i, s := range f.splits {
			f.preds[i] += other.Evaluate(s)
		}
	}
	f.onMissing += other.onMissing
	return f, nil
}

// IsZero reports whether the function is identically zero: every
// prediction exactly 0 and the missing-value prediction zero within
// numutil.Eps.
func (f *StepFn) IsZero() bool {
	return numutil.IsConstantSlice(f.preds, 0, 0) && numutil.IsZero(f.onMissing)
}

// IsConstant reports whether the function predicts the same value
// everywhere: every prediction exactly equal to the first, and the
// missing-value prediction equal to it within numutil.Eps.
func (f *StepFn) IsConstant() bool {
	return numutil.IsConstantSlice(f.preds, 1, f.preds[0]) &&
		numutil.IsZero(f.onMissing-f.preds[0])
}

// Copy returns a deep copy sharing no storage with the receiver.
func (f *StepFn) Copy() *StepFn {
	return &StepFn{
		attIndex:  f.attIndex,
		splits:    append([]float64(nil), f.splits...),
		preds:     append([]float64(nil), f.preds...),
		onMissing: f.onMissing,
	}
}
