// Package stepfn implements piecewise-constant univariate functions
// ("step functions") tied to a single input attribute.
//
// A StepFn is defined by a strictly increasing breakpoint array whose
// last element is always +Inf. Breakpoints [3, 5, +Inf] define three
// right-closed segments: (-Inf, 3], (3, 5], (5, +Inf). The prediction
// array holds one constant per segment, and a separate constant is
// returned for missing inputs (NaN).
//
// Key operations:
//   - Evaluate — O(log n) segment lookup via binary search
//   - Scale / Div / Offset / Sub — chained in-place scalar arithmetic
//   - MergeAdd — pointwise addition of two functions on the same
//     attribute, defined over the union of their breakpoints
//   - Read / Write — the line-oriented text representation
//
// Mutators return the receiver for chaining:
//
//	f.Scale(0.5).Offset(1.0)
//
// Breakpoint identity during MergeAdd is bit-exact: two breakpoints that
// differ in the last bit are distinct, producing an extra segment whose
// prediction equals its neighbor's. This matches the persisted-model
// semantics and is deliberate; a tolerance-based merge would change
// results for models built with one.
//
// StepFn is not safe for concurrent mutation; clone with Copy before
// sharing across goroutines.
package stepfn
