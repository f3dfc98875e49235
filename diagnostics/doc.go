// Package diagnostics ranks the terms of an additive model by how much
// each term's contribution varies across a dataset.
//
// For every distinct term (structural identity of its attribute tuple)
// the per-instance contributions of all regressors attached to that
// term are summed into one vector, and the term's importance weight is
// a dispersion statistic over that vector: population variance (L2,
// the default) or mean absolute deviation (L1). A term whose
// contribution is the same for every instance carries zero weight no
// matter how large the contribution is — dispersion, not magnitude,
// approximates marginal influence on the model output.
//
// Contribution vectors of distinct terms are independent, so Diagnose
// computes them in parallel with a CPU-bounded worker group; results
// land in write-disjoint slots and need no locking.
//
// Diagnose never mutates the model or the instances. Output order is
// the model's first-seen term order; use SortByWeight for ranking.
package diagnostics
