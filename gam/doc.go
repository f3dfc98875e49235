// Package gam holds the additive-model container consumed by the
// diagnostics: an ordered list of terms (attribute-index tuples) with an
// index-aligned list of regressors, plus an intercept.
//
// A term may repeat: a model fitted over several rounds associates one
// regressor per round with the same term, and consumers that need the
// per-term total sum the aligned regressors. Term equality is
// structural — same indices in the same order — never identity.
//
// The package also reads and writes the line-oriented model text
// format, with each regressor persisted as a stepfn block.
package gam
