// Package stepdiag is the umbrella for additive step-function models
// and their term-importance diagnostics.
//
// The module is organized as small focused packages:
//
//	stepfn/      — piecewise-constant 1D functions: evaluation, scalar
//	               arithmetic, merge-addition, text codec
//	gam/         — the additive-model container (terms, regressors,
//	               intercept) and its model file format
//	dataset/     — dense numeric instance rows with missing values
//	diagnostics/ — per-term contribution dispersion (variance / MAD)
//	               and ranking
//	numutil/     — shared numeric primitives (epsilon tests, dispersion
//	               statistics)
//	config/      — CLI settings file
//	logging/     — slog handler for CLI output
//	cmd/stepdiag — the diagnose/inspect command-line tool
//
// Start with stepfn for the function representation and diagnostics
// for the importance computation; the cmd/stepdiag binary wires them
// to files on disk.
package stepdiag
