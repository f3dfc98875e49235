package gam

import (
	"github.com/gamlab/stepdiag/stepfn"
)

// Model is an additive model: intercept + sum of regressor outputs.
// terms and regressors stay index-aligned at all times; the only way to
// grow them is Add.
type Model struct {
	intercept  float64
	terms      []Term
	regressors []Regressor
}

// NewModel returns an empty model with the given intercept.
func NewModel(intercept float64) *Model {
	return &Model{intercept: intercept}
}

// Intercept returns the model's constant offset.
func (m *Model) Intercept() float64 { return m.intercept }

// SetIntercept replaces the constant offset.
func (m *Model) SetIntercept(v float64) { m.intercept = v }

// Add appends a (term, regressor) pair. The term is copied to keep the
// model's tuples independent of the caller.
func (m *Model) Add(term Term, reg Regressor) {
	m.terms = append(m.terms, term.Copy())
	m.regressors = append(m.regressors, reg)
}

// Len returns the number of (term, regressor) pairs.
func (m *Model) Len() int { return len(m.terms) }

// Terms returns the model's terms in insertion order. The slice is
// fresh but the tuples are the model's own; treat them as read-only.
func (m *Model) Terms() []Term {
	return append([]Term(nil), m.terms...)
}

// Regressors returns the regressors, index-aligned with Terms.
func (m *Model) Regressors() []Regressor {
	return append([]Regressor(nil), m.regressors...)
}

// Predict returns the model output for one instance: intercept plus
// every regressor's contribution.
func (m *Model) Predict(inst stepfn.Instance) float64 {
	sum := m.intercept
	for _, r := range m.regressors {
		sum += r.Regress(inst)
	}
	return sum
}
