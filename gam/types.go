package gam

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gamlab/stepdiag/stepfn"
)

var (
	// ErrBadModel indicates a framing violation while parsing the model
	// text format.
	ErrBadModel = errors.New("gam: bad model format")

	// ErrUnsupportedRegressor indicates an attempt to persist a
	// regressor kind the codec does not know.
	ErrUnsupportedRegressor = errors.New("gam: unsupported regressor kind")
)

// Term is an ordered tuple of attribute indices identifying which input
// dimensions a group of regressors jointly depend on.
type Term []int

// Key returns a deterministic structural key: two terms with equal
// indices in equal order share a key regardless of slice identity.
func (t Term) Key() string {
	var b strings.Builder
	for i, a := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(a))
	}
	return b.String()
}

// Equal reports structural equality.
func (t Term) Equal(o Term) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders the term as a bracketed tuple, e.g. "[1, 2]". This is
// also the spelling used in model files and diagnostic output.
func (t Term) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, a := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(a))
	}
	b.WriteByte(']')
	return b.String()
}

// Copy returns an independent term.
func (t Term) Copy() Term {
	return append(Term(nil), t...)
}

// Regressor is a scoreable model component: given an instance it
// returns this component's contribution to the model's total
// prediction. *stepfn.StepFn satisfies it.
type Regressor interface {
	Regress(inst stepfn.Instance) float64
}
