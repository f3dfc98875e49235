package diagnostics

import (
	"errors"
	"fmt"

	"github.com/gamlab/stepdiag/gam"
)

// ErrUnknownMode indicates an unrecognized importance mode name.
var ErrUnknownMode = errors.New("diagnostics: unknown mode")

// Mode selects the dispersion statistic used as a term's importance
// weight.
type Mode int

const (
	// Variance weighs a term by the population variance of its
	// per-instance contributions (flag name "L2", the default).
	Variance Mode = iota

	// MeanAbsDev weighs a term by the mean absolute deviation of its
	// per-instance contributions around their mean (flag name "L1").
	MeanAbsDev
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case MeanAbsDev:
		return "L1"
	default:
		return "L2"
	}
}

// ParseMode maps a flag value to a Mode. The empty string selects the
// documented default, Variance; anything else unrecognized returns
// ErrUnknownMode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "L2":
		return Variance, nil
	case "L1":
		return MeanAbsDev, nil
	default:
		return 0, fmt.Errorf("%w: %q (want L1 or L2)", ErrUnknownMode, s)
	}
}

// TermWeight pairs a term with its importance weight.
type TermWeight struct {
	Term   gam.Term
	Weight float64
}
