package diagnostics

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/gamlab/stepdiag/dataset"
	"github.com/gamlab/stepdiag/gam"
	"github.com/gamlab/stepdiag/numutil"
)

// group collects the regressors attached to one distinct term, in
// model order.
type group struct {
	term gam.Term
	regs []gam.Regressor
}

// Diagnose computes one importance weight per distinct term of m over
// the given instances.
//
// An instance missing the relevant attribute contributes through the
// regressor's missing-value prediction; that is never an error. An
// empty instance set yields weight 0 for every term. The mode is
// validated first; an out-of-range Mode value returns ErrUnknownMode.
//
// The result preserves the model's first-seen term order. Complexity is
// O(pairs + distinctTerms * instances * log segments), parallel across
// distinct terms.
func Diagnose(m *gam.Model, insts dataset.Instances, mode Mode) ([]TermWeight, error) {
	if mode != Variance && mode != MeanAbsDev {
		return nil, ErrUnknownMode
	}

	terms := m.Terms()
	regs := m.Regressors()

	var order []string
	groups := make(map[string]*group, len(terms))
	for i, t := range terms {
		k := t.Key()
		g, ok := groups[k]
		if !ok {
			g = &group{term: t}
			groups[k] = g
			order = append(order, k)
		}
		g.regs = append(g.regs, regs[i])
	}

	out := make([]TermWeight, len(order))
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for slot, key := range order {
		slot := slot
		g := groups[key]
		eg.Go(func() error {
			contrib := make([]float64, len(insts))
			for i, inst := range insts {
				var sum float64
				for _, r := range g.regs {
					sum += r.Regress(inst)
				}
				contrib[i] = sum
			}

			var w float64
			if mode == MeanAbsDev {
				w = numutil.MeanAbsDev(contrib)
			} else {
				w = numutil.Variance(contrib)
			}
			out[slot] = TermWeight{Term: g.term, Weight: w}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// SortByWeight orders the list by weight descending, stably: equal
// weights keep their Diagnose emission order.
func SortByWeight(list []TermWeight) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Weight > list[j].Weight
	})
}
