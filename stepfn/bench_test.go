package stepfn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gamlab/stepdiag/stepfn"
)

// randomFn builds a function with n random increasing breakpoints.
func randomFn(rng *rand.Rand, att, n int) *stepfn.StepFn {
	splits := make([]float64, n+1)
	preds := make([]float64, n+1)
	x := 0.0
	for i := 0; i < n; i++ {
		x += rng.Float64() + 1e-6
		splits[i] = x
		preds[i] = rng.NormFloat64()
	}
	splits[n] = math.Inf(1)
	preds[n] = rng.NormFloat64()
	f, err := stepfn.New(att, splits, preds, 0)
	if err != nil {
		panic(err)
	}
	return f
}

func BenchmarkEvaluate_1e3Segments(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	f := randomFn(rng, 0, 1000)
	xs := make([]float64, 1024)
	for i := range xs {
		xs[i] = rng.Float64() * 1000
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Evaluate(xs[i%len(xs)])
	}
}

func BenchmarkMergeAdd_Disjoint(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	f := randomFn(rng, 0, 512)
	g := randomFn(rng, 0, 512)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		fc := f.Copy()
		b.StartTimer()
		if _, err := fc.MergeAdd(g); err != nil {
			b.Fatal(err)
		}
	}
}
