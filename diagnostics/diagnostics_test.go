package diagnostics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamlab/stepdiag/dataset"
	"github.com/gamlab/stepdiag/diagnostics"
	"github.com/gamlab/stepdiag/gam"
	"github.com/gamlab/stepdiag/stepfn"
)

var inf = math.Inf(1)

// threeRows yields contributions [1, 2, 3] for the varying term below.
var threeRows = dataset.Instances{
	{1, 10},
	{2, 10},
	{3, 10},
}

// buildModel pairs a constant term [1] with a varying term [0] whose
// function is the identity step on 1/2/3.
func buildModel(t *testing.T) *gam.Model {
	t.Helper()
	varying, err := stepfn.New(0, []float64{1, 2, inf}, []float64{1, 2, 3}, 0)
	require.NoError(t, err)

	m := gam.NewModel(0)
	m.Add(gam.Term{0}, varying)
	m.Add(gam.Term{1}, stepfn.Constant(1, 10))
	return m
}

// TestDiagnose_ConstantTermHasZeroWeight checks both modes: the
// constant term weighs 0, the varying term matches hand-computed
// variance and MAD of [1, 2, 3].
func TestDiagnose_ConstantTermHasZeroWeight(t *testing.T) {
	m := buildModel(t)

	for _, mode := range []diagnostics.Mode{diagnostics.Variance, diagnostics.MeanAbsDev} {
		got, err := diagnostics.Diagnose(m, threeRows, mode)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, gam.Term{0}, got[0].Term)
		assert.InDelta(t, 2.0/3.0, got[0].Weight, 1e-12, "mode %s", mode)

		assert.Equal(t, gam.Term{1}, got[1].Term)
		assert.Equal(t, 0.0, got[1].Weight, "constant term carries no importance")
		assert.Greater(t, got[0].Weight, got[1].Weight)
	}
}

// TestDiagnose_RecurringTermSumsRounds verifies regressors sharing a
// term (distinct slices, equal contents) are grouped structurally and
// their contributions summed per instance.
func TestDiagnose_RecurringTermSumsRounds(t *testing.T) {
	round1, err := stepfn.New(0, []float64{1, 2, inf}, []float64{1, 2, 3}, 0)
	require.NoError(t, err)
	round2, err := stepfn.New(0, []float64{2, inf}, []float64{0, 3}, 0)
	require.NoError(t, err)

	m := gam.NewModel(0)
	m.Add(gam.Term{0}, round1)
	m.Add(gam.Term{0}, round2) // same term, different slice

	got, err := diagnostics.Diagnose(m, threeRows, diagnostics.Variance)
	require.NoError(t, err)
	require.Len(t, got, 1, "two rounds of one term form a single group")

	// summed contributions: [1+0, 2+0, 3+3] = [1, 2, 6]; mean 3;
	// population variance (4+1+9)/3
	assert.InDelta(t, 14.0/3.0, got[0].Weight, 1e-12)
}

// TestDiagnose_MissingValuesRouteToMV confirms a row without the
// relevant attribute is not an error.
func TestDiagnose_MissingValuesRouteToMV(t *testing.T) {
	f, err := stepfn.New(0, []float64{0, inf}, []float64{-1, 1}, 5)
	require.NoError(t, err)
	m := gam.NewModel(0)
	m.Add(gam.Term{0}, f)

	rows := dataset.Instances{{-1}, {1}, {math.NaN()}}
	got, err := diagnostics.Diagnose(m, rows, diagnostics.Variance)
	require.NoError(t, err)

	// contributions [-1, 1, 5]; mean 5/3; popvar = ((8/3)^2+(2/3)^2+(10/3)^2)/3
	assert.InDelta(t, (64.0+4.0+100.0)/27.0, got[0].Weight, 1e-12)
}

// TestDiagnose_EmptyInstances yields deterministic zero weights.
func TestDiagnose_EmptyInstances(t *testing.T) {
	m := buildModel(t)

	got, err := diagnostics.Diagnose(m, nil, diagnostics.MeanAbsDev)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, tw := range got {
		assert.Equal(t, 0.0, tw.Weight)
	}
}

// TestDiagnose_BadMode rejects out-of-range mode values.
func TestDiagnose_BadMode(t *testing.T) {
	_, err := diagnostics.Diagnose(buildModel(t), threeRows, diagnostics.Mode(42))
	assert.ErrorIs(t, err, diagnostics.ErrUnknownMode)
}

// TestParseMode covers flag spellings, the default, and rejection.
func TestParseMode(t *testing.T) {
	mode, err := diagnostics.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, diagnostics.Variance, mode, "absent flag defaults to L2")

	mode, err = diagnostics.ParseMode("L1")
	require.NoError(t, err)
	assert.Equal(t, diagnostics.MeanAbsDev, mode)

	mode, err = diagnostics.ParseMode("L2")
	require.NoError(t, err)
	assert.Equal(t, diagnostics.Variance, mode)

	_, err = diagnostics.ParseMode("L3")
	assert.ErrorIs(t, err, diagnostics.ErrUnknownMode)
}

// TestSortByWeight_DescendingStable checks ordering and tie stability.
func TestSortByWeight_DescendingStable(t *testing.T) {
	list := []diagnostics.TermWeight{
		{Term: gam.Term{0}, Weight: 1},
		{Term: gam.Term{1}, Weight: 3},
		{Term: gam.Term{2}, Weight: 1},
	}
	diagnostics.SortByWeight(list)

	assert.Equal(t, gam.Term{1}, list[0].Term)
	assert.Equal(t, gam.Term{0}, list[1].Term, "ties keep original order")
	assert.Equal(t, gam.Term{2}, list[2].Term)
}

// TestDiagnose_ManyTerms exercises the parallel path with more distinct
// terms than CPUs and checks slot placement stays aligned.
func TestDiagnose_ManyTerms(t *testing.T) {
	const n = 64
	m := gam.NewModel(0)
	rows := make(dataset.Instances, 8)
	for i := range rows {
		rows[i] = dataset.Instance{float64(i)}
	}
	for a := 0; a < n; a++ {
		f, err := stepfn.New(0, []float64{3.5, inf}, []float64{0, float64(a)}, 0)
		require.NoError(t, err)
		m.Add(gam.Term{a}, f)
	}

	got, err := diagnostics.Diagnose(m, rows, diagnostics.Variance)
	require.NoError(t, err)
	require.Len(t, got, n)
	for a := 0; a < n; a++ {
		assert.Equal(t, gam.Term{a}, got[a].Term, "first-seen order preserved")
		// contributions: 0 for rows 0..3, a for rows 4..7 -> popvar a^2/4
		assert.InDelta(t, float64(a*a)/4.0, got[a].Weight, 1e-9)
	}
}
