package dataset_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamlab/stepdiag/dataset"
)

// TestRead_DenseRows parses a small dataset with comments, blanks and
// missing markers.
func TestRead_DenseRows(t *testing.T) {
	in := "# header comment\n" +
		"1.5 2 3\n" +
		"\n" +
		"? -4 5e-1\n"

	ins, err := dataset.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, ins.Len())

	assert.Equal(t, dataset.Instance{1.5, 2, 3}, ins[0])
	assert.True(t, math.IsNaN(ins[1][0]), "missing marker parses to NaN")
	assert.Equal(t, -4.0, ins[1][1])
	assert.Equal(t, 0.5, ins[1][2])
}

// TestInstance_ValueAt covers in-range, missing and out-of-range
// lookups.
func TestInstance_ValueAt(t *testing.T) {
	row := dataset.Instance{7, math.NaN()}

	assert.Equal(t, 7.0, row.ValueAt(0))
	assert.True(t, math.IsNaN(row.ValueAt(1)), "stored NaN stays missing")
	assert.True(t, math.IsNaN(row.ValueAt(2)), "past the row is missing")
	assert.True(t, math.IsNaN(row.ValueAt(-1)), "negative index is missing")
}

// TestRead_BadToken surfaces ErrBadValue with position context.
func TestRead_BadToken(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("1 x 3\n"))
	assert.ErrorIs(t, err, dataset.ErrBadValue)
	assert.Contains(t, err.Error(), "line 1")
}

// TestReadFile_RoundTrip exercises the file path entry point.
func TestReadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n3 4\n"), 0o600))

	ins, err := dataset.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ins.Len())

	_, err = dataset.ReadFile(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
