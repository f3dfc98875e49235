// Package dataset reads and exposes dense numeric instance rows.
//
// The text format is one instance per line: whitespace-separated float
// attribute values, with "?" marking a missing value. Blank lines and
// lines starting with '#' are skipped. An instance answers ValueAt with
// NaN for both missing markers and attribute indices beyond the row's
// width, so short rows degrade to missing values rather than errors.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// MissingMark is the token representing an absent value in the text
// format.
const MissingMark = "?"

// ErrBadValue indicates a token that is neither a float nor the missing
// marker.
var ErrBadValue = errors.New("dataset: bad attribute value")

// Instance is one data row. The zero-length instance answers every
// attribute as missing.
type Instance []float64

// ValueAt returns the value of the given attribute, or NaN when the
// attribute is missing or outside the row.
func (in Instance) ValueAt(attr int) float64 {
	if attr < 0 || attr >= len(in) {
		return math.NaN()
	}
	return in[attr]
}

// Instances is an ordered collection of rows.
type Instances []Instance

// Len returns the number of rows.
func (ins Instances) Len() int { return len(ins) }

// Read parses instances from r until EOF.
func Read(r io.Reader) (Instances, error) {
	var out Instances
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make(Instance, len(fields))
		for i, tok := range fields {
			if tok == MissingMark {
				row[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %d: %q",
					ErrBadValue, lineNo, i+1, tok)
			}
			row[i] = v
		}
		out = append(out, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	return out, nil
}

// ReadFile parses instances from the file at path.
func ReadFile(path string) (Instances, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
