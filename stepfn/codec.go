// Package stepfn: line-oriented text representation.
//
// A function is persisted as six lines:
//
//	AttIndex: 2
//	PredictionOnMV: 0
//	Splits: 3
//	[3, 5, +Infinity]
//	Predictions: 3
//	[0.25, -1, 4]
//
// Infinities are spelled +Infinity / -Infinity (Infinity is accepted on
// read), missing values NaN, finite values in shortest round-trip form.
package stepfn

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Write emits the text representation of f.
func (f *StepFn) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "AttIndex: %d\n", f.attIndex)
	fmt.Fprintf(&b, "PredictionOnMV: %s\n", formatValue(f.onMissing))
	fmt.Fprintf(&b, "Splits: %d\n", len(f.splits))
	b.WriteString(formatArray(f.splits))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Predictions: %d\n", len(f.preds))
	b.WriteString(formatArray(f.preds))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Read parses one function from r, consuming exactly the lines Write
// produces. Framing violations return ErrBadFormat; content that breaks
// the function invariants returns ErrMalformedFunction via New.
func Read(r *bufio.Reader) (*StepFn, error) {
	attIndex, err := readIntField(r, "AttIndex")
	if err != nil {
		return nil, err
	}
	onMissing, err := readValueField(r, "PredictionOnMV")
	if err != nil {
		return nil, err
	}
	nSplits, err := readIntField(r, "Splits")
	if err != nil {
		return nil, err
	}
	splits, err := readArrayLine(r, nSplits)
	if err != nil {
		return nil, err
	}
	nPreds, err := readIntField(r, "Predictions")
	if err != nil {
		return nil, err
	}
	preds, err := readArrayLine(r, nPreds)
	if err != nil {
		return nil, err
	}
	return New(attIndex, splits, preds, onMissing)
}

func formatArray(xs []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatValue(x))
	}
	b.WriteByte(']')
	return b.String()
}

func formatValue(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "+Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case math.IsNaN(x):
		return "NaN"
	default:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
}

func parseValue(s string) (float64, error) {
	switch s {
	case "+Infinity", "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func readField(r *bufio.Reader, name string) (string, error) {
	line, err := readLine(r)
	if err != nil {
		return "", err
	}
	prefix := name + ": "
	if !strings.HasPrefix(line, prefix) {
		return "", fmt.Errorf("%w: expected %q line, got %q", ErrBadFormat, name, line)
	}
	return strings.TrimSpace(line[len(prefix):]), nil
}

func readIntField(r *bufio.Reader, name string) (int, error) {
	s, err := readField(r, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer: %q", ErrBadFormat, name, s)
	}
	return v, nil
}

func readValueField(r *bufio.Reader, name string) (float64, error) {
	s, err := readField(r, name)
	if err != nil {
		return 0, err
	}
	v, err := parseValue(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a float: %q", ErrBadFormat, name, s)
	}
	return v, nil
}

// readArrayLine parses a "[a, b, c]" line and checks the element count
// against the preceding count line.
func readArrayLine(r *bufio.Reader, want int) ([]float64, error) {
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return nil, fmt.Errorf("%w: expected bracketed array, got %q", ErrBadFormat, line)
	}
	body := strings.TrimSpace(line[1 : len(line)-1])

	var xs []float64
	if body != "" {
		parts := strings.Split(body, ",")
		xs = make([]float64, 0, len(parts))
		for _, p := range parts {
			v, err := parseValue(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("%w: bad array element %q", ErrBadFormat, p)
			}
			xs = append(xs, v)
		}
	}
	if len(xs) != want {
		return nil, fmt.Errorf("%w: declared %d elements, found %d", ErrBadFormat, want, len(xs))
	}
	return xs, nil
}
