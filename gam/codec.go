// Package gam: model text representation.
//
// Layout:
//
//	GAM
//	Intercept: <float>
//	Terms: <k>
//	[<i>, <j>]        (k lines)
//	Regressors: <k>
//	<k stepfn blocks>
package gam

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gamlab/stepdiag/stepfn"
)

const modelHeader = "GAM"

// Write emits the model text representation. Only *stepfn.StepFn
// regressors can be persisted.
func (m *Model) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\nIntercept: %s\nTerms: %d\n",
		modelHeader, strconv.FormatFloat(m.intercept, 'g', -1, 64), len(m.terms)); err != nil {
		return err
	}
	for _, t := range m.terms {
		if _, err := fmt.Fprintln(w, t.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Regressors: %d\n", len(m.regressors)); err != nil {
		return err
	}
	for i, r := range m.regressors {
		f, ok := r.(*stepfn.StepFn)
		if !ok {
			return fmt.Errorf("%w: %T at index %d", ErrUnsupportedRegressor, r, i)
		}
		if err := f.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// Read parses a model from r.
func Read(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil {
		return nil, err
	}
	if header != modelHeader {
		return nil, fmt.Errorf("%w: expected %q header, got %q", ErrBadModel, modelHeader, header)
	}

	intercept, err := readFloatField(br, "Intercept")
	if err != nil {
		return nil, err
	}
	nTerms, err := readIntField(br, "Terms")
	if err != nil {
		return nil, err
	}
	terms := make([]Term, 0, nTerms)
	for i := 0; i < nTerms; i++ {
		line, err := readLine(br)
		if err != nil {
			return nil, err
		}
		t, err := parseTerm(line)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}

	nRegs, err := readIntField(br, "Regressors")
	if err != nil {
		return nil, err
	}
	if nRegs != nTerms {
		return nil, fmt.Errorf("%w: %d terms vs %d regressors", ErrBadModel, nTerms, nRegs)
	}

	m := NewModel(intercept)
	for i := 0; i < nRegs; i++ {
		f, err := stepfn.Read(br)
		if err != nil {
			return nil, fmt.Errorf("gam: regressor %d: %w", i, err)
		}
		m.Add(terms[i], f)
	}
	return m, nil
}

// ReadFile parses a model from the file at path.
func ReadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gam: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile persists the model to the file at path.
func (m *Model) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gam: create %s: %w", path, err)
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseTerm parses a "[1, 2]" tuple line.
func parseTerm(line string) (Term, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return nil, fmt.Errorf("%w: expected bracketed term, got %q", ErrBadModel, line)
	}
	body := strings.TrimSpace(line[1 : len(line)-1])
	if body == "" {
		return nil, fmt.Errorf("%w: empty term", ErrBadModel)
	}
	parts := strings.Split(body, ",")
	t := make(Term, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: bad term index %q", ErrBadModel, p)
		}
		t = append(t, v)
	}
	return t, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("%w: %v", ErrBadModel, err)
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
		return "", fmt.Errorf("%w: expected %q line, got %q", ErrBadModel, name, line)
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
		return 0, fmt.Errorf("%w: %s is not an integer: %q", ErrBadModel, name, s)
	}
	return v, nil
}

func readFloatField(r *bufio.Reader, name string) (float64, error) {
	s, err := readField(r, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a float: %q", ErrBadModel, name, s)
	}
	return v, nil
}
