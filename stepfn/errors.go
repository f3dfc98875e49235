package stepfn

import "errors"

var (
	// ErrIncompatibleTerm indicates a merge between functions defined
	// over different attribute indices.
	ErrIncompatibleTerm = errors.New("stepfn: cannot merge functions on different attributes")

	// ErrMalformedFunction indicates breakpoint/prediction arrays that
	// violate the invariants: equal length >= 1, strictly increasing
	// splits, terminal +Inf.
	ErrMalformedFunction = errors.New("stepfn: malformed function")

	// ErrBadFormat indicates a framing violation while parsing the text
	// representation.
	ErrBadFormat = errors.New("stepfn: bad text format")
)
