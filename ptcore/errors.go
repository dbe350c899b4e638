package ptcore

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the errors TreeSearch and Predict can return.
type Kind int

const (
	// InvalidDimensions is returned when X and Gamma disagree on the
	// number of rows, or a prediction matrix disagrees with the
	// training number of columns.
	InvalidDimensions Kind = iota
	// InvalidHyperparameter is returned when depth, split_step or
	// min_node_size is out of range, or Gamma has fewer than two
	// action columns.
	InvalidHyperparameter
	// EmptyInput is returned when X has zero rows.
	EmptyInput
	// InternalInvariantViolation marks a breach of an SSPD invariant
	// or an otherwise unreachable branch. It indicates a bug in this
	// package, not bad caller input.
	InternalInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case InvalidDimensions:
		return "InvalidDimensions"
	case InvalidHyperparameter:
		return "InvalidHyperparameter"
	case EmptyInput:
		return "EmptyInput"
	case InternalInvariantViolation:
		return "InternalInvariantViolation"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned at the package boundary.
// The Kind field lets callers branch on failure class with errors.As.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ptcore: %s: %s", e.Kind, e.msg)
}

func newError(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// invariantViolation wraps an internal assertion failure with a stack
// trace via github.com/pkg/errors, so a debug build has something to
// print besides "internal error".
func invariantViolation(format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: InternalInvariantViolation, msg: fmt.Sprintf(format, args...)})
}
