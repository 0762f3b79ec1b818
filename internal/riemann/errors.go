package riemann

import (
	"errors"
	"fmt"
)

// Domain errors for argument validation and sampling.
var (
	// ErrInvalidArgument indicates a malformed interval, a non-positive
	// count or an unrecognized mode.
	ErrInvalidArgument = errors.New("riemann: invalid argument")

	// ErrEvaluation indicates the function has no finite value at a
	// rectangle's sample point.
	ErrEvaluation = errors.New("riemann: function not finite at sample point")
)

// ArgumentError names the offending argument and value.
type ArgumentError struct {
	Name   string
	Value  string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%q %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// EvaluationError wraps ErrEvaluation with the sample point.
type EvaluationError struct {
	Variable string
	At       float64
	Value    float64
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("riemann: f(%s=%g) = %g is not finite", e.Variable, e.At, e.Value)
}

func (e *EvaluationError) Unwrap() error {
	return ErrEvaluation
}

func argErr(name, value, reason string) error {
	return &ArgumentError{Name: name, Value: value, Reason: reason}
}
