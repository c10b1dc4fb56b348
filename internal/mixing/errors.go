package mixing

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by errors.Is for every DomainError.
var ErrDomain = errors.New("domain error")

// DomainError reports an input outside the domain of a calculation.
type DomainError struct {
	// Op is the operation that rejected the input (e.g. "EntropyOfMixing").
	Op string

	// Field names the offending input (e.g. "x1", "temperature").
	Field string

	// Value is the rejected numeric value. It is ignored when Name is set.
	Value float64

	// Name is the rejected non-numeric value, such as an unknown unit.
	Name string

	// Reason states the constraint that was violated.
	Reason string
}

// Error implements error.
func (e *DomainError) Error() string {
	v := e.Name
	if v == "" {
		v = formatFloat(e.Value)
	}
	return fmt.Sprintf("%s: %s = %s: %s", e.Op, e.Field, v, e.Reason)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func domainErr(op, field string, value float64, reason string) error {
	return &DomainError{Op: op, Field: field, Value: value, Reason: reason}
}

// IsDomainError reports whether err (or anything it wraps) is a DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
