package otp

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every *DomainError via errors.Is.
var ErrDomain = errors.New("domain error")

// DomainError is returned when the mathematical precondition of a formula does not hold,
// e.g. a non-positive radius or a negative vis-viva bracket. No formula returns a NaN instead.
type DomainError struct {
	Func   string  // Formula which rejected its input
	Reason string  // Violated precondition
	Value  float64 // Offending value
}

// Error returns the error message for DomainError.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (value: %.6e)", e.Func, e.Reason, e.Value)
}

// Is allows errors.Is(err, ErrDomain).
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func domainErr(fn, reason string, value float64) *DomainError {
	return &DomainError{Func: fn, Reason: reason, Value: value}
}
