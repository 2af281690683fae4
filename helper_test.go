package otp

import (
	"errors"
	"testing"

	"github.com/gonum/floats"
)

const (
	velocityε = 1e-3 // in m/s
)

var (
	leo200  = Earth.AltitudeToRadius(200e3)
	leo2000 = Earth.AltitudeToRadius(2000e3)
)

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinAbsOrRel(a[i], b[i], 1e-9, 1e-9) {
			return false
		}
	}
	return true
}

func assertDomainErr(t *testing.T, err error) *DomainError {
	t.Helper()
	if err == nil {
		t.Fatal("expected a domain error, got nil")
	}
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("expected errors.Is(err, ErrDomain), got %s", err)
	}
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected a *DomainError, got %T", err)
	}
	return derr
}
