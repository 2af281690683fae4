package otp

import (
	"math"
	"time"
)

// maxDurationSeconds is the longest time.Duration, in seconds.
const maxDurationSeconds = float64(math.MaxInt64) / float64(time.Second)

// CircularVelocity returns the speed (m/s) on a circular orbit of radius r (m) around a body of
// gravitational parameter μ (m^3/s^2).
func CircularVelocity(μ, r float64) (float64, error) {
	if !positiveFinite(μ) {
		return 0, domainErr("CircularVelocity", "gravitational parameter must be positive and finite", μ)
	}
	if !positiveFinite(r) {
		return 0, domainErr("CircularVelocity", "radius must be positive and finite", r)
	}
	return math.Sqrt(μ / r), nil
}

// VisViva returns the speed at radius r on an orbit of semi-major axis a: v² = μ (2/r - 1/a).
// The orbit must reach r, i.e. the bracket must be strictly positive.
func VisViva(μ, r, a float64) (float64, error) {
	if !positiveFinite(μ) {
		return 0, domainErr("VisViva", "gravitational parameter must be positive and finite", μ)
	}
	if !positiveFinite(r) {
		return 0, domainErr("VisViva", "radius must be positive and finite", r)
	}
	if a == 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return 0, domainErr("VisViva", "semi-major axis must be finite and non zero", a)
	}
	bracket := 2/r - 1/a
	if bracket <= 0 || math.IsNaN(bracket) {
		return 0, domainErr("VisViva", "orbit does not reach this radius (2/r - 1/a <= 0)", bracket)
	}
	return math.Sqrt(μ * bracket), nil
}

// Energyξ returns the specific mechanical energy ξ of an orbit of semi-major axis a.
func Energyξ(μ, a float64) float64 {
	return -μ / (2 * a)
}

// Period returns the period of an elliptical orbit of semi-major axis a.
// Periods beyond what a time.Duration holds (about 292 years) are a DomainError.
func Period(μ, a float64) (time.Duration, error) {
	if !positiveFinite(μ) {
		return 0, domainErr("Period", "gravitational parameter must be positive and finite", μ)
	}
	if !positiveFinite(a) {
		return 0, domainErr("Period", "semi-major axis must be positive and finite", a)
	}
	seconds := 2 * math.Pi * math.Sqrt(math.Pow(a, 3)/μ)
	if seconds >= maxDurationSeconds {
		return 0, domainErr("Period", "period overflows time.Duration (s)", seconds)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// positiveFinite is false for NaN, which fails every comparison.
func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
