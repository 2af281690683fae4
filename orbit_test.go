package otp

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestCircularVelocity(t *testing.T) {
	vLow, err := CircularVelocity(Earth.GM(), leo200)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	vHigh, err := CircularVelocity(Earth.GM(), leo2000)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if vLow <= vHigh {
		t.Fatalf("speed should decrease with radius: vLow=%f vHigh=%f", vLow, vHigh)
	}
	if vLow <= 7000 {
		t.Fatalf("vLow=%f expected > 7000 m/s", vLow)
	}
	if vHigh <= 6000 {
		t.Fatalf("vHigh=%f expected > 6000 m/s", vHigh)
	}
	if !floats.EqualWithinAbs(vLow, 7788.487985, velocityε) {
		t.Fatalf("vLow=%f", vLow)
	}
	// Monotonic decrease for other bodies too.
	for _, body := range []CelestialObject{Moon, Mars, Jupiter} {
		prev := math.Inf(1)
		for alt := 100e3; alt < 1e8; alt *= 3 {
			v, err := CircularVelocity(body.GM(), body.AltitudeToRadius(alt))
			if err != nil {
				t.Fatalf("[%s] err %s", body, err)
			}
			if v >= prev {
				t.Fatalf("[%s] speed did not decrease at altitude %f", body, alt)
			}
			prev = v
		}
	}
}

func TestCircularVelocityErrors(t *testing.T) {
	for _, r := range []float64{0, -1, -Earth.Radius} {
		_, err := CircularVelocity(Earth.GM(), r)
		if derr := assertDomainErr(t, err); derr.Value != r {
			t.Fatalf("expected offending value %f, got %f", r, derr.Value)
		}
	}
	_, err := CircularVelocity(0, leo200)
	assertDomainErr(t, err)
	// Non-finite inputs never produce a speed.
	nan, inf := math.NaN(), math.Inf(1)
	for _, in := range [][2]float64{{nan, leo200}, {Earth.GM(), nan}, {inf, leo200}, {Earth.GM(), inf}, {Earth.GM(), math.Inf(-1)}} {
		v, err := CircularVelocity(in[0], in[1])
		assertDomainErr(t, err)
		if v != 0 {
			t.Fatalf("CircularVelocity(%f, %f) = %f along with an error", in[0], in[1], v)
		}
	}
}

func TestVisViva(t *testing.T) {
	// On a circular orbit, vis-viva is the circular velocity.
	vCirc, _ := CircularVelocity(Earth.GM(), leo200)
	v, err := VisViva(Earth.GM(), leo200, leo200)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !floats.EqualWithinRel(v, vCirc, 1e-12) {
		t.Fatalf("v=%f != vCirc=%f", v, vCirc)
	}
	// Escape speed is reached as the semi-major axis grows.
	vEsc, err := VisViva(Earth.GM(), leo200, 1e20)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !floats.EqualWithinRel(vEsc, math.Sqrt2*vCirc, 1e-9) {
		t.Fatalf("vEsc=%f != sqrt(2)*vCirc=%f", vEsc, math.Sqrt2*vCirc)
	}
	// Hyperbolic orbits have a negative semi-major axis and reach any radius.
	if _, err := VisViva(Earth.GM(), 1e9, -leo200); err != nil {
		t.Fatalf("hyperbolic orbit should be valid: %s", err)
	}
}

func TestVisVivaErrors(t *testing.T) {
	a := 7e6
	// r far beyond 2a: the orbit never gets there.
	_, err := VisViva(Earth.GM(), 3*a, a)
	assertDomainErr(t, err)
	// Exactly at 2a, the bracket is zero.
	_, err = VisViva(Earth.GM(), 2*a, a)
	assertDomainErr(t, err)
	_, err = VisViva(Earth.GM(), 0, a)
	assertDomainErr(t, err)
	_, err = VisViva(Earth.GM(), a, 0)
	assertDomainErr(t, err)
	_, err = VisViva(-1, a, a)
	assertDomainErr(t, err)
	nan, inf := math.NaN(), math.Inf(1)
	for _, in := range [][3]float64{{nan, a, a}, {Earth.GM(), nan, a}, {Earth.GM(), a, nan}, {inf, a, a}, {Earth.GM(), inf, a}, {Earth.GM(), a, inf}, {Earth.GM(), a, -inf}} {
		v, err := VisViva(in[0], in[1], in[2])
		assertDomainErr(t, err)
		if v != 0 {
			t.Fatalf("VisViva(%f, %f, %f) = %f along with an error", in[0], in[1], in[2], v)
		}
	}
}

func TestPeriod(t *testing.T) {
	period, err := Period(Earth.GM(), leo200)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if period < 88*time.Minute || period > 89*time.Minute {
		t.Fatalf("period=%s expected ~88.35 minutes", period)
	}
	if _, err := Period(Earth.GM(), -1); err == nil {
		t.Fatal("negative semi-major axis should fail")
	}
	for _, a := range []float64{math.NaN(), math.Inf(1)} {
		_, err := Period(Earth.GM(), a)
		assertDomainErr(t, err)
	}
	// Some 3500 years around the Earth does not fit in a time.Duration.
	_, err = Period(Earth.GM(), 5e11)
	assertDomainErr(t, err)
	if ξ := Energyξ(Earth.GM(), leo200); ξ >= 0 {
		t.Fatalf("bound orbit has a positive energy ξ=%f", ξ)
	}
}
