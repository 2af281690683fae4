package otp

import (
	"math"
	"testing"
)

func TestCelestialObjectFromString(t *testing.T) {
	for _, object := range []CelestialObject{Sun, Venus, Earth, Moon, Mars, Jupiter} {
		for _, name := range []string{object.Name, " " + object.Name, "  " + object.Name + "\t"} {
			got, err := CelestialObjectFromString(name)
			if err != nil {
				t.Fatalf("%s: %s", name, err)
			}
			if !got.Equals(object) {
				t.Fatalf("got %s instead of %s", got, object)
			}
		}
	}
	if _, err := CelestialObjectFromString("Vesta"); err == nil {
		t.Fatal("Vesta is not a known body")
	}
}

func TestCelestialObject(t *testing.T) {
	custom := NewCelestialObject("Ceres", 4.697e5, 6.26325e10)
	if custom.GM() != 6.26325e10 {
		t.Fatalf("GM() = %f", custom.GM())
	}
	if custom.Equals(Earth) || !custom.Equals(NewCelestialObject("Ceres", 4.697e5, 6.26325e10)) {
		t.Fatal("Equals is incorrect")
	}
	if custom.String() != "Ceres body" {
		t.Fatalf("String() = %s", custom)
	}
	if r := Earth.AltitudeToRadius(200e3); r != 6.571e6 {
		t.Fatalf("200 km above the Earth is %f m", r)
	}
	if math.Abs(90*DegToRad-math.Pi/2) > 1e-15 {
		t.Fatal("DegToRad is incorrect")
	}
}
