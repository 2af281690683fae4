package otp

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DegToRad converts degrees to radians.
	DegToRad = math.Pi / 180
)

// CelestialObject defines the central body of a transfer.
// All quantities are in SI units: the radius is in meters and μ in m^3/s^2.
type CelestialObject struct {
	Name   string
	Radius float64
	μ      float64
}

// NewCelestialObject returns a body with the provided mean radius (m) and gravitational parameter (m^3/s^2).
func NewCelestialObject(name string, radius, μ float64) CelestialObject {
	return CelestialObject{name, radius, μ}
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// AltitudeToRadius returns the orbit radius from the center of the body for the given altitude (m).
func (c CelestialObject) AltitudeToRadius(altitude float64) float64 {
	return c.Radius + altitude
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.μ == b.μ
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "venus":
		return Venus, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "sun":
		return Sun, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined body '%s'", name)
	}
}

/* Definitions */

// Earth is home. The radius is the mean radius, not the equatorial one.
var Earth = CelestialObject{"Earth", 6.371e6, 3.986004418e14}

// Moon is where we went.
var Moon = CelestialObject{"Moon", 1.7374e6, 4.9048695e12}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6.0518e6, 3.24858592e14}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3.3895e6, 4.282837e13}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 6.9911e7, 1.26686534e17}

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 6.957e8, 1.32712440018e20}
