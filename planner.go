package otp

import "fmt"

// TransferCase defines a transfer between two circular orbits, with an optional plane change.
type TransferCase struct {
	R1        float64 // Radius of the initial orbit, from the center of the body (m)
	R2        float64 // Radius of the final orbit (m)
	IncChange float64 // Inclination change (degrees)
	Mu        float64 // Gravitational parameter (m^3/s^2), zero means Earth's
}

// NewTransferCase returns a coplanar transfer case around the Earth.
// Use the struct fields to set an inclination change or another central body.
func NewTransferCase(r1, r2 float64) TransferCase {
	return TransferCase{R1: r1, R2: r2, Mu: Earth.GM()}
}

// GM returns the gravitational parameter of this case, defaulting to the Earth's.
func (c TransferCase) GM() float64 {
	if c.Mu == 0 {
		return Earth.GM()
	}
	return c.Mu
}

// DeltaVBreakdown is the Δv summary of a transfer case (all in m/s).
type DeltaVBreakdown struct {
	Hohmann        float64 // Coplanar Hohmann transfer
	PlaneLow       float64 // Pure plane change on the initial orbit
	CombinedAtHigh float64 // Plane change combined with the burn on the final orbit
}

func (b DeltaVBreakdown) String() string {
	return fmt.Sprintf("dv_hohmann=%.3f m/s dv_plane_low=%.3f m/s dv_combined_at_high=%.3f m/s", b.Hohmann, b.PlaneLow, b.CombinedAtHigh)
}

// PlanSimple returns the Δv breakdown of the provided transfer case.
// The combined burn treats the apoapsis speed of the transfer ellipse as the circular speed of
// the final orbit. That's an approximation: the true combined burn would use the transfer
// apoapsis speed as v1.
func PlanSimple(c TransferCase) (DeltaVBreakdown, error) {
	μ := c.GM()
	Δi := c.IncChange * DegToRad

	ΔvHohmann, err := HohmannΔv(μ, c.R1, c.R2)
	if err != nil {
		return DeltaVBreakdown{}, err
	}

	vNodeLow, err := CircularVelocity(μ, c.R1)
	if err != nil {
		return DeltaVBreakdown{}, err
	}

	vHigh, err := CircularVelocity(μ, c.R2)
	if err != nil {
		return DeltaVBreakdown{}, err
	}

	return DeltaVBreakdown{
		Hohmann:        ΔvHohmann,
		PlaneLow:       PlaneChangeΔv(vNodeLow, Δi),
		CombinedAtHigh: CombinedBurnΔv(vHigh, vHigh, Δi),
	}, nil
}
