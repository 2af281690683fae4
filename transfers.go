package otp

import (
	"math"
	"time"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// TransferDetails is the burn-by-burn breakdown of an impulsive transfer between circular orbits.
// Burns are magnitudes (m/s), in execution order.
type TransferDetails struct {
	Burns        []float64
	Total        float64
	TimeOfFlight time.Duration
}

func newTransferDetails(tof time.Duration, burns ...float64) TransferDetails {
	return TransferDetails{Burns: burns, Total: floats.Sum(burns), TimeOfFlight: tof}
}

// hohmannBurns returns both burn magnitudes of a Hohmann transfer and the semi-major axis of the transfer ellipse.
func hohmannBurns(μ, r1, r2 float64) (burns []float64, aTransfer float64, err error) {
	aTransfer = 0.5 * (r1 + r2)
	v1, err := CircularVelocity(μ, r1)
	if err != nil {
		return nil, 0, err
	}
	v2, err := CircularVelocity(μ, r2)
	if err != nil {
		return nil, 0, err
	}
	vPeri, err := VisViva(μ, r1, aTransfer)
	if err != nil {
		return nil, 0, err
	}
	vApo, err := VisViva(μ, r2, aTransfer)
	if err != nil {
		return nil, 0, err
	}
	return []float64{math.Abs(vPeri - v1), math.Abs(v2 - vApo)}, aTransfer, nil
}

// Hohmann computes a Hohmann transfer from the circular orbit of radius r1 to the circular orbit of radius r2.
// It works both ways (raising or lowering): the burns are magnitudes, and the time of flight is half the period
// of the transfer ellipse. Transfers too long for a time.Duration fail, but HohmannΔv does not.
func Hohmann(μ, r1, r2 float64) (TransferDetails, error) {
	burns, aTransfer, err := hohmannBurns(μ, r1, r2)
	if err != nil {
		return TransferDetails{}, err
	}
	period, err := Period(μ, aTransfer)
	if err != nil {
		return TransferDetails{}, err
	}
	return newTransferDetails(period/2, burns...), nil
}

// HohmannΔv returns the total Δv of a Hohmann transfer between circular orbits r1 and r2.
func HohmannΔv(μ, r1, r2 float64) (float64, error) {
	burns, _, err := hohmannBurns(μ, r1, r2)
	if err != nil {
		return 0, err
	}
	return floats.Sum(burns), nil
}

// biellipticBurns returns the three burn magnitudes of a bi-elliptic transfer and the semi-major axes of both ellipses.
func biellipticBurns(μ, r1, r2, rB float64) (burns []float64, a1, a2 float64, err error) {
	// Leg 1: r1 -> rB
	a1 = 0.5 * (r1 + rB)
	vC1, err := CircularVelocity(μ, r1)
	if err != nil {
		return nil, 0, 0, err
	}
	vP1, err := VisViva(μ, r1, a1)
	if err != nil {
		return nil, 0, 0, err
	}
	// At rB: match the second ellipse which goes down (or up) to r2.
	a2 = 0.5 * (rB + r2)
	vA1, err := VisViva(μ, rB, a1)
	if err != nil {
		return nil, 0, 0, err
	}
	vA2, err := VisViva(μ, rB, a2)
	if err != nil {
		return nil, 0, 0, err
	}
	// Leg 3: rB -> r2
	vC2, err := CircularVelocity(μ, r2)
	if err != nil {
		return nil, 0, 0, err
	}
	vP2, err := VisViva(μ, r2, a2)
	if err != nil {
		return nil, 0, 0, err
	}
	return []float64{math.Abs(vP1 - vC1), math.Abs(vA2 - vA1), math.Abs(vC2 - vP2)}, a1, a2, nil
}

// Bielliptic computes a bi-elliptic transfer from r1 to r2 via the intermediate apoapsis rB.
// The ordering rB > max(r1, r2) is what makes it a bi-elliptic transfer, but it is *not* enforced.
func Bielliptic(μ, r1, r2, rB float64) (TransferDetails, error) {
	burns, a1, a2, err := biellipticBurns(μ, r1, r2, rB)
	if err != nil {
		return TransferDetails{}, err
	}
	period1, err := Period(μ, a1)
	if err != nil {
		return TransferDetails{}, err
	}
	period2, err := Period(μ, a2)
	if err != nil {
		return TransferDetails{}, err
	}
	return newTransferDetails(period1/2+period2/2, burns...), nil
}

// BiellipticΔv returns the total Δv of a bi-elliptic transfer.
func BiellipticΔv(μ, r1, r2, rB float64) (float64, error) {
	burns, _, _, err := biellipticBurns(μ, r1, r2, rB)
	if err != nil {
		return 0, err
	}
	return floats.Sum(burns), nil
}

// PlaneChangeΔv returns the Δv of a pure plane change of Δi radians at speed v.
func PlaneChangeΔv(v, Δi float64) float64 {
	return 2 * v * math.Sin(0.5*Δi)
}

// CombinedBurnΔv returns the Δv of a single burn which changes the speed from v1 to v2 and rotates
// the orbit plane by Δi radians (law of cosines).
func CombinedBurnΔv(v1, v2, Δi float64) float64 {
	sq := v1*v1 + v2*v2 - 2*v1*v2*math.Cos(Δi)
	// Rounding may lead to a tiny negative value when v1 ~ v2 and Δi ~ 0.
	return math.Sqrt(math.Max(sq, 0))
}

// CombinedBurnVNC returns the combined burn Δv vector in the VNC frame of the pre-burn velocity.
// The post-burn velocity is the pre-burn direction rotated by Δi about the co-normal (radial) axis.
func CombinedBurnVNC(v1, v2, Δi float64) *mat64.Vector {
	vInit := mat64.NewVector(3, []float64{v1, 0, 0})
	vFinal := rotate(PlaneChangeVNC(Δi), mat64.NewVector(3, []float64{v2, 0, 0}))
	Δv := mat64.NewVector(3, nil)
	Δv.SubVec(vFinal, vInit)
	return Δv
}
