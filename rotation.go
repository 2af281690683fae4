package otp

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// PlaneChangeVNC returns the rotation of Δi radians about the co-normal axis of a VNC frame
// (velocity, orbit normal, co-normal). Applied to a velocity along V, it tilts it towards N,
// which is how a plane change turns the velocity vector.
func PlaneChangeVNC(Δi float64) *mat64.Dense {
	s, c := math.Sincos(Δi)
	return mat64.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// rotate returns m·v.
func rotate(m mat64.Matrix, v *mat64.Vector) *mat64.Vector {
	var o mat64.Vector
	o.MulVec(m, v)
	return &o
}
