package otp

import (
	"fmt"

	"github.com/gonum/floats"
	"github.com/gonum/stat"
)

const (
	// AltitudeSweepName is the figure name of the Hohmann Δv vs target altitude sweep.
	AltitudeSweepName = "dv_vs_target_alt"
	// InclinationSweepName is the figure name of the plane change Δv vs inclination sweep.
	InclinationSweepName = "dv_planechange_vs_inc"
)

// Series is an ordered sequence of (x, y) pairs.
type Series struct {
	Label string
	X, Y  []float64
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.X)
}

// Points returns the (x, y) pairs.
func (s Series) Points() [][2]float64 {
	pts := make([][2]float64, len(s.X))
	for i := range s.X {
		pts[i] = [2]float64{s.X[i], s.Y[i]}
	}
	return pts
}

// SeriesSummary holds the statistics of the dependent variable of a series.
type SeriesSummary struct {
	Min, Max, Mean, StdDev float64
}

// Summary returns the statistics of Y. The standard deviation of a single point is zero.
func (s Series) Summary() SeriesSummary {
	if len(s.Y) == 0 {
		return SeriesSummary{}
	}
	sum := SeriesSummary{Min: floats.Min(s.Y), Max: floats.Max(s.Y)}
	if len(s.Y) == 1 {
		sum.Mean = s.Y[0]
		return sum
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(s.Y, nil)
	return sum
}

// Figure is what gets handed to a Sink: the series and how to label them.
type Figure struct {
	Name   string // Basename of the artifact, without extension
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Linspace returns n evenly spaced samples from start to stop, both included.
// If n <= 1, only start is returned.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 1 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// AltitudeSweep computes the Hohmann Δv from the circular orbit r1 to circular orbits of
// n target altitudes in [altMin, altMax] (m) around the provided body.
// The X axis is in km and the Y axis in m/s.
func AltitudeSweep(body CelestialObject, r1, altMin, altMax float64, n int) (Figure, error) {
	altitudes := Linspace(altMin, altMax, n)
	series := Series{Label: "Hohmann", X: make([]float64, len(altitudes)), Y: make([]float64, len(altitudes))}
	for i, alt := range altitudes {
		Δv, err := HohmannΔv(body.GM(), r1, body.AltitudeToRadius(alt))
		if err != nil {
			return Figure{}, err
		}
		series.X[i] = alt / 1000
		series.Y[i] = Δv
	}
	return Figure{
		Name:   AltitudeSweepName,
		Title:  "Δv vs Target Altitude (Hohmann)",
		XLabel: "Target altitude, km",
		YLabel: "Total Δv (Hohmann), m/s",
		Series: []Series{series},
	}, nil
}

// InclinationSweep computes the pure plane change Δv for n inclination changes in [incMin, incMax] (degrees)
// on the circular orbits rLow and rHigh, to show that plane changes are cheaper where the vehicle is slower.
func InclinationSweep(body CelestialObject, rLow, rHigh, incMin, incMax float64, n int) (Figure, error) {
	vLow, err := CircularVelocity(body.GM(), rLow)
	if err != nil {
		return Figure{}, err
	}
	vHigh, err := CircularVelocity(body.GM(), rHigh)
	if err != nil {
		return Figure{}, err
	}
	incs := Linspace(incMin, incMax, n)
	low := Series{Label: fmt.Sprintf("At low orbit (%d km)", int((rLow-body.Radius)/1000)), X: incs, Y: make([]float64, len(incs))}
	high := Series{Label: fmt.Sprintf("At high orbit (%d km)", int((rHigh-body.Radius)/1000)), X: append([]float64(nil), incs...), Y: make([]float64, len(incs))}
	for i, inc := range incs {
		low.Y[i] = PlaneChangeΔv(vLow, inc*DegToRad)
		high.Y[i] = PlaneChangeΔv(vHigh, inc*DegToRad)
	}
	return Figure{
		Name:   InclinationSweepName,
		Title:  "Plane-change Δv vs Inclination",
		XLabel: "Inclination change, deg",
		YLabel: "Δv (plane change), m/s",
		Series: []Series{low, high},
	}, nil
}
