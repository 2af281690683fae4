/*
Package otp computes the characteristic velocity changes (Δv) of classical impulsive maneuvers
between circular orbits: Hohmann and bi-elliptic transfers, plane changes and combined burns.

Everything is closed form; there is no propagation. All functions are pure and can be called
from multiple goroutines. Units are SI (m, m/s, m^3/s^2) and angles are in radians unless a
name says otherwise (e.g. TransferCase.IncChange is in degrees).

Sweeps build Figures which are handed to a Sink; see the figures package for renderers.
*/
package otp
