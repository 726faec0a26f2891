package worldmodel

import "math"

// RoundTo centralizes floating-point rounding per Design Notes §9: every
// stage that introduces floating point (easing curves, adiabatic lapse,
// precipitation, scoring) rounds through here so rounding behavior can be
// audited and changed in one place instead of scattered math.Round calls.
func RoundTo(x float64, n int) float64 {
	scale := math.Pow(10, float64(n))
	return math.Round(x*scale) / scale
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt is the integer form of Clamp, used for the elevation/temperature
// attribute columns which are fixed-width signed integers.
func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
