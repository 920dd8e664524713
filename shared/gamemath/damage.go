package gamemath

import "math"

// bandEpsilon keeps a height exactly on the band edge inside the band.
const bandEpsilon = 1e-9

// Multiplier returns m when cond holds and 1 otherwise.
func Multiplier(cond bool, m float64) float64 {
	if cond {
		return m
	}
	return 1
}

// ComposeDamage layers the hit multipliers over a base damage value.
func ComposeDamage(base, global, headshot, stealth float64) float64 {
	return base * global * headshot * stealth
}

// InHeadBand reports whether height y lies within band of the head height
// found headOffset above a body origin. Both edges count.
func InHeadBand(y, originY, headOffset, band float64) bool {
	return math.Abs(y-(originY+headOffset)) <= band+bandEpsilon
}

// Clamp keeps v within [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
