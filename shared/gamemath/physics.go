package gamemath

import (
	"cmp"
	"math"
)

// Damp scales speed by factor and snaps it to zero once its magnitude
// drops below rest, so a sliding body comes to a full stop.
func Damp(speed, factor, rest float64) float64 {
	speed *= factor
	if math.Abs(speed) < rest {
		return 0
	}
	return speed
}

// Bounce reflects speed off a wall, keeping factor of its magnitude.
func Bounce(speed, factor float64) float64 {
	return -speed * factor
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampMin returns v, or min when v is below it.
func ClampMin[T cmp.Ordered](v, min T) T {
	if v < min {
		return min
	}
	return v
}
