// Package core provides fundamental types shared by the simulation core and
// the platform layer: geometry helpers, the per-tick input snapshot, the
// declarative Scene, and the collaborator interfaces the core renders and
// signals through. It contains no external dependencies (especially no Bubble
// Tea) so the game logic stays pure and testable.
package core

import "math"

// Device logical display dimensions, in display units. All simulation
// coordinates live in this space; the platform scales it to whatever it
// actually draws on.
const (
	DeviceW = 128
	DeviceH = 64
)

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
