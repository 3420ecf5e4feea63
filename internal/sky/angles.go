package sky

import gomath "math"

const (
	twoPi  = 2 * gomath.Pi
	halfPi = gomath.Pi / 2

	// uniqueAngles is the resolution of the legacy angle system.
	uniqueAngles = 512
)

// LegacyAngleToRadians converts a legacy angle unit to radians.
// Legacy angles run clockwise with 0 = south, 128 = west, 256 = north and
// 384 = east. The result runs counter-clockwise from east, in [0, 2π).
func LegacyAngleToRadians(unit int) float64 {
	legacyRadians := twoPi * (float64(unit) / uniqueAngles)
	return normalizeAngle((twoPi - legacyRadians) - halfPi)
}

// normalizeAngle wraps radians into [0, 2π).
func normalizeAngle(r float64) float64 {
	r = gomath.Mod(r, twoPi)
	if r < 0 {
		r += twoPi
	}
	if r >= twoPi {
		r = 0
	}
	return r
}
