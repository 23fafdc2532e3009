package gate

import (
	"math"

	"github.com/episteme13-hash/meta-cew-qim-v5/qstate"
)

// ComputeGain — Antifragile Gain (ΔA)
//
// Description:
//
//	The gain compares alignment entropy before and after a stress
//	window:
//
//	  ΔA = ln(before / after)
//
//	ΔA > 0 means entropy dropped — the system came out better aligned.
//	ΔA < 0 means entropy rose; the veto in RotationAngle will discard it.
//
// Edge case:
//
//	ln is undefined for non-positive arguments. If either reading is
//	≤ 0 (or NaN), ComputeGain returns exactly 0.0. This is deliberate
//	degradation policy — a zero gain produces a zero angle downstream —
//	not an error path.
//
// Complexity: O(1), pure.
func (g *Gate) ComputeGain(before, after float64) float64 {
	// The inverted comparisons also reject NaN readings.
	if !(before > 0) || !(after > 0) {
		return 0.0
	}

	return math.Log(before / after)
}

// RotationAngle converts a gain into a rotation angle:
//
//	θ = κ · max(0, gain)
//
// The max(0, ·) clamp is the veto: a non-positive gain yields θ = 0,
// so the state is never rotated toward a loss. The result is ≥ 0 for
// every input, including NaN-free negatives of any magnitude.
func (g *Gate) RotationAngle(gain float64) float64 {
	if gain <= 0 || math.IsNaN(gain) {
		return 0.0
	}

	return g.kappa * gain
}

// VerifyAndRotate runs the full pipeline on one stress window:
// gain from the two readings, veto-clamped angle, Rx rotation of v.
//
// It returns the rotated vector together with the raw gain — the gain
// is reported even when negative and vetoed, so callers can observe
// losses without the state vector ever being moved by one.
//
// v is trusted as-is; no normalization is enforced or restored.
func (g *Gate) VerifyAndRotate(v qstate.Vector, before, after float64) (qstate.Vector, float64) {
	gain := g.ComputeGain(before, after)
	theta := g.RotationAngle(gain)

	return v.RotateX(theta), gain
}
