// Package gate implements the gain-gated rotation calculator: it turns
// a pair of alignment-entropy readings into a veto-clamped rotation
// angle, and optionally applies that angle to a 2-dimensional complex
// state vector.
//
// 🚀 How it works
//
//	The calculator composes three total operations:
//	  1. Gain:  ΔA = ln(H₋ / H₊) — positive when entropy dropped,
//	     i.e. the system came out of a stress window better aligned.
//	  2. Veto:  θ = κ · max(0, ΔA) — a non-positive gain is clamped to
//	     zero, so a loss is never reinforced. θ is always ≥ 0.
//	  3. Rotate: the angle drives qstate.Vector.RotateX, nudging the
//	     state vector by Rx(θ).
//
// ✨ Guarantees:
//   - Total – no operation errors or panics after construction
//   - Safe degradation – a reading ≤ 0 (where ln is undefined) yields a
//     gain of exactly 0, a deliberate policy rather than an error path
//   - Stateless – gain is returned to the caller, never cached, so one
//     Gate is safe to share between goroutines without locks
//
// ⚙️ Usage:
//
//	g, err := gate.New(0.2)
//	if err != nil {
//	  // handle ErrKappaOutOfRange
//	}
//	rotated, gain := g.VerifyAndRotate(qstate.PlusState(), 0.55, 0.50)
//
// The scaling factor κ is fixed at construction and validated against
// the certified interval [MinKappa, MaxKappa]; see types.go for the
// constants and sentinel errors.
package gate
