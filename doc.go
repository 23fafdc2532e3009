// Package metacew turns paired entropy measurements into gentle,
// veto-guarded state rotations — the arithmetic core of an antifragile
// feedback loop.
//
// 🚀 What is meta-cew-qim?
//
//	A small, dependency-free library built from three pieces:
//		• Gain: the natural-log ratio of two entropy readings — positive
//		  means the system improved under stress
//		• Veto: non-positive gain is clamped to zero, so failure is never
//		  reinforced
//		• Rotation: the surviving gain, scaled by a bounded factor κ,
//		  becomes an Rx(θ) rotation applied to a 2-dimensional complex
//		  state vector
//
// The whole pipeline in one line:
//
//	θ = κ · max(0, ln(H₋ / H₊)),   κ ∈ [0.1, 0.3]
//
// ✨ Why choose it?
//
//   - Total functions – every call returns, no panics, no hidden state
//   - Safe degradation – non-positive entropy yields a zero gain, not NaN
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	entropy/ — Shannon entropy of outcome distributions (the readings)
//	gate/    — the gain-gated rotation calculator itself
//	qstate/  — 2-dimensional complex state vectors and the Rx(θ) gate
//
// Quick sketch:
//
//	H₋, H₊ ──▶ gain ──veto──▶ θ ──Rx──▶ |ψ'⟩
//
// Dive into examples/ for runnable scenarios and each package's doc.go
// for the formal contracts.
//
//	go get github.com/episteme13-hash/meta-cew-qim-v5/gate
package metacew
