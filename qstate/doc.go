// Package qstate provides 2-dimensional complex state vectors and the
// Rx(θ) rotation gate that acts on them.
//
// A Vector is an ordered pair of complex128 amplitudes (A, B),
// conventionally unit-norm. Normalization is the caller's contract:
// nothing in this package enforces or restores it, Norm and IsUnit
// exist so callers (and tests) can check it themselves.
//
// The only transform is RotateX, the standard X-axis rotation
//
//	Rx(θ) = [  cos(θ/2)   −i·sin(θ/2) ]
//	        [ −i·sin(θ/2)   cos(θ/2)  ]
//
// applied as a matrix–vector product. Rx is unitary for every θ, so the
// norm of the input is preserved; Rx(0) is exactly the identity.
//
// ⚙️ Usage:
//
//	v := qstate.PlusState()          // (1/√2, 1/√2)
//	w := v.RotateX(0.4581)           // rotated copy, v untouched
//	fmt.Println(w.Norm())            // ≈ 1.0
//
// All operations are pure value-to-value computations: Vectors are
// passed and returned by value, never mutated in place.
package qstate
