package qstate

import (
	"math"
	"math/cmplx"
)

// invSqrt2 is 1/√2, the amplitude of an equal superposition.
const invSqrt2 = 0.7071067811865476

// Vector is an ordered pair of complex amplitudes. The zero value is
// the null vector; use Zero or PlusState for the usual basis states.
type Vector struct {
	A complex128 // amplitude of |0⟩
	B complex128 // amplitude of |1⟩
}

// New builds a Vector from two amplitudes. No normalization is applied.
func New(a, b complex128) Vector {
	return Vector{A: a, B: b}
}

// Zero returns the |0⟩ basis state (1, 0).
func Zero() Vector {
	return Vector{A: 1}
}

// PlusState returns the equal superposition (1/√2, 1/√2).
func PlusState() Vector {
	return Vector{A: complex(invSqrt2, 0), B: complex(invSqrt2, 0)}
}

// Norm returns the Euclidean norm √(|A|² + |B|²).
func (v Vector) Norm() float64 {
	a, b := cmplx.Abs(v.A), cmplx.Abs(v.B)

	return math.Sqrt(a*a + b*b)
}

// IsUnit reports whether the norm is within tol of 1.
func (v Vector) IsUnit(tol float64) bool {
	return math.Abs(v.Norm()-1) <= tol
}

// RotateX applies the Rx(theta) gate and returns the rotated vector:
//
//	A' =  cos(theta/2)·A − i·sin(theta/2)·B
//	B' = −i·sin(theta/2)·A + cos(theta/2)·B
//
// theta is in radians and may have any sign. Rx is unitary, so the
// input norm is preserved (up to floating-point error). theta == 0
// returns v unchanged, bit for bit.
func (v Vector) RotateX(theta float64) Vector {
	if theta == 0 {
		return v
	}

	half := theta / 2
	c := complex(math.Cos(half), 0)
	s := complex(0, -math.Sin(half)) // −i·sin(θ/2)

	return Vector{
		A: c*v.A + s*v.B,
		B: s*v.A + c*v.B,
	}
}
