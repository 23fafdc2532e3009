package qstate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/episteme13-hash/meta-cew-qim-v5/qstate"
)

const tol = 1e-12

// TestRotateX_ZeroIsIdentity verifies that theta=0 returns the input
// vector unchanged, with no floating-point drift at all.
func TestRotateX_ZeroIsIdentity(t *testing.T) {
	vectors := []qstate.Vector{
		qstate.Zero(),
		qstate.PlusState(),
		qstate.New(complex(0.6, 0.1), complex(-0.2, 0.77)), // not normalized, still trusted
	}

	for _, v := range vectors {
		got := v.RotateX(0)
		assert.Equal(t, v, got, "Rx(0) must be the exact identity")
	}
}

// TestRotateX_PreservesNorm checks unitarity across angles of every
// sign, including angles upstream code would never produce.
func TestRotateX_PreservesNorm(t *testing.T) {
	v := qstate.PlusState()

	for _, theta := range []float64{-math.Pi, -0.4581, -1e-9, 1e-9, 0.01906, 0.4581, 1.0, math.Pi, 2 * math.Pi} {
		got := v.RotateX(theta)
		assert.InDelta(t, v.Norm(), got.Norm(), 1e-12, "Rx(%v) changed the norm", theta)
	}
}

// TestRotateX_KnownAngle pins the Rx(π) action on |0⟩: a half turn
// maps (1,0) to (0,−i).
func TestRotateX_KnownAngle(t *testing.T) {
	got := qstate.Zero().RotateX(math.Pi)

	assert.InDelta(t, 0, real(got.A), tol)
	assert.InDelta(t, 0, imag(got.A), tol)
	assert.InDelta(t, 0, real(got.B), tol)
	assert.InDelta(t, -1, imag(got.B), tol)
}

// TestRotateX_DoesNotMutateReceiver confirms value semantics: rotating
// a vector leaves the original untouched.
func TestRotateX_DoesNotMutateReceiver(t *testing.T) {
	v := qstate.PlusState()
	before := v

	_ = v.RotateX(1.25)

	assert.Equal(t, before, v, "receiver must not be mutated")
}

// TestNorm_And_IsUnit covers the norm helpers on unit and non-unit input.
func TestNorm_And_IsUnit(t *testing.T) {
	assert.InDelta(t, 1.0, qstate.Zero().Norm(), tol)
	assert.InDelta(t, 1.0, qstate.PlusState().Norm(), tol)
	assert.True(t, qstate.PlusState().IsUnit(1e-9))

	stretched := qstate.New(complex(3, 0), complex(4, 0))
	assert.InDelta(t, 5.0, stretched.Norm(), tol)
	assert.False(t, stretched.IsUnit(1e-9))
}

// TestRotateX_Composition verifies Rx(a) then Rx(b) equals Rx(a+b),
// the group property of X-axis rotations.
func TestRotateX_Composition(t *testing.T) {
	v := qstate.New(complex(0.6, 0), complex(0, 0.8))

	step := v.RotateX(0.3).RotateX(0.7)
	direct := v.RotateX(1.0)

	assert.InDelta(t, real(direct.A), real(step.A), tol)
	assert.InDelta(t, imag(direct.A), imag(step.A), tol)
	assert.InDelta(t, real(direct.B), real(step.B), tol)
	assert.InDelta(t, imag(direct.B), imag(step.B), tol)
}
