// Package gate - configuration constants, sentinel errors and the Gate type.
package gate

import (
	"errors"
	"math"
)

// Certified bounds for the scaling factor κ. The interval is closed:
// both endpoints construct successfully.
const (
	// MinKappa is the smallest accepted scaling factor.
	MinKappa = 0.1

	// MaxKappa is the largest accepted scaling factor.
	MaxKappa = 0.3

	// DefaultKappa is the reference scaling factor used by the demos.
	DefaultKappa = 0.2
)

// ErrKappaOutOfRange indicates that the requested scaling factor lies
// outside the certified interval [MinKappa, MaxKappa] (or is NaN).
// It is the only error this package produces, and only at construction.
var ErrKappaOutOfRange = errors.New("gate: kappa must be within [0.1, 0.3]")

// Gate converts paired entropy readings into a veto-clamped rotation
// angle. Its single configuration value, κ, is fixed for the lifetime
// of the instance; the Gate holds no other state, so all methods are
// pure and one instance may be shared freely between goroutines.
type Gate struct {
	kappa float64
}

// New returns a Gate with the given scaling factor.
//
// κ must lie within [MinKappa, MaxKappa], endpoints included; anything
// else (including NaN) fails with ErrKappaOutOfRange.
func New(kappa float64) (*Gate, error) {
	if math.IsNaN(kappa) || kappa < MinKappa || kappa > MaxKappa {
		return nil, ErrKappaOutOfRange
	}

	return &Gate{kappa: kappa}, nil
}

// Kappa returns the scaling factor the Gate was built with.
func (g *Gate) Kappa() float64 {
	return g.kappa
}
