package entropy

import (
	"errors"
	"math"
)

// sumTol bounds how far a distribution's total may drift from 1 before
// it is rejected. Loose enough for accumulated float error, tight
// enough to catch unnormalized counts.
const sumTol = 1e-9

// Sentinel errors returned by the entropy computations.
var (
	// ErrEmptyDistribution indicates a distribution with no outcomes.
	ErrEmptyDistribution = errors.New("entropy: distribution is empty")

	// ErrInvalidProbability indicates a negative or NaN term, or terms
	// that do not sum to 1 within tolerance.
	ErrInvalidProbability = errors.New("entropy: probabilities must be non-negative and sum to 1")
)

// Shannon returns the Shannon entropy H(p) = −Σ pᵢ·ln(pᵢ) of the given
// probability distribution, in nats.
//
// Every term must be in [0, 1] and the terms must sum to 1 within a
// small tolerance; zero terms are skipped. The result is 0 for a
// degenerate (single-certain-outcome) distribution and ln(n) for the
// uniform distribution over n outcomes.
//
// Complexity: O(n), pure.
func Shannon(dist []float64) (float64, error) {
	if len(dist) == 0 {
		return 0, ErrEmptyDistribution
	}

	sum := 0.0
	for _, p := range dist {
		if math.IsNaN(p) || p < 0 {
			return 0, ErrInvalidProbability
		}
		sum += p
	}
	if math.Abs(sum-1) > sumTol {
		return 0, ErrInvalidProbability
	}

	h := 0.0
	for _, p := range dist {
		if p == 0 {
			continue
		}
		h -= p * math.Log(p)
	}

	return h, nil
}

// Binary returns the entropy of a two-outcome distribution {p, 1−p},
// in nats. p must lie in [0, 1].
func Binary(p float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, ErrInvalidProbability
	}

	return Shannon([]float64{p, 1 - p})
}
