// Package entropy computes Shannon entropy of outcome distributions,
// in nats.
//
// The gate consumes paired alignment-entropy readings; this package is
// where those readings come from. Entropy is reported in nats (natural
// log) so that downstream log-ratio gains stay in one base.
//
// Two entry points:
//
//	h, err := entropy.Shannon([]float64{0.7, 0.2, 0.1})
//	h, err := entropy.Binary(0.9)
//
// Inputs are probability distributions: every term non-negative and the
// terms summing to 1 within a small tolerance. Anything else is
// rejected with a sentinel error. Zero-probability terms contribute
// nothing (lim p→0 of −p·ln p is 0).
package entropy
