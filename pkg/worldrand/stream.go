// Package worldrand provides the single seedable PRNG stream injected into
// the pipeline: every stochastic decision across every stage draws from
// this one stream in a fixed, documented order, so reordering operations
// changes the output. Generalizes a linear congruential generator to a
// uint64 seed and adds the biased-draw helper the culture stage needs.
package worldrand

import "math"

// Stream is a deterministic LCG-based random source. Re-entrant calls
// within a stage must share the same Stream instance so the documented
// draw order is preserved across the whole pipeline run.
type Stream struct {
	state uint64
}

// New creates a Stream seeded from the run's configured seed.
func New(seed uint64) *Stream {
	return &Stream{state: seed}
}

// Next returns the next float64 in [0, 1).
func (s *Stream) Next() float64 {
	// ANSI C rand()-style LCG constants, widened to uint64 state.
	s.state = s.state*1103515245 + 12345
	return float64(s.state%2147483648) / 2147483648.0
}

// NextInRange returns a random float64 in [lo, hi).
func (s *Stream) NextInRange(lo, hi float64) float64 {
	return lo + s.Next()*(hi-lo)
}

// NextInt returns a random integer in [0, n).
func (s *Stream) NextInt(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(s.Next() * float64(n)))
}

// NextBool returns true with the given probability.
func (s *Stream) NextBool(probability float64) bool {
	return s.Next() < probability
}

// Biased draws an integer in [lo, hi) weighted towards lo by the given
// exponent (exponent=1 is uniform; higher exponents bias harder towards
// lo). Used by culture center placement: biased(0, N/2, exponent=5)
// picks mostly top-ranked cells after the caller has sorted by preference.
func (s *Stream) Biased(lo, hi int, exponent float64) int {
	if hi <= lo {
		return lo
	}
	span := float64(hi - lo)
	weighted := math.Pow(s.Next(), exponent) * span
	idx := lo + int(weighted)
	if idx >= hi {
		idx = hi - 1
	}
	return idx
}
