package rng

import (
	"math/rand"
	"time"
)

// Stream is a seeded pseudo-random stream of uniforms in [0, 1).
// The same seed always yields the same sequence, which is what makes
// offline replay reproducible. Not safe for concurrent use; each
// simulation owns its own stream.
type Stream struct {
	r *rand.Rand
}

// NewStream creates a stream from an explicit seed
func NewStream(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))} //nolint:gosec // Game randomness, not security critical
}

// NewTimeStream creates a stream seeded from the current time, for
// interactive draws where reproducibility is not needed
func NewTimeStream() *Stream {
	return NewStream(time.Now().UnixNano())
}

// Float64 returns the next uniform in [0, 1)
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}
