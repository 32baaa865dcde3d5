// Package rng is the single random stream shared by map generation, room
// strategy selection, mob spawning and AI.
package rng

import "math/rand"

// Source yields uniform integers in the half-open range [0, n).
type Source interface {
	Range(n int) int
}

// Stream is the process-wide Source. Seed it once at startup.
type Stream struct {
	r    *rand.Rand
	seed int64
}

func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// Range returns a uniform integer in [0, n). n must be positive.
func (s *Stream) Range(n int) int {
	if n <= 0 {
		panic("rng: Range called with non-positive bound")
	}
	return s.r.Intn(n)
}

func (s *Stream) Seed() int64 { return s.seed }

// Between returns a uniform integer in [lo, hi). hi must be greater than lo.
func Between(src Source, lo, hi int) int {
	return lo + src.Range(hi-lo)
}
