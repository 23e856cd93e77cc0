// Package random provides the single seedable random source owned by a
// simulation run.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a goroutine-safe, seedable random source. Two sources created
// with the same non-zero seed produce identical sequences when called in
// the same order.
type Source struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// New creates a Source. A zero seed selects a time-based seed.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the effective seed, useful to replay a run.
func (s *Source) Seed() int64 { return s.seed }

// Int63n returns a value in [0, n). n must be positive.
func (s *Source) Int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63n(n)
}

// Duration returns a uniformly distributed duration in [min, max). When
// max <= min the result is min.
func (s *Source) Duration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(s.Int63n(int64(max-min)))
}
