// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so that every random decision in the
// simulation goes through one source and tests can pin the seed.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A seed of 0 uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns an int in [0, n). n <= 0 returns 0.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a float in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// AngleOffset returns a uniform offset in [-spread, spread] radians.
func (s *PRNGService) AngleOffset(spread float64) float64 {
	return s.Range(-spread, spread)
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// WeightedEntry is one row of a weighted table.
type WeightedEntry struct {
	Key    string
	Weight float64
}

// ChooseWeighted does a cumulative-weight draw over entries. Non-positive
// weights never win. An empty or all-zero table returns "".
func (s *PRNGService) ChooseWeighted(entries []WeightedEntry) string {
	if len(entries) == 0 {
		return ""
	}

	total := 0.0
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total <= 0 {
		return ""
	}

	r := s.rng.Float64() * total
	upto := 0.0
	last := ""
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		upto += e.Weight
		last = e.Key
		if r < upto {
			return e.Key
		}
	}
	// float rounding at the top edge
	return last
}

// Jitter returns v scaled by a random factor in [1-f, 1+f].
func (s *PRNGService) Jitter(v, f float64) float64 {
	return v * (1 + s.Range(-math.Abs(f), math.Abs(f)))
}
