// Neighbor ordering strategies.
//
// Goals:
//   - Determinism: same seed ⇒ identical exploration order for the n-th search of a Finder.
//   - Encapsulation: no time-based sources; the seed is always explicit.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every search gets its own stream,
//     derived from the seed and the search's sequence number.

package ladder

import (
	"math/rand"
	"sync/atomic"
)

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Arranger returns the order in which one walk explores a word's neighbors.
// It must not modify its argument, which is shared with the adjacency cache.
type Arranger func(neighbors []string) []string

// Order produces one Arranger per search.
type Order interface {
	// Begin is called once at the start of every search. A nil Arranger keeps
	// the adjacency model's order.
	Begin() Arranger
}

type identityOrder struct{}

func (identityOrder) Begin() Arranger { return nil }

// IdentityOrder explores neighbors in the order the adjacency model emits them.
func IdentityOrder() Order { return identityOrder{} }

// ShuffleOrder explores neighbors in a seeded pseudo-random order.
type ShuffleOrder struct {
	seed  int64
	calls atomic.Uint64
}

// SeededShuffle returns a ShuffleOrder. seed==0 selects a fixed default seed.
func SeededShuffle(seed int64) *ShuffleOrder {
	if seed == 0 {
		seed = defaultSeed
	}
	return &ShuffleOrder{seed: seed}
}

// Seed returns the effective seed.
func (s *ShuffleOrder) Seed() int64 { return s.seed }

// Begin derives an independent stream for the next search.
func (s *ShuffleOrder) Begin() Arranger {
	stream := s.calls.Add(1) - 1
	rng := rand.New(rand.NewSource(deriveSeed(s.seed, stream)))
	return func(neighbors []string) []string {
		out := make([]string, len(neighbors))
		copy(out, neighbors)
		shuffleInPlace(out, rng)
		return out
	}
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shuffleInPlace performs a Fisher–Yates shuffle of a.
func shuffleInPlace(a []string, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
