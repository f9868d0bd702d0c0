// Package schedule - deterministic randomness for multi-start descents.
//
// All randomness flows from Options.Seed through the helpers here:
//   - same seed, same restart count, same best order on every platform;
//   - no time-based sources anywhere;
//   - each restart runs on its own derived stream, so adding restart k+1
//     never changes what restarts 1..k explore.
//
// math/rand.Rand is not goroutine-safe, and the search never shares one:
// streams are created up front, one per restart, on a single goroutine.
package schedule

import "math/rand"

// defaultSeed backs the seed==0 policy so that the zero Options value
// still optimizes reproducibly.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for the seed, mapping
// seed==0 to defaultSeed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mixSeed folds a parent seed and a stream id into a fresh 64-bit seed
// using the SplitMix64 finalizer (Vigna 2014). The avalanche step keeps
// neighboring stream ids from producing correlated permutations.
//
// Complexity: O(1).
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG derives an independent RNG for one restart from the base
// stream. base.Int63() is consumed so that reusing a stream id still
// yields distinct children; a nil base falls back to defaultSeed.
//
// Complexity: O(1).
func streamRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// randomOrder returns a permutation of 0..n-1 drawn from rng via
// Fisher-Yates; a nil rng uses the default stream. n<=0 yields an empty
// permutation.
//
// Complexity: O(n) time, O(n) space.
func randomOrder(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	var (
		out = make([]int, n)
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		out[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
