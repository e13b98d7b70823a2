// Package selftest - deterministic randomness for generated cases.
//
// Every case draws from its own stream derived from (seed, case index), so
// the generated inputs do not depend on how cases are scheduled across
// workers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each case builds its own stream.
package selftest

import "math/rand"

// deriveSeed turns the run seed and a case index into the seed of that
// case's stream. Neighbouring indices land far apart (SplitMix64 step plus
// finalizer), so case i sees the same bytes whether it runs first or last.
func deriveSeed(seed int64, index uint64) int64 {
	const gamma = 0x9e3779b97f4a7c15
	z := (uint64(seed) ^ (index + gamma)) + gamma
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return int64(z ^ z>>31)
}

// caseRNG returns the deterministic stream of case i under seed.
func caseRNG(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(i))))
}

// randText returns n printable bytes in [32, 127].
//
// Complexity: O(n).
func randText(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(32 + rng.Intn(96))
	}
	return b
}
