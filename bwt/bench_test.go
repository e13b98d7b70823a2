package bwt_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/betwixt/bwt"
)

// benchInput returns n pseudo-random bytes over a small alphabet, which makes
// rotation comparisons run longer than over uniformly random bytes.
func benchInput(n int) []byte {
	r := rand.New(rand.NewPCG(uint64(n), 42))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + r.IntN(4))
	}
	return b
}

func benchmarkTransform(b *testing.B, n int) {
	s := benchInput(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bwt.Transform(s)
	}
}

func benchmarkInvert(b *testing.B, n int) {
	last, start := bwt.Transform(benchInput(n))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bwt.Invert(last, start); err != nil {
			b.Fatalf("Invert failed: %v", err)
		}
	}
}

// BenchmarkTransform_1K benchmarks the forward transform on 1 KiB.
func BenchmarkTransform_1K(b *testing.B) { benchmarkTransform(b, 1<<10) }

// BenchmarkTransform_64K benchmarks the forward transform on 64 KiB.
func BenchmarkTransform_64K(b *testing.B) { benchmarkTransform(b, 1<<16) }

// BenchmarkInvert_1K benchmarks the inverse transform on 1 KiB.
func BenchmarkInvert_1K(b *testing.B) { benchmarkInvert(b, 1<<10) }

// BenchmarkInvert_64K benchmarks the inverse transform on 64 KiB.
func BenchmarkInvert_64K(b *testing.B) { benchmarkInvert(b, 1<<16) }
