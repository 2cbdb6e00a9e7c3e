package comparator_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/bitcmp/comparator"
	"github.com/katalvlaran/bitcmp/word"
)

// benchmarkLess runs Less over a fixed set of seeded-random operand pairs
// at the given width and variant. It resets the timer after setup and
// fails on unexpected errors.
func benchmarkLess(b *testing.B, width int, variant comparator.Variant) {
	c, err := comparator.New(width, comparator.WithVariant(variant))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	// Prepare reproducible operand pairs outside the timed loop.
	rng := rand.New(rand.NewSource(1))
	const pairs = 256
	ws := make([]word.Word, 2*pairs)
	for i := range ws {
		w, wErr := word.FromUint64(width, rng.Uint64()&(1<<width-1))
		if wErr != nil {
			b.Fatalf("FromUint64 failed: %v", wErr)
		}
		ws[i] = w
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		j := (i % pairs) * 2
		if _, err = c.Less(ws[j], ws[j+1]); err != nil {
			b.Fatalf("Less failed: %v", err)
		}
	}
}

// BenchmarkLess_RippleChain16 benchmarks the structural chain at width 16.
func BenchmarkLess_RippleChain16(b *testing.B) {
	benchmarkLess(b, 16, comparator.RippleChain)
}

// BenchmarkLess_WordSubtract16 benchmarks the behavioral variant at width 16.
func BenchmarkLess_WordSubtract16(b *testing.B) {
	benchmarkLess(b, 16, comparator.WordSubtract)
}

// BenchmarkLess_RippleChain63 benchmarks the structural chain near the
// maximum width, where the O(width) fold cost is most visible.
func BenchmarkLess_RippleChain63(b *testing.B) {
	benchmarkLess(b, 63, comparator.RippleChain)
}

// BenchmarkLess_WordSubtract63 benchmarks the behavioral variant near the
// maximum width; cost stays O(1) regardless of width.
func BenchmarkLess_WordSubtract63(b *testing.B) {
	benchmarkLess(b, 63, comparator.WordSubtract)
}
