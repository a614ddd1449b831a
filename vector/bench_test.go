package vector_test

import (
	"testing"

	"github.com/katalvlaran/dynarr/vector"
)

// benchmarkAppend pushes n elements into a vector, optionally reserving
// the full capacity up front. It resets the timer before the loop and
// fails on unexpected errors.
func benchmarkAppend(b *testing.B, n int, reserve bool) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		if reserve {
			if err := v.Reserve(n); err != nil {
				b.Fatalf("Reserve failed: %v", err)
			}
		}
		for k := 0; k < n; k++ {
			if err := v.PushBack(k); err != nil {
				b.Fatalf("PushBack failed: %v", err)
			}
		}
	}
}

// BenchmarkPushBack_Amortized1k appends 1 000 elements with doubling growth.
func BenchmarkPushBack_Amortized1k(b *testing.B) {
	benchmarkAppend(b, 1_000, false)
}

// BenchmarkPushBack_Amortized100k appends 100 000 elements with doubling growth.
func BenchmarkPushBack_Amortized100k(b *testing.B) {
	benchmarkAppend(b, 100_000, false)
}

// BenchmarkPushBack_Reserved1k appends 1 000 elements into pre-reserved capacity.
func BenchmarkPushBack_Reserved1k(b *testing.B) {
	benchmarkAppend(b, 1_000, true)
}

// BenchmarkPushBack_Reserved100k appends 100 000 elements into pre-reserved capacity.
func BenchmarkPushBack_Reserved100k(b *testing.B) {
	benchmarkAppend(b, 100_000, true)
}

// BenchmarkClone_10k measures the copy constructor on a 10 000-element vector.
func BenchmarkClone_10k(b *testing.B) {
	src, err := vector.NewSized[int](10_000)
	if err != nil {
		b.Fatalf("NewSized failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := src.Clone()
		if err != nil {
			b.Fatalf("Clone failed: %v", err)
		}
		_ = c
	}
}

// BenchmarkCompare_Equal10k measures lexicographic comparison of two equal
// 10 000-element vectors (worst case: full scan).
func BenchmarkCompare_Equal10k(b *testing.B) {
	x, err := vector.NewFilled(10_000, 7)
	if err != nil {
		b.Fatalf("NewFilled failed: %v", err)
	}
	y, err := x.Clone()
	if err != nil {
		b.Fatalf("Clone failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if vector.Compare(x, y) != 0 {
			b.Fatal("equal vectors must compare 0")
		}
	}
}

// BenchmarkAll_Iterate10k measures the forward view over 10 000 elements.
func BenchmarkAll_Iterate10k(b *testing.B) {
	v, err := vector.NewSized[int](10_000)
	if err != nil {
		b.Fatalf("NewSized failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for _, x := range v.All() {
			sum += x
		}
		_ = sum
	}
}
