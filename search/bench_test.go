package search_test

import (
	"testing"

	"github.com/katalvlaran/algolab/search"
)

// benchSeq returns 0, 2, 4, ... so odd targets are always absent.
func benchSeq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = 2 * i
	}

	return s
}

func BenchmarkBinary_1M(b *testing.B) {
	seq := benchSeq(1 << 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Binary(seq, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBinaryRecursive_1M(b *testing.B) {
	seq := benchSeq(1 << 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.BinaryRecursive(seq, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLinear_1M(b *testing.B) {
	seq := benchSeq(1 << 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.Linear(seq, 1)
	}
}
