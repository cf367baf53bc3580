package ladder_test

import (
	"testing"

	"github.com/katalvlaran/wordlink/ladder"
)

// BenchmarkFind_Cube measures aaaa → dddd over every 4-letter word on {a,b,c,d}
// (256 words) with a warm cache.
func BenchmarkFind_Cube(b *testing.B) {
	f := newFinder(b, cube("abcd", 4))
	_, _ = f.Find("aaaa", "dddd")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Find("aaaa", "dddd")
	}
}

// BenchmarkFind_ColdCache rebuilds the Finder each iteration so every lookup misses.
func BenchmarkFind_ColdCache(b *testing.B) {
	words := cube("abcd", 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := newFinder(b, words, ladder.WithVariableLength())
		_, _ = f.Find("aaaa", "dddd")
	}
}
