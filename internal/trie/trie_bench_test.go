package trie

import (
	"math/rand/v2"
	"testing"
)

func generateRandomSequences(count, maxLength int) [][]rune {
	sequences := make([][]rune, count)
	for i := range count {
		length := rand.IntN(maxLength) + 1
		sequence := make([]rune, length)
		for j := range length {
			sequence[j] = rune('a' + rand.IntN(26))
		}
		sequences[i] = sequence
	}
	return sequences
}

var benchSizes = []struct {
	name      string
	count     int
	maxLength int
}{
	{"Small", 100, 5},
	{"Medium", 1000, 10},
	{"Large", 10000, 20},
}

func BenchmarkInsert(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			sequences := generateRandomSequences(size.count, size.maxLength)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				tr := New[rune]()
				for _, seq := range sequences {
					tr.Insert(seq)
				}
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			sequences := generateRandomSequences(size.count, size.maxLength)
			probes := generateRandomSequences(size.count, size.maxLength)
			tr := New[rune]()
			for _, seq := range sequences {
				tr.Insert(seq)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for _, p := range probes {
					tr.Contains(p)
				}
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			sequences := generateRandomSequences(size.count, size.maxLength)

			trie1 := New[rune]()
			trie2 := New[rune]()
			for _, seq := range sequences {
				trie1.Insert(seq)
				trie2.Insert(seq)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				trie1.Equal(trie2)
			}
		})
	}
}

func BenchmarkDebugString(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			sequences := generateRandomSequences(size.count, size.maxLength)
			tr := New[rune]()
			for _, seq := range sequences {
				tr.Insert(seq)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tr.DebugString()
			}
		})
	}
}
