package llrb

import (
	"math/rand"
	"testing"
)

const benchSize = 10_000

func benchKeys(b *testing.B) []int {
	b.Helper()
	return rand.New(rand.NewSource(0)).Perm(benchSize)
}

func BenchmarkOrderedInsert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for v := 0; v < benchSize; v++ {
			tree.Insert(v)
		}
	}
}

func BenchmarkRandomInsert(b *testing.B) {
	keys := benchKeys(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for _, v := range keys {
			tree.Insert(v)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	keys := benchKeys(b)
	tree := New[int]()
	for _, v := range keys {
		tree.Insert(v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Contains(keys[i%len(keys)])
	}
}

func BenchmarkDelete(b *testing.B) {
	keys := benchKeys(b)
	base := New[int]()
	for _, v := range keys {
		base.Insert(v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree := base.Clone()
		b.StartTimer()
		for _, v := range keys[:benchSize/10] {
			tree.Delete(v)
		}
	}
}
