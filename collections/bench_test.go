package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-collect/collections"
)

// makeInts creates a positional collection of 1..n for benchmarks.
func makeInts(n int) *collections.Collection {
	return collections.Range(1, n)
}

func makeRecords(n int) *collections.Collection {
	return collections.Times(n, func(i int) any {
		return map[string]any{"id": i, "group": i % 10, "score": (i * 7919) % 1000}
	})
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(v any, _ collections.Key) bool { return v.(int)%2 == 0 })
	}
}

func BenchmarkMap(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Map(func(v any, _ collections.Key) any { return v.(int) * 2 })
	}
}

func BenchmarkWhere(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Where("score", ">=", 500)
	}
}

func BenchmarkSortBy(b *testing.B) {
	c := makeRecords(10_000).Shuffle(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.SortBy("score")
	}
}

func BenchmarkGroupBy(b *testing.B) {
	c := makeRecords(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GroupBy("group")
	}
}

func BenchmarkUniqueStrict(b *testing.B) {
	c := makeRecords(10_000).Pluck("score")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.UniqueStrict(nil)
	}
}

func BenchmarkInvoke(b *testing.B) {
	c := makeRecords(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Invoke("sum", "score"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToJSON(b *testing.B) {
	c := makeRecords(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.ToJSON(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromJSON(b *testing.B) {
	data, err := makeRecords(1_000).ToJSON()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := collections.FromJSON(data); err != nil {
			b.Fatal(err)
		}
	}
}
