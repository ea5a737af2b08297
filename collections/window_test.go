package collections_test

import (
	"math"
	"testing"

	"github.com/hasbyte1/go-collect/collections"
)

func ints(from, to int) *collections.Collection { return collections.Range(from, to) }

func TestChunk(t *testing.T) {
	got := collections.Of("a", "b", "c", "d", "e").Chunk(2)
	assertItems(t, got, []any{[]any{"a", "b"}, []any{"c", "d"}, []any{"e"}})
	assertItems(t, ints(1, 7).Chunk(3).Collapse(), []any{1, 2, 3, 4, 5, 6, 7})
	assertItems(t, ints(1, 3).Chunk(0), []any{})
}

func TestChunkWhile(t *testing.T) {
	got := collections.Of(1, 2, 4, 5, 7).ChunkWhile(func(v any, _ collections.Key, chunk *collections.Collection) bool {
		return v.(int) == chunk.Last(nil).(int)+1
	})
	assertItems(t, got, []any{
		[]any{1, 2},
		[]kv{{"2", 4}, {"3", 5}},
		[]kv{{"4", 7}},
	})
	assertItems(t, collections.Empty().ChunkWhile(nil), []any{})
}

func TestSliding(t *testing.T) {
	windows := ints(1, 6).Sliding(2, 1)
	if n := windows.Count(); n != 5 {
		t.Fatalf("got %d windows, want 5", n)
	}
	assertEqual(t, windows.First(nil), []any{1, 2})
	assertEqual(t, windows.Last(nil), []any{5, 6})

	assertItems(t, ints(1, 6).Sliding(3, 2), []any{[]any{1, 2, 3}, []any{3, 4, 5}})
	assertItems(t, ints(1, 2).Sliding(3, 1), []any{})
}

func TestSplit(t *testing.T) {
	assertItems(t, ints(1, 5).Split(3), []any{[]any{1, 2}, []any{3, 4}, []any{5}})
	assertItems(t, collections.Of(1).Split(3), []any{[]any{1}})
	assertItems(t, ints(1, 10).SplitIn(3), []any{[]any{1, 2, 3, 4}, []any{5, 6, 7, 8}, []any{9, 10}})
	assertItems(t, ints(1, 3).Split(0), []any{})
}

func TestSlice(t *testing.T) {
	c := ints(1, 5)
	assertItems(t, c.Slice(1, 2), []kv{{"1", 2}, {"2", 3}})
	assertItems(t, c.Slice(-2), []kv{{"3", 4}, {"4", 5}})
	assertItems(t, c.Slice(1, -2), []kv{{"1", 2}, {"2", 3}})
	assertItems(t, c.Slice(10), []any{})
}

func TestSplice(t *testing.T) {
	c := ints(1, 5)
	removed := c.Splice(1, 2, "x")
	assertItems(t, removed, []any{2, 3})
	assertItems(t, c, []any{1, "x", 4, 5})

	tail := c.Splice(2, 10)
	assertItems(t, tail, []any{4, 5})
	assertItems(t, c, []any{1, "x"})

	named := keyed("a", 1, 0, 2, "b", 3)
	named.Splice(1, 1)
	assertItems(t, named, []kv{{"a", 1}, {"b", 3}})
}

func TestTakeSkip(t *testing.T) {
	c := ints(1, 5)
	assertItems(t, c.Take(2), []any{1, 2})
	assertItems(t, c.Take(-2), []kv{{"3", 4}, {"4", 5}})
	assertItems(t, c.Skip(3), []any{4, 5})
	assertItems(t, c.Skip(-1), []any{5})
}

func TestTakeUntilWhile(t *testing.T) {
	c := ints(1, 5)
	assertItems(t, c.TakeUntil(3), []any{1, 2})
	assertItems(t, c.TakeUntil(func(v any) bool { return v.(int) > 3 }), []any{1, 2, 3})
	assertItems(t, c.TakeWhile(func(v any, _ collections.Key) bool { return v.(int) < 3 }), []any{1, 2})
	assertItems(t, c.TakeUntil("3"), []any{1, 2, 3, 4, 5})
}

func TestSkipUntilWhile(t *testing.T) {
	c := ints(1, 5)
	assertItems(t, c.SkipUntil(3), []kv{{"2", 3}, {"3", 4}, {"4", 5}})
	assertItems(t, c.SkipWhile(func(v any, _ collections.Key) bool { return v.(int) < 4 }), []kv{{"3", 4}, {"4", 5}})
	assertItems(t, c.SkipUntil(9), []any{})
}

func TestForPage(t *testing.T) {
	c := ints(1, 5)
	assertItems(t, c.ForPage(2, 2), []kv{{"2", 3}, {"3", 4}})
	assertItems(t, c.ForPage(0, 2), []any{1, 2})
	assertItems(t, c.ForPage(4, 2), []any{})
	assertItems(t, c.ForPage(math.MaxInt, 2), []any{})
	assertItems(t, c.ForPage(2, math.MaxInt), []any{})
}

func TestNth(t *testing.T) {
	c := collections.Of("a", "b", "c", "d", "e", "f")
	assertItems(t, c.Nth(2), []any{"a", "c", "e"})
	assertItems(t, c.Nth(2, 1), []any{"b", "d", "f"})
	assertItems(t, c.Nth(4), []any{"a", "e"})
	assertItems(t, c.Nth(0), []any{})
}
