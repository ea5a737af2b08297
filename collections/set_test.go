package collections_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-collect/collections"
)

func TestDiff(t *testing.T) {
	assertItems(t, collections.Of(1, 2, 3, 4).Diff([]any{2, 4}), []kv{{"0", 1}, {"2", 3}})
	assertItems(t, collections.Of(1, 2).Diff([]any{"1"}), []kv{{"1", 2}})

	fold := func(a, b any) int { return strings.Compare(strings.ToLower(a.(string)), strings.ToLower(b.(string))) }
	assertItems(t, collections.Of("a", "B").DiffUsing([]any{"b"}, fold), []any{"a"})
}

func TestDiffAssoc(t *testing.T) {
	c := keyed("a", 1, "b", 2)
	assertItems(t, c.DiffAssoc(map[string]any{"a": 1, "b": 3}), []kv{{"b", 2}})

	fold := func(a, b collections.Key) int {
		return strings.Compare(strings.ToLower(a.String()), strings.ToLower(b.String()))
	}
	assertItems(t, keyed("A", 1, "b", 2).DiffAssocUsing(map[string]any{"a": 1, "b": 3}, fold), []kv{{"b", 2}})
}

func TestDiffKeys(t *testing.T) {
	assertItems(t, keyed("a", 1, "b", 2).DiffKeys(map[string]any{"a": 9}), []kv{{"b", 2}})

	fold := func(a, b collections.Key) int {
		return strings.Compare(strings.ToLower(a.String()), strings.ToLower(b.String()))
	}
	assertItems(t, keyed("A", 1, "b", 2).DiffKeysUsing(map[string]any{"a": 0}, fold), []kv{{"b", 2}})
}

func TestIntersect(t *testing.T) {
	assertItems(t, collections.Of(1, 2, 3).Intersect([]any{"2", 3}), []kv{{"1", 2}, {"2", 3}})
	assertItems(t, keyed("a", 1, "b", 2).IntersectByKeys(map[string]any{"b": 0}), []kv{{"b", 2}})
}

func TestUnion(t *testing.T) {
	assertItems(t, keyed("a", 1).Union(map[string]any{"a": 2, "b": 3}), []kv{{"a", 1}, {"b", 3}})
	assertItems(t, collections.Of(1, 2).Union([]any{9, 8, 7}), []any{1, 2, 7})
}

func TestMerge(t *testing.T) {
	assertItems(t, keyed("a", 1).Merge(map[string]any{"a": 2, "b": 3}), []kv{{"a", 2}, {"b", 3}})
	assertItems(t, collections.Of(1, 2).Merge([]any{3}), []any{1, 2, 3})
	assertItems(t, keyed("x", 1, 5, "y").Merge([]any{"z"}), []kv{{"x", 1}, {"0", "y"}, {"1", "z"}})
}

func TestMergeRecursive(t *testing.T) {
	c := collections.Make(map[string]any{"a": 1, "n": map[string]any{"x": 1}})
	got := c.MergeRecursive(map[string]any{"a": 2, "n": map[string]any{"y": 2}})
	assertItems(t, got, []kv{
		{"a", []any{1, 2}},
		{"n", []kv{{"x", 1}, {"y", 2}}},
	})
}

func TestReplace(t *testing.T) {
	got := collections.Of("a", "b", "c").Replace(map[string]any{"1": "x", "3": "y"})
	assertItems(t, got, []any{"a", "x", "c", "y"})

	nested := collections.Make([]any{"a", []any{"b", "c"}})
	deep := nested.ReplaceRecursive(map[string]any{"1": map[string]any{"1": "d"}})
	assertItems(t, deep, []any{"a", []any{"b", "d"}})
}

func TestUnique(t *testing.T) {
	assertItems(t, collections.Make([]any{1, "1", 2}).Unique(nil), []kv{{"0", 1}, {"2", 2}})
	assertItems(t, collections.Make([]any{1, "1", 2, 1}).UniqueStrict(nil), []any{1, "1", 2})
	assertItems(t, people().Unique("gender").Keys(), []any{0, 1})
}

func TestDuplicates(t *testing.T) {
	got := collections.Of("a", "b", "a", "c", "b").Duplicates(nil)
	assertItems(t, got, []kv{{"2", "a"}, {"4", "b"}})

	mixed := collections.Make([]any{1, "1", 1})
	assertItems(t, mixed.Duplicates(nil), []kv{{"1", "1"}, {"2", 1}})
	assertItems(t, mixed.DuplicatesStrict(nil), []kv{{"2", 1}})

	assertItems(t, people().Duplicates("gender"), []kv{{"2", "male"}})
}
