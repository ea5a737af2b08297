package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-collect/collections"
)

func TestMap(t *testing.T) {
	doubled := collections.Of(1, 2, 3).Map(func(v any, _ collections.Key) any { return v.(int) * 2 })
	assertItems(t, doubled, []any{2, 4, 6})

	upper := keyed("a", 1, "b", 2).Map(func(v any, k collections.Key) any { return k.String() + "!" })
	assertItems(t, upper, []kv{{"a", "a!"}, {"b", "b!"}})
}

func TestMapWithKeys(t *testing.T) {
	got := people().MapWithKeys(func(v any, _ collections.Key) (any, any) {
		p := v.(map[string]any)
		return p["name"], p["age"]
	})
	assertItems(t, got, []kv{{"John", 30}, {"Jane", 25}, {"Bob", 35}})
}

func TestMapSpread(t *testing.T) {
	c := collections.Make([]any{[]any{1, 2}, []any{3, 4}})
	got := c.MapSpread(func(args ...any) any { return args[0].(int) + args[1].(int) })
	assertItems(t, got, []any{3, 7})
}

func TestFlatMap(t *testing.T) {
	got := collections.Of(1, 2).FlatMap(func(v any, _ collections.Key) any { return []any{v, v} })
	assertItems(t, got, []any{1, 1, 2, 2})
}

func TestKeyBy(t *testing.T) {
	assertItems(t, people().KeyBy("name").Keys(), []any{"John", "Jane", "Bob"})

	last := people().KeyBy("gender").Map(func(v any, _ collections.Key) any {
		return v.(map[string]any)["name"]
	})
	assertItems(t, last, []kv{{"male", "Bob"}, {"female", "Jane"}})
}

func TestFlip(t *testing.T) {
	assertItems(t, keyed("a", 1, "b", "x").Flip(), []kv{{"1", "a"}, {"x", "b"}})
	assertItems(t, collections.Make([]any{"a", 2.5, "b"}).Flip(), []kv{{"a", 0}, {"b", 2}})
}

func TestPluck(t *testing.T) {
	assertItems(t, people().Pluck("name"), []any{"John", "Jane", "Bob"})
	assertItems(t, people().Pluck("age", "name"), []kv{{"John", 30}, {"Jane", 25}, {"Bob", 35}})

	nested := collections.Make([]any{
		map[string]any{"a": map[string]any{"b": 1}},
		map[string]any{"a": map[string]any{}},
	})
	assertItems(t, nested.Pluck("a.b"), []any{1, nil})
}

func TestReverse(t *testing.T) {
	assertItems(t, collections.Of(1, 2, 3).Reverse(), []any{3, 2, 1})
	assertItems(t, keyed("a", 1, "b", 2).Reverse(), []kv{{"b", 2}, {"a", 1}})
}

func TestCollapse(t *testing.T) {
	c := collections.Make([]any{[]any{1, 2}, []any{3}, 4, collections.Of(5)})
	assertItems(t, c.Collapse(), []any{1, 2, 3, 5})
}

func TestFlatten(t *testing.T) {
	c := collections.Make([]any{1, []any{2, []any{3}}})
	assertItems(t, c.Flatten(), []any{1, 2, 3})
	assertItems(t, c.Flatten(1), []any{1, 2, []any{3}})

	maps := collections.Make(map[string]any{"a": map[string]any{"b": "x"}, "c": "y"})
	assertItems(t, maps.Flatten(), []any{"x", "y"})
}

func TestCombine(t *testing.T) {
	got, err := collections.Of("a", "b").Combine([]any{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	assertItems(t, got, []kv{{"a", 1}, {"b", 2}})

	if _, err := collections.Of("a").Combine([]any{1, 2}); !errors.Is(err, collections.ErrMismatchedLengths) {
		t.Fatalf("want ErrMismatchedLengths, got %v", err)
	}
}

func TestConcat(t *testing.T) {
	assertItems(t, collections.Of(1).Concat([]any{2, 3}), []any{1, 2, 3})
	assertItems(t, keyed("a", 1).Concat(keyed("b", 2)), []kv{{"a", 1}, {"0", 2}})
}

func TestZip(t *testing.T) {
	got := collections.Of(1, 2, 3).Zip([]any{"a", "b", "c"})
	assertItems(t, got, []any{[]any{1, "a"}, []any{2, "b"}, []any{3, "c"}})

	short := collections.Of(1, 2, 3).Zip([]any{"a"}, []any{true, false})
	assertItems(t, short, []any{[]any{1, "a", true}})
}

func TestPad(t *testing.T) {
	c := collections.Of(1, 2)
	assertItems(t, c.Pad(4, 0), []any{1, 2, 0, 0})
	assertItems(t, c.Pad(-4, 0), []any{0, 0, 1, 2})
	assertItems(t, c.Pad(1, 0), []any{1, 2})
	assertItems(t, keyed("a", 1).Pad(2, nil), []kv{{"a", 1}, {"0", nil}})
}

func TestDot(t *testing.T) {
	c := collections.Make(map[string]any{
		"a": map[string]any{"b": 1, "c": []any{2}},
		"d": 3,
		"e": []any{},
	})
	assertItems(t, c.Dot(), []kv{{"a.b", 1}, {"a.c.0", 2}, {"d", 3}, {"e", []any{}}})
}

func TestUndot(t *testing.T) {
	c := keyed("a.b", 1, "a.c.0", 2, "d", 3)
	assertItems(t, c.Undot(), []kv{
		{"a", []kv{{"b", 1}, {"c", []any{2}}}},
		{"d", 3},
	})
}

func TestUndotLeavesSourceNested(t *testing.T) {
	inner := keyed("x", 1)
	c := keyed("a", inner, "a.y", 2)
	assertItems(t, c.Undot(), []kv{{"a", []kv{{"x", 1}, {"y", 2}}}})
	assertItems(t, inner, []kv{{"x", 1}})
}
