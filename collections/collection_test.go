package collections_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hasbyte1/go-collect/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// kv is one pair of a keyed collection in expected values.
type kv struct {
	K string
	V any
}

// norm turns collections and ordered maps into []any and []kv so they can
// be compared with cmp.
func norm(v any) any {
	switch x := v.(type) {
	case *collections.Collection:
		return norm(x.ToArray())
	case *orderedmap.OrderedMap[string, any]:
		out := []kv{}
		for p := x.Oldest(); p != nil; p = p.Next() {
			out = append(out, kv{p.Key, norm(p.Value)})
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = norm(item)
		}
		return out
	}
	return v
}

func assertItems(t *testing.T, got *collections.Collection, want any) {
	t.Helper()
	if diff := cmp.Diff(want, norm(got)); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func assertEqual(t *testing.T, got, want any) {
	t.Helper()
	if diff := cmp.Diff(want, norm(got)); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
}

func people() *collections.Collection {
	return collections.Make([]any{
		map[string]any{"name": "John", "age": 30, "gender": "male"},
		map[string]any{"name": "Jane", "age": 25, "gender": "female"},
		map[string]any{"name": "Bob", "age": 35, "gender": "male"},
	})
}

func keyed(pairs ...any) *collections.Collection {
	c := collections.Empty()
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Put(pairs[i], pairs[i+1])
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{"nil", nil, []any{}},
		{"slice", []any{1, 2, 3}, []any{1, 2, 3}},
		{"typed slice", []string{"a", "b"}, []any{"a", "b"}},
		{"scalar", "x", []any{"x"}},
		{"map sorted by key", map[string]any{"b": 2, "a": 1}, []kv{{"a", 1}, {"b", 2}}},
		{"numeric string keys", map[string]any{"1": "a", "0": "b"}, []any{"b", "a"}},
		{"entries", []collections.Entry{{Key: collections.StringKey("x"), Value: 1}}, []kv{{"x", 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertItems(t, collections.Make(tt.input), tt.want)
		})
	}
}

func TestMakeOrderedMapKeepsOrder(t *testing.T) {
	m := orderedmap.New[string, any]()
	m.Set("z", 1)
	m.Set("a", 2)
	assertItems(t, collections.Make(m), []kv{{"z", 1}, {"a", 2}})
}

func TestMakeCopiesCollection(t *testing.T) {
	src := collections.Of(1, 2)
	cp := collections.Make(src)
	cp.Push(3)
	if src.Count() != 2 {
		t.Fatalf("source changed: %v", src.Items())
	}
}

func TestMakeFromIterators(t *testing.T) {
	seq := func(yield func(any) bool) {
		for _, v := range []any{"a", "b"} {
			if !yield(v) {
				return
			}
		}
	}
	assertItems(t, collections.Make(seq), []any{"a", "b"})
	assertItems(t, collections.Make(people().Iter()), norm(people()))
}

func TestRange(t *testing.T) {
	assertItems(t, collections.Range(1, 3), []any{1, 2, 3})
	assertItems(t, collections.Range(3, 1), []any{3, 2, 1})
	assertItems(t, collections.Range(2, 2), []any{2})
}

func TestTimes(t *testing.T) {
	assertItems(t, collections.Times(3, func(n int) any { return n * n }), []any{1, 4, 9})
	assertItems(t, collections.Times(2, nil), []any{1, 2})
	assertItems(t, collections.Times(0, nil), []any{})
}

func TestWrapUnwrap(t *testing.T) {
	assertItems(t, collections.Wrap(nil), []any{})
	assertItems(t, collections.Wrap("a"), []any{"a"})
	assertItems(t, collections.Wrap([]int{1, 2}), []any{1, 2})

	c := collections.Of(1)
	if got := collections.Unwrap(c); len(got.([]collections.Entry)) != 1 {
		t.Fatalf("Unwrap = %v", got)
	}
	if got := collections.Unwrap("x"); got != "x" {
		t.Fatalf("Unwrap(x) = %v", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys
// ─────────────────────────────────────────────────────────────────────────────

func TestKeyOf(t *testing.T) {
	tests := []struct {
		in    any
		isInt bool
		text  string
	}{
		{3, true, "3"},
		{"3", true, "3"},
		{"-7", true, "-7"},
		{"03", false, "03"},
		{"+1", false, "+1"},
		{"1.5", false, "1.5"},
		{2.9, true, "2"},
		{true, true, "1"},
		{nil, false, ""},
		{"name", false, "name"},
	}
	for _, tt := range tests {
		k := collections.KeyOf(tt.in)
		if k.IsInt() != tt.isInt || k.String() != tt.text {
			t.Errorf("KeyOf(%#v) = %v (int=%v), want %q (int=%v)", tt.in, k, k.IsInt(), tt.text, tt.isInt)
		}
	}
	if collections.KeyOf("3") != collections.IntKey(3) {
		t.Error(`KeyOf("3") should equal IntKey(3)`)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestCountAndEmptiness(t *testing.T) {
	c := collections.Of(1, 2, 3)
	if c.Count() != 3 || c.IsEmpty() || !c.IsNotEmpty() || c.ContainsOneItem() {
		t.Fatal("unexpected size predicates for three items")
	}
	if !collections.Empty().IsEmpty() {
		t.Fatal("Empty should be empty")
	}
	if !collections.Of("x").ContainsOneItem() {
		t.Fatal("one item expected")
	}
}

func TestGet(t *testing.T) {
	c := keyed("a", 1, "b", nil)
	if got := c.Get("a"); got != 1 {
		t.Fatalf("Get(a) = %v", got)
	}
	if got := c.Get("b", "default"); got != nil {
		t.Fatalf("present nil key should win over default, got %v", got)
	}
	if got := c.Get("z", "default"); got != "default" {
		t.Fatalf("Get(z) = %v", got)
	}
	if got := c.Get("z", func() any { return 42 }); got != 42 {
		t.Fatalf("lazy default = %v", got)
	}
}

func TestHas(t *testing.T) {
	c := keyed("a", 1, "b", 2)
	if !c.Has("a", "b") || c.Has("a", "z") {
		t.Fatal("Has")
	}
	if !c.HasAny("z", "b") || c.HasAny("y", "z") {
		t.Fatal("HasAny")
	}
}

func TestKeysValues(t *testing.T) {
	c := keyed("a", 1, "b", 2)
	assertItems(t, c.Keys(), []any{"a", "b"})
	assertItems(t, c.Values(), []any{1, 2})
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

func TestPutPushUsesNextPosition(t *testing.T) {
	c := collections.Of("a")
	c.Put(5, "x")
	c.Push("y")
	assertItems(t, c, []kv{{"0", "a"}, {"5", "x"}, {"6", "y"}})
}

func TestPrepend(t *testing.T) {
	c := collections.Of(1, 2)
	c.Prepend(0)
	assertItems(t, c, []any{0, 1, 2})

	k := keyed("a", 1, "b", 2)
	k.Prepend(9, "b")
	assertItems(t, k, []kv{{"b", 9}, {"a", 1}})
}

func TestZeroValueCollection(t *testing.T) {
	var c collections.Collection
	if !c.IsEmpty() || c.Get("a") != nil {
		t.Fatal("zero collection should be empty")
	}
	c.Put("a", 1)
	c.Push(2)
	assertItems(t, &c, []kv{{"a", 1}, {"0", 2}})

	var p collections.Collection
	p.Prepend(1, "x")
	assertItems(t, &p, []kv{{"x", 1}})

	var q collections.Collection
	q.Prepend(1)
	assertItems(t, &q, []any{1})
}

func TestForgetPull(t *testing.T) {
	c := keyed("a", 1, "b", 2, "c", 3)
	c.Forget("a", "c")
	assertItems(t, c, []kv{{"b", 2}})

	if got := c.Pull("b"); got != 2 {
		t.Fatalf("Pull = %v", got)
	}
	if got := c.Pull("b", "gone"); got != "gone" {
		t.Fatalf("Pull default = %v", got)
	}
	if !c.IsEmpty() {
		t.Fatal("expected empty after Pull")
	}
}

func TestPopShift(t *testing.T) {
	c := collections.Of(1, 2, 3)
	if v, ok := c.Pop(); !ok || v != 3 {
		t.Fatalf("Pop = %v, %v", v, ok)
	}
	c.Push(4)
	assertItems(t, c, []any{1, 2, 4})

	if v, ok := c.Shift(); !ok || v != 1 {
		t.Fatalf("Shift = %v, %v", v, ok)
	}
	assertItems(t, c, []any{2, 4})

	if _, ok := collections.Empty().Pop(); ok {
		t.Fatal("Pop on empty should report false")
	}
	if _, ok := collections.Empty().Shift(); ok {
		t.Fatal("Shift on empty should report false")
	}
}

func TestPopNShiftN(t *testing.T) {
	assertItems(t, collections.Of(1, 2, 3).PopN(2), []any{3, 2})
	assertItems(t, collections.Of(1, 2, 3).ShiftN(5), []any{1, 2, 3})
}

func TestTransform(t *testing.T) {
	c := collections.Of(1, 2)
	c.Transform(func(v any, _ collections.Key) any { return v.(int) * 10 })
	assertItems(t, c, []any{10, 20})
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexed access
// ─────────────────────────────────────────────────────────────────────────────

func TestOffsets(t *testing.T) {
	c := collections.Of("a")
	c.OffsetSet(nil, "b")
	c.OffsetSet("k", "v")
	if !c.OffsetExists(1) || !c.OffsetExists("k") {
		t.Fatal("OffsetExists")
	}
	if v, err := c.OffsetGet("k"); err != nil || v != "v" {
		t.Fatalf("OffsetGet = %v, %v", v, err)
	}
	c.OffsetUnset("k")
	if _, err := c.OffsetGet("k"); !errors.Is(err, collections.ErrKeyNotFound) {
		t.Fatalf("want ErrKeyNotFound, got %v", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestIterRestarts(t *testing.T) {
	c := keyed("a", 1, "b", 2)
	for range 2 {
		var keys []string
		for k, v := range c.Iter() {
			keys = append(keys, k.String())
			_ = v
		}
		if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
			t.Fatalf("Iter keys (-want +got):\n%s", diff)
		}
	}
}

func TestEachStops(t *testing.T) {
	var seen []any
	collections.Of(1, 2, 3).Each(func(v any, _ collections.Key) bool {
		seen = append(seen, v)
		return v != 2
	})
	if diff := cmp.Diff([]any{1, 2}, seen); diff != "" {
		t.Fatalf("Each (-want +got):\n%s", diff)
	}
}

func TestEachSpread(t *testing.T) {
	var sums []int
	collections.Make([]any{[]any{1, 2}, []any{3, 4}}).EachSpread(func(args ...any) bool {
		sums = append(sums, args[0].(int)+args[1].(int))
		return true
	})
	if diff := cmp.Diff([]int{3, 7}, sums); diff != "" {
		t.Fatalf("EachSpread (-want +got):\n%s", diff)
	}
}

func TestDerivationLeavesReceiverUntouched(t *testing.T) {
	c := collections.Of(3, 1, 2)
	_ = c.Sort(nil)
	_ = c.Map(func(v any, _ collections.Key) any { return 0 })
	_ = c.Filter(nil).Reverse().Chunk(1)
	assertItems(t, c, []any{3, 1, 2})
}
