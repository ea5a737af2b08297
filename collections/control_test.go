package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-collect/collections"
)

func pushing(v any) collections.Branch {
	return func(c *collections.Collection, _ any) *collections.Collection { return c.Push(v) }
}

func TestWhen(t *testing.T) {
	assertItems(t, collections.Of(1).When(true, pushing(2)), []any{1, 2})
	assertItems(t, collections.Of(1).When(false, pushing(2)), []any{1})
	assertItems(t, collections.Of(1).When(0, pushing(2), pushing(3)), []any{1, 3})

	gotValue := collections.Of(1).When("x", func(c *collections.Collection, v any) *collections.Collection {
		return c.Push(v)
	})
	assertItems(t, gotValue, []any{1, "x"})

	onCount := func(c *collections.Collection) bool { return c.Count() > 1 }
	assertItems(t, collections.Of(1, 2).When(onCount, pushing(3)), []any{1, 2, 3})
}

func TestUnless(t *testing.T) {
	assertItems(t, collections.Of(1).Unless(false, pushing(2)), []any{1, 2})
	assertItems(t, collections.Of(1).Unless(true, pushing(2), pushing(3)), []any{1, 3})
}

func TestWhenEmpty(t *testing.T) {
	assertItems(t, collections.Empty().WhenEmpty(pushing("x")), []any{"x"})
	assertItems(t, collections.Of(1).WhenEmpty(pushing("x")), []any{1})
	assertItems(t, collections.Of(1).WhenNotEmpty(pushing("x")), []any{1, "x"})
	assertItems(t, collections.Empty().WhenNotEmpty(pushing("x"), pushing("y")), []any{"y"})
	assertItems(t, collections.Of(1).UnlessEmpty(pushing("x")), []any{1, "x"})
	assertItems(t, collections.Empty().UnlessNotEmpty(pushing("x")), []any{"x"})
}

func TestPipe(t *testing.T) {
	got := collections.Of(1, 2, 3).Pipe(func(c *collections.Collection) any { return c.Sum(nil) })
	if got != 6 {
		t.Fatalf("Pipe = %v", got)
	}

	type total struct{ n int }
	tot := collections.PipeInto(collections.Of(1, 2), func(c *collections.Collection) total {
		return total{c.Count()}
	})
	if tot.n != 2 {
		t.Fatalf("PipeInto = %+v", tot)
	}

	through := collections.Of(1, 2, 3).PipeThrough(
		func(carry any) any { return carry.(*collections.Collection).Sum(nil) },
		func(carry any) any { return carry.(int) * 2 },
	)
	if through != 12 {
		t.Fatalf("PipeThrough = %v", through)
	}
}

func TestTap(t *testing.T) {
	c := collections.Of(1, 2)
	var seen int
	got := c.Tap(func(copied *collections.Collection) {
		seen = copied.Count()
		copied.Push(3)
	})
	if got != c || seen != 2 {
		t.Fatalf("Tap returned %p (want %p), saw %d items", got, c, seen)
	}
	assertItems(t, c, []any{1, 2})
}

func TestClone(t *testing.T) {
	c := collections.Of(1)
	clone := c.Clone()
	clone.Push(2)
	assertItems(t, c, []any{1})
	assertItems(t, clone, []any{1, 2})
}
