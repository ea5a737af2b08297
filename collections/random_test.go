package collections_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-collect/collections"
)

func TestRandomIsReproducible(t *testing.T) {
	c := ints(1, 20)
	a, okA := c.Random(42)
	b, okB := c.Random(42)
	if !okA || !okB || a != b {
		t.Fatalf("seeded Random differs: %v, %v", a, b)
	}
	if !c.Contains(a) {
		t.Fatalf("Random returned %v, which is not an item", a)
	}
	if _, ok := collections.Empty().Random(); ok {
		t.Fatal("Random of an empty collection")
	}
}

func TestRandomN(t *testing.T) {
	c := ints(1, 20)
	picked := c.RandomN(5, 7)
	if picked.Count() != 5 {
		t.Fatalf("RandomN picked %d items", picked.Count())
	}
	if diff := cmp.Diff(picked.Items(), c.RandomN(5, 7).Items()); diff != "" {
		t.Fatalf("seeded RandomN differs:\n%s", diff)
	}
	if got := picked.Sort(nil).Values().Items(); !cmp.Equal(got, picked.Items()) {
		t.Fatalf("RandomN is not in original order: %v", picked.Items())
	}
	if picked.Unique(nil).Count() != 5 {
		t.Fatalf("RandomN repeated an item: %v", picked.Items())
	}
	if n := c.RandomN(50).Count(); n != 20 {
		t.Fatalf("RandomN(50) picked %d of 20 items", n)
	}
	if n := c.RandomN(0).Count(); n != 0 {
		t.Fatalf("RandomN(0) picked %d items", n)
	}
}

func TestShuffle(t *testing.T) {
	c := ints(1, 20)
	a := c.Shuffle(3)
	if diff := cmp.Diff(a.Items(), c.Shuffle(3).Items()); diff != "" {
		t.Fatalf("seeded Shuffle differs:\n%s", diff)
	}
	assertItems(t, a.Sort(nil).Values(), c.ToArray())
	assertItems(t, a.Keys(), ints(0, 19).ToArray())
}
