package collections

import (
	"github.com/hasbyte1/go-collect/arr"
	"github.com/hasbyte1/go-collect/internal/seeded"
)

// Random returns one item chosen at random, or false when the collection
// is empty. Passing a seed makes the choice reproducible.
func (c *Collection) Random(seed ...uint64) (any, bool) {
	return arr.Pick(c.Items(), seeded.From(seed...))
}

// RandomN returns n distinct items chosen at random, in their original
// order and renumbered. n is capped at Count().
//
//	c.RandomN(3, 42) // the same three items for every call with seed 42
func (c *Collection) RandomN(n int, seed ...uint64) *Collection {
	return c.withValues(arr.Random(c.Items(), n, seeded.From(seed...)))
}

// Shuffle returns the items in random order, renumbered. Passing a seed
// makes the order reproducible.
func (c *Collection) Shuffle(seed ...uint64) *Collection {
	return c.withValues(arr.Shuffle(c.Items(), seeded.From(seed...)))
}
