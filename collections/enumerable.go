package collections

import "iter"

// Arrayable is implemented by values that can convert themselves into a
// plain nested structure ([]any, maps, ordered maps, scalars). Make and
// ToArray unwrap Arrayable values through it.
type Arrayable interface {
	ToArray() any
}

// Jsonable is implemented by values that can render themselves as JSON
// text. Make and ToArray decode that text, keeping object key order.
type Jsonable interface {
	ToJSON() ([]byte, error)
}

// Enumerable is the read-only surface of [Collection].
//
// Accept Enumerable in your own functions when they only inspect a
// collection.
type Enumerable interface {
	// All returns a snapshot of the pairs in order.
	All() []Entry

	// Count returns the number of items.
	Count() int

	// Get returns the value under key, or the default.
	Get(key any, def ...any) any

	// Has reports whether every key is present.
	Has(keys ...any) bool

	// IsEmpty reports whether the collection holds no items.
	IsEmpty() bool

	// Iter returns a restartable iterator over the pairs.
	Iter() iter.Seq2[Key, any]

	// ToArray returns the plain nested structure.
	ToArray() any
}

var (
	_ Enumerable = (*Collection)(nil)
	_ Arrayable  = (*Collection)(nil)
)
