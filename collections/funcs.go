package collections

// This file contains the typed entry and exit points of the package.
// Collection stores values as any; these generic helpers build collections
// from typed Go values and read typed values back out.

// Of creates a positional Collection from a variadic list of items.
//
//	collections.Of(1, 2, 3)
func Of[T any](items ...T) *Collection {
	return FromSlice(items)
}

// FromSlice creates a positional Collection from a slice (copied).
func FromSlice[T any](items []T, opts ...Option) *Collection {
	c := Make(nil, opts...)
	for _, item := range items {
		c.push(item)
	}
	return c
}

// FromMap creates a Collection from a Go map, ordered by key.
func FromMap[V any](m map[string]V, opts ...Option) *Collection {
	return Make(m, opts...)
}

// ValuesOf returns the values of c that hold a T, in order, skipping the
// rest.
//
//	names := collections.ValuesOf[string](users.Pluck("name"))
func ValuesOf[T any](c *Collection) []T {
	out := make([]T, 0, c.Count())
	for _, k := range c.keys {
		if v, ok := c.items[k].(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// WhereInstanceOf keeps the items whose dynamic type is T (or implements
// T, when T is an interface). Keys are preserved.
//
//	errs := collections.WhereInstanceOf[error](results)
func WhereInstanceOf[T any](c *Collection) *Collection {
	return c.Filter(func(v any, _ Key) bool {
		_, ok := v.(T)
		return ok
	})
}

// MapInto converts every value with ctor, which typically wraps it in a
// domain type. Keys are preserved.
//
//	users := collections.MapInto(rows, func(row any) User { return NewUser(row) })
func MapInto[T any](c *Collection, ctor func(value any) T) *Collection {
	return c.Map(func(v any, _ Key) any { return ctor(v) })
}
