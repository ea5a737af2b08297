package arr

import (
	"math/rand/v2"
	"reflect"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally the first one matching fns[0].
// Returns the zero value and false when items is empty or nothing matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 && fns[0] != nil {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally the last one matching fns[0].
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 && fns[0] != nil {
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Wrapping
// ─────────────────────────────────────────────────────────────────────────────

// Wrap returns value as a sequence: nil becomes an empty slice, any slice or
// array is spread into a []any, and every other value becomes a one-element
// slice.
//
//	Wrap(nil)             // → []any{}
//	Wrap("a")             // → []any{"a"}
//	Wrap([]int{1, 2})     // → []any{1, 2}
func Wrap(value any) []any {
	switch v := value.(type) {
	case nil:
		return []any{}
	case []any:
		return v
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{value}
}

// Value returns v, calling it first when v is a zero-argument producer.
//
//	Value(3)                              // → 3
//	Value(func() any { return "lazy" })   // → "lazy"
func Value(v any) any {
	if fn, ok := v.(func() any); ok {
		return fn()
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a shuffled copy of items using r.
func Shuffle[T any](items []T, r *rand.Rand) []T {
	out := slices.Clone(items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Pick returns one element chosen with r. Returns false for an empty slice.
func Pick[T any](items []T, r *rand.Rand) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.IntN(len(items))], true
}

// Random returns n distinct positions of items chosen with r, in their
// original relative order. n is capped at len(items); n <= 0 yields nil.
func Random[T any](items []T, n int, r *rand.Rand) []T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	n = min(n, len(items))
	picked := r.Perm(len(items))[:n]
	slices.Sort(picked)
	out := make([]T, n)
	for i, idx := range picked {
		out[i] = items[idx]
	}
	return out
}
