package collections

import (
	"fmt"

	"github.com/hasbyte1/go-collect/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the items for which fn returns true. A nil fn keeps the
// truthy items. Keys are preserved; call Values to renumber.
func (c *Collection) Filter(fn Predicate) *Collection {
	out := c.derive()
	for _, k := range c.keys {
		v := c.items[k]
		if fn == nil {
			if Truthy(v) {
				out.set(k, v)
			}
			continue
		}
		if fn(v, k) {
			out.set(k, v)
		}
	}
	return out
}

// Reject removes the items matching value: a predicate func, or a value
// compared with loose equality.
func (c *Collection) Reject(value any) *Collection {
	if fn, ok := asPredicate(value); ok {
		return c.Filter(negate(fn))
	}
	return c.Filter(func(v any, _ Key) bool { return !LooseEqual(v, value) })
}

// Where keeps the items whose key path matches:
//
//	c.Where("active")              // active == true
//	c.Where("role", "admin")       // role == "admin"
//	c.Where("age", ">=", 18)
//
// A single predicate argument is used directly.
func (c *Collection) Where(key any, args ...any) *Collection {
	return c.Filter(wherePredicate(key, args...))
}

// WhereStrict keeps the items whose key path is strictly equal to value.
func (c *Collection) WhereStrict(key, value any) *Collection {
	return c.Where(key, "===", value)
}

// WhereBetween keeps the items whose key path lies within [low, high].
func (c *Collection) WhereBetween(key, low, high any) *Collection {
	return c.Where(key, ">=", low).Where(key, "<=", high)
}

// WhereNotBetween keeps the items whose key path lies outside [low, high].
func (c *Collection) WhereNotBetween(key, low, high any) *Collection {
	return c.Filter(func(v any, _ Key) bool {
		got := arr.DataGet(v, key)
		return Compare(got, low) < 0 || Compare(got, high) > 0
	})
}

// WhereIn keeps the items whose key path loosely equals one of values.
func (c *Collection) WhereIn(key, values any) *Collection {
	return c.whereIn(key, values, false, true)
}

// WhereInStrict is WhereIn with strict comparison.
func (c *Collection) WhereInStrict(key, values any) *Collection {
	return c.whereIn(key, values, true, true)
}

// WhereNotIn keeps the items whose key path equals none of values.
func (c *Collection) WhereNotIn(key, values any) *Collection {
	return c.whereIn(key, values, false, false)
}

// WhereNotInStrict is WhereNotIn with strict comparison.
func (c *Collection) WhereNotInStrict(key, values any) *Collection {
	return c.whereIn(key, values, true, false)
}

func (c *Collection) whereIn(key, values any, strict, keep bool) *Collection {
	set := newValueSet(strict)
	for _, v := range c.make(values).Items() {
		set.add(v)
	}
	return c.Filter(func(v any, _ Key) bool {
		return set.has(arr.DataGet(v, key)) == keep
	})
}

// WhereNull keeps the items whose key path (or the item itself, without a
// key) is null.
func (c *Collection) WhereNull(key ...any) *Collection {
	path := optional(key)
	return c.Filter(func(v any, _ Key) bool {
		return KindOf(arr.DataGet(v, path)) == KindNull
	})
}

// WhereNotNull keeps the items whose key path (or the item itself) is not
// null.
func (c *Collection) WhereNotNull(key ...any) *Collection {
	path := optional(key)
	return c.Filter(func(v any, _ Key) bool {
		return KindOf(arr.DataGet(v, path)) != KindNull
	})
}

// Only keeps the given keys. A single structured argument is read as the
// list of keys.
func (c *Collection) Only(keys ...any) *Collection {
	set := keySet(keys)
	return c.Filter(func(_ any, k Key) bool {
		_, ok := set[k]
		return ok
	})
}

// Except drops the given keys. A single structured argument is read as the
// list of keys.
func (c *Collection) Except(keys ...any) *Collection {
	set := keySet(keys)
	return c.Filter(func(_ any, k Key) bool {
		_, ok := set[k]
		return !ok
	})
}

func keySet(keys []any) map[Key]struct{} {
	if len(keys) == 1 && KindOf(keys[0]) == KindStructured {
		keys = Make(keys[0]).Items()
	}
	set := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		set[KeyOf(k)] = struct{}{}
	}
	return set
}

func optional(args []any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether an item matches. One argument is a predicate or
// a value searched with loose equality; more arguments are a Where
// condition:
//
//	c.Contains(3)
//	c.Contains(func(v any, _ collections.Key) bool { return v == 3 })
//	c.Contains("role", "admin")
//	c.Contains("age", ">", 40)
func (c *Collection) Contains(key any, args ...any) bool {
	if len(args) > 0 {
		return c.Contains(operatorForWhere(key, args...))
	}
	if fn, ok := asPredicate(key); ok {
		_, found := c.firstEntry(fn)
		return found
	}
	for _, k := range c.keys {
		if LooseEqual(c.items[k], key) {
			return true
		}
	}
	return false
}

// Some is an alias for [Collection.Contains].
func (c *Collection) Some(key any, args ...any) bool { return c.Contains(key, args...) }

// DoesntContain is the negation of [Collection.Contains].
func (c *Collection) DoesntContain(key any, args ...any) bool { return !c.Contains(key, args...) }

// ContainsStrict is Contains with strict comparison. With a value argument
// the key path is compared strictly against it.
func (c *Collection) ContainsStrict(key any, value ...any) bool {
	if len(value) > 0 {
		want := value[0]
		return c.Contains(Predicate(func(v any, _ Key) bool {
			return StrictEqual(arr.DataGet(v, key), want)
		}))
	}
	if fn, ok := asPredicate(key); ok {
		_, found := c.firstEntry(fn)
		return found
	}
	set := newStrictSet()
	set.add(key)
	for _, k := range c.keys {
		if set.has(c.items[k]) {
			return true
		}
	}
	return false
}

// Every reports whether all items match. One argument is a retriever whose
// result must be truthy; more arguments are a Where condition. An empty
// collection always matches.
func (c *Collection) Every(key any, args ...any) bool {
	var fn Predicate
	if len(args) == 0 {
		fn = retrieverPredicate(key)
	} else {
		fn = operatorForWhere(key, args...)
	}
	for _, k := range c.keys {
		if !fn(c.items[k], k) {
			return false
		}
	}
	return true
}

// Partition splits c into the matching and the non-matching items, both
// keyed by their original keys. Arguments follow [Collection.Every].
func (c *Collection) Partition(key any, args ...any) (*Collection, *Collection) {
	var fn Predicate
	if len(args) == 0 {
		fn = retrieverPredicate(key)
	} else {
		fn = operatorForWhere(key, args...)
	}
	passed, failed := c.derive(), c.derive()
	for _, k := range c.keys {
		v := c.items[k]
		if fn(v, k) {
			passed.set(k, v)
		} else {
			failed.set(k, v)
		}
	}
	return passed, failed
}

func (c *Collection) firstEntry(fn Predicate) (Entry, bool) {
	var match func(Entry) bool
	if fn != nil {
		match = func(e Entry) bool { return fn(e.Value, e.Key) }
	}
	return arr.First(c.entries(), match)
}

func (c *Collection) lastEntry(fn Predicate) (Entry, bool) {
	var match func(Entry) bool
	if fn != nil {
		match = func(e Entry) bool { return fn(e.Value, e.Key) }
	}
	return arr.Last(c.entries(), match)
}

// First returns the first item matching fn (any item for a nil fn), or
// def[0] when nothing matches.
func (c *Collection) First(fn Predicate, def ...any) any {
	if e, ok := c.firstEntry(fn); ok {
		return e.Value
	}
	if len(def) > 0 {
		return arr.Value(def[0])
	}
	return nil
}

// Last returns the last item matching fn (any item for a nil fn), or
// def[0] when nothing matches.
func (c *Collection) Last(fn Predicate, def ...any) any {
	if e, ok := c.lastEntry(fn); ok {
		return e.Value
	}
	if len(def) > 0 {
		return arr.Value(def[0])
	}
	return nil
}

// Find is an alias for [Collection.First].
func (c *Collection) Find(fn Predicate, def ...any) any { return c.First(fn, def...) }

// FirstWhere returns the first item matching the Where condition, or nil.
func (c *Collection) FirstWhere(key any, args ...any) any {
	return c.First(operatorForWhere(key, args...))
}

// FirstOrFail returns the first item matching the condition, or
// ErrItemNotFound. The condition is empty (any item), a predicate, or
// Where arguments.
func (c *Collection) FirstOrFail(args ...any) (any, error) {
	e, ok := c.firstEntry(filterFromArgs(args))
	if !ok {
		return nil, ErrItemNotFound
	}
	return e.Value, nil
}

// Sole returns the only item matching the condition. It fails with
// ErrItemNotFound when nothing matches and ErrMultipleItemsFound when
// more than one item does. Arguments follow [Collection.FirstOrFail].
func (c *Collection) Sole(args ...any) (any, error) {
	matches := c
	if fn := filterFromArgs(args); fn != nil {
		matches = c.Filter(fn)
	}
	switch n := matches.Count(); {
	case n == 0:
		return nil, ErrItemNotFound
	case n > 1:
		return nil, fmt.Errorf("%w: %d matches", ErrMultipleItemsFound, n)
	}
	return matches.items[matches.keys[0]], nil
}

func filterFromArgs(args []any) Predicate {
	switch len(args) {
	case 0:
		return nil
	case 1:
		if fn, ok := asPredicate(args[0]); ok {
			return fn
		}
		return operatorForWhere(args[0])
	}
	return operatorForWhere(args[0], args[1:]...)
}

// Search returns the key of the first item equal to value (loosely, or
// strictly when strict[0] is true), or of the first item matching a
// predicate value. It returns false when nothing matches.
func (c *Collection) Search(value any, strict ...bool) (Key, bool) {
	fn, ok := asPredicate(value)
	if !ok {
		eq := LooseEqual
		if len(strict) > 0 && strict[0] {
			eq = StrictEqual
		}
		fn = func(v any, _ Key) bool { return eq(v, value) }
	}
	e, found := c.firstEntry(fn)
	return e.Key, found
}

// Value returns the first item when it is truthy, else def[0].
func (c *Collection) Value(def ...any) any {
	if first := c.First(nil); Truthy(first) {
		return first
	}
	if len(def) > 0 {
		return arr.Value(def[0])
	}
	return nil
}
