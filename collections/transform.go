package collections

import (
	"math"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every item. Keys are preserved.
func (c *Collection) Map(fn func(value any, key Key) any) *Collection {
	out := c.derive()
	for _, k := range c.keys {
		out.set(k, fn(c.items[k], k))
	}
	return out
}

// MapWithKeys builds a new collection from the (key, value) pairs returned
// by fn. Later pairs overwrite earlier ones with the same key.
//
//	byEmail := users.MapWithKeys(func(u any, _ collections.Key) (any, any) {
//	    return arr.DataGet(u, "email"), arr.DataGet(u, "name")
//	})
func (c *Collection) MapWithKeys(fn func(value any, key Key) (any, any)) *Collection {
	out := c.derive()
	for _, k := range c.keys {
		nk, nv := fn(c.items[k], k)
		out.set(KeyOf(nk), nv)
	}
	return out
}

// MapSpread calls fn with the members of every nested structure followed
// by the item key, and collects the results under the original keys.
func (c *Collection) MapSpread(fn func(args ...any) any) *Collection {
	return c.Map(func(v any, k Key) any { return fn(spreadArgs(v, k)...) })
}

// FlatMap maps every item and collapses the results one level.
func (c *Collection) FlatMap(fn func(value any, key Key) any) *Collection {
	return c.Map(fn).Collapse()
}

// KeyBy re-keys the items by the retriever result. Later items win on
// collisions.
func (c *Collection) KeyBy(keyBy any) *Collection {
	get := valueRetriever(keyBy)
	out := c.derive()
	for _, k := range c.keys {
		v := c.items[k]
		out.set(KeyOf(get(v, k)), v)
	}
	return out
}

// Flip swaps keys and values. Only integer and string values can become
// keys; other items are dropped.
func (c *Collection) Flip() *Collection {
	out := c.derive()
	for _, k := range c.keys {
		v := c.items[k]
		switch KindOf(v) {
		case KindInt, KindString:
			out.set(KeyOf(v), k.Value())
		}
	}
	return out
}

// Pluck collects the value at path from every item. With a key path the
// result is keyed by it:
//
//	users.Pluck("name")           // → ["John", "Jane"]
//	users.Pluck("age", "name")    // → {"John": 30, "Jane": 25}
func (c *Collection) Pluck(value any, key ...any) *Collection {
	get := valueRetriever(value)
	out := c.derive()
	for _, k := range c.keys {
		item := c.items[k]
		v := get(item, k)
		if len(key) == 0 || key[0] == nil {
			out.push(v)
			continue
		}
		out.set(KeyOf(valueRetriever(key[0])(item, k)), v)
	}
	return out
}

// Reverse returns the items in reverse order. Integer keys are renumbered;
// string keys are kept.
func (c *Collection) Reverse() *Collection {
	out := c.derive()
	for i := len(c.keys) - 1; i >= 0; i-- {
		k := c.keys[i]
		if k.IsInt() {
			out.push(c.items[k])
			continue
		}
		out.set(k, c.items[k])
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Structure
// ─────────────────────────────────────────────────────────────────────────────

// mergeInto appends integer-keyed pairs at the next positions of dst and
// overwrites string-keyed ones.
func mergeInto(dst *Collection, pairs []Entry) {
	for _, e := range pairs {
		if e.Key.IsInt() {
			dst.push(e.Value)
			continue
		}
		dst.set(e.Key, e.Value)
	}
}

// Collapse merges the nested structures into one collection. Items that
// are not structures are skipped.
func (c *Collection) Collapse() *Collection {
	out := c.derive()
	for _, k := range c.keys {
		if pairs, ok := pairsOf(c.items[k]); ok {
			mergeInto(out, pairs)
		}
	}
	return out
}

// Flatten turns nested structures into a single positional list. depth
// limits how many levels are opened; the default is unlimited.
//
//	Make([]any{1, []any{2, []any{3}}}).Flatten()  // → [1 2 3]
//	Make([]any{1, []any{2, []any{3}}}).Flatten(1) // → [1 2 [3]]
func (c *Collection) Flatten(depth ...int) *Collection {
	d := math.MaxInt
	if len(depth) > 0 {
		d = depth[0]
	}
	out := c.derive()
	flattenInto(out, c.Items(), d)
	return out
}

func flattenInto(out *Collection, items []any, depth int) {
	for _, item := range items {
		pairs, ok := pairsOf(item)
		switch {
		case !ok:
			out.push(item)
		case depth == 1:
			for _, e := range pairs {
				out.push(e.Value)
			}
		default:
			values := make([]any, len(pairs))
			for i, e := range pairs {
				values[i] = e.Value
			}
			flattenInto(out, values, depth-1)
		}
	}
}

// Combine uses the items of c as keys for the items of values. Both must
// hold the same number of items.
func (c *Collection) Combine(values any) (*Collection, error) {
	vals := c.make(values).Items()
	if len(vals) != len(c.keys) {
		return nil, ErrMismatchedLengths
	}
	out := c.derive()
	for i, k := range c.keys {
		out.set(KeyOf(c.items[k]), vals[i])
	}
	return out, nil
}

// Concat appends the values of source at the next positional keys.
func (c *Collection) Concat(source any) *Collection {
	out := c.Collect()
	for _, v := range c.make(source).Items() {
		out.push(v)
	}
	return out
}

// Zip pairs the i-th item of c with the i-th item of every argument. The
// result is as long as the shortest input.
//
//	Of(1, 2, 3).Zip([]any{"a", "b", "c"}) // → [[1 a] [2 b] [3 c]]
func (c *Collection) Zip(items ...any) *Collection {
	columns := [][]any{c.Items()}
	n := len(c.keys)
	for _, it := range items {
		col := c.make(it).Items()
		columns = append(columns, col)
		n = min(n, len(col))
	}
	out := c.derive()
	for i := 0; i < n; i++ {
		row := c.derive()
		for _, col := range columns {
			row.push(col[i])
		}
		out.push(row)
	}
	return out
}

// Pad grows the collection to |size| items with value, on the right for a
// positive size and on the left for a negative one. Integer keys are
// renumbered.
func (c *Collection) Pad(size int, value any) *Collection {
	missing := abs(size) - len(c.keys)
	if missing <= 0 {
		return c.Collect()
	}
	out := c.derive()
	if size < 0 {
		for i := 0; i < missing; i++ {
			out.push(value)
		}
	}
	mergeInto(out, c.entries())
	if size > 0 {
		for i := 0; i < missing; i++ {
			out.push(value)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Dot flattens nested structures into one level with dotted keys.
//
//	Make(map[string]any{"a": map[string]any{"b": 1}}).Dot() // → {"a.b": 1}
func (c *Collection) Dot() *Collection {
	out := c.derive()
	dotInto(out, "", c.entries())
	return out
}

func dotInto(out *Collection, prefix string, pairs []Entry) {
	for _, e := range pairs {
		key := prefix + e.Key.String()
		if nested, ok := pairsOf(e.Value); ok && len(nested) > 0 {
			dotInto(out, key+".", nested)
			continue
		}
		out.set(StringKey(key), e.Value)
	}
}

// Undot expands dotted keys into nested collections.
//
//	Make(map[string]any{"a.b": 1, "a.c": 2}).Undot() // → {"a": {"b": 1, "c": 2}}
func (c *Collection) Undot() *Collection {
	out := c.derive()
	created := map[*Collection]bool{}
	for _, k := range c.keys {
		v := c.items[k]
		if !k.IsString() || !strings.Contains(k.str, ".") {
			out.set(k, v)
			continue
		}
		segments := strings.Split(k.str, ".")
		node := out
		for _, seg := range segments[:len(segments)-1] {
			sk := StringKey(seg)
			child, ok := node.items[sk].(*Collection)
			switch {
			case !ok:
				child = out.derive()
			case !created[child]:
				child = child.Collect()
			}
			if !created[child] {
				created[child] = true
				node.set(sk, child)
			}
			node = child
		}
		node.set(StringKey(segments[len(segments)-1]), v)
	}
	return out
}
