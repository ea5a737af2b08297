package collections

// ─────────────────────────────────────────────────────────────────────────────
// Differences and intersections
// ─────────────────────────────────────────────────────────────────────────────

// Diff keeps the items whose string form appears nowhere among the values
// of items. Keys are preserved.
func (c *Collection) Diff(items any) *Collection {
	other := textSet(c.make(items).Items())
	return c.Filter(func(v any, _ Key) bool {
		_, found := other[Text(v)]
		return !found
	})
}

// DiffUsing keeps the items for which cmp matches no value of items.
func (c *Collection) DiffUsing(items any, cmp func(a, b any) int) *Collection {
	other := c.make(items).Items()
	return c.Filter(func(v any, _ Key) bool {
		for _, o := range other {
			if cmp(v, o) == 0 {
				return false
			}
		}
		return true
	})
}

// DiffAssoc keeps the pairs that are absent from items, comparing both the
// key and the string form of the value.
func (c *Collection) DiffAssoc(items any) *Collection {
	other := c.make(items)
	return c.Filter(func(v any, k Key) bool {
		ov, ok := other.items[k]
		return !ok || Text(ov) != Text(v)
	})
}

// DiffAssocUsing is DiffAssoc with keys compared by cmp.
func (c *Collection) DiffAssocUsing(items any, cmp func(a, b Key) int) *Collection {
	other := c.make(items).entries()
	return c.Filter(func(v any, k Key) bool {
		for _, e := range other {
			if cmp(k, e.Key) == 0 && Text(e.Value) == Text(v) {
				return false
			}
		}
		return true
	})
}

// DiffKeys keeps the items whose key is absent from items.
func (c *Collection) DiffKeys(items any) *Collection {
	other := c.make(items)
	return c.Filter(func(_ any, k Key) bool {
		_, ok := other.items[k]
		return !ok
	})
}

// DiffKeysUsing keeps the items whose key matches no key of items under
// cmp.
func (c *Collection) DiffKeysUsing(items any, cmp func(a, b Key) int) *Collection {
	other := c.make(items).keys
	return c.Filter(func(_ any, k Key) bool {
		for _, ok := range other {
			if cmp(k, ok) == 0 {
				return false
			}
		}
		return true
	})
}

// Intersect keeps the items whose string form appears among the values of
// items. Keys are preserved.
func (c *Collection) Intersect(items any) *Collection {
	other := textSet(c.make(items).Items())
	return c.Filter(func(v any, _ Key) bool {
		_, found := other[Text(v)]
		return found
	})
}

// IntersectByKeys keeps the items whose key is present in items.
func (c *Collection) IntersectByKeys(items any) *Collection {
	other := c.make(items)
	return c.Filter(func(_ any, k Key) bool {
		_, ok := other.items[k]
		return ok
	})
}

func textSet(values []any) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[Text(v)] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Union adds the pairs of items whose keys are not in c yet. Existing keys
// keep their values.
func (c *Collection) Union(items any) *Collection {
	out := c.Collect()
	for _, e := range c.make(items).entries() {
		if _, ok := out.items[e.Key]; !ok {
			out.set(e.Key, e.Value)
		}
	}
	return out
}

// Merge appends the integer-keyed items of both collections at fresh
// positions and lets string keys of items overwrite those of c.
//
//	Make(map[string]any{"a": 1}).Merge(map[string]any{"a": 2, "b": 3}) // → {"a": 2, "b": 3}
func (c *Collection) Merge(items any) *Collection {
	out := c.derive()
	mergeInto(out, c.entries())
	mergeInto(out, c.make(items).entries())
	return out
}

// MergeRecursive is Merge where a string key present on both sides
// collects both values: nested structures are merged recursively and
// scalars are gathered into a collection.
func (c *Collection) MergeRecursive(items any) *Collection {
	out := c.derive()
	mergeInto(out, c.entries())
	mergeRecursiveInto(out, c.make(items).entries())
	return out
}

func mergeRecursiveInto(dst *Collection, pairs []Entry) {
	for _, e := range pairs {
		if e.Key.IsInt() {
			dst.push(e.Value)
			continue
		}
		existing, ok := dst.items[e.Key]
		if !ok {
			dst.set(e.Key, e.Value)
			continue
		}
		merged := dst.derive()
		if own, ok := pairsOf(existing); ok {
			mergeInto(merged, own)
		} else {
			merged.push(existing)
		}
		if nested, ok := pairsOf(e.Value); ok {
			mergeRecursiveInto(merged, nested)
		} else {
			merged.push(e.Value)
		}
		dst.set(e.Key, merged)
	}
}

// Replace overwrites the items of c with the pairs of items, keys
// included. New keys are appended.
func (c *Collection) Replace(items any) *Collection {
	out := c.Collect()
	for _, e := range c.make(items).entries() {
		out.set(e.Key, e.Value)
	}
	return out
}

// ReplaceRecursive is Replace descending into structures present on both
// sides.
func (c *Collection) ReplaceRecursive(items any) *Collection {
	out := c.Collect()
	replaceRecursiveInto(out, c.make(items).entries())
	return out
}

func replaceRecursiveInto(dst *Collection, pairs []Entry) {
	for _, e := range pairs {
		existing, ok := dst.items[e.Key]
		own, ownOK := pairsOf(existing)
		nested, nestedOK := pairsOf(e.Value)
		if !ok || !ownOK || !nestedOK {
			dst.set(e.Key, e.Value)
			continue
		}
		merged := dst.withEntries(own)
		replaceRecursiveInto(merged, nested)
		dst.set(e.Key, merged)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniqueness
// ─────────────────────────────────────────────────────────────────────────────

// Unique keeps the first item for every distinct retriever result, under
// loose equality. Keys are preserved.
//
//	Of[any](1, "1", 2).Unique(nil)   // → {0: 1, 2: 2}
//	users.Unique("email")
func (c *Collection) Unique(retriever any) *Collection {
	return c.unique(retriever, false)
}

// UniqueStrict is Unique under strict equality.
func (c *Collection) UniqueStrict(retriever any) *Collection {
	return c.unique(retriever, true)
}

func (c *Collection) unique(retriever any, strict bool) *Collection {
	get := valueRetriever(retriever)
	seen := newValueSet(strict)
	return c.Filter(func(v any, k Key) bool {
		return seen.add(get(v, k))
	})
}

// Duplicates returns the retriever results that repeat an earlier one,
// under their original keys, compared loosely.
//
//	Of("a", "b", "a", "c", "b").Duplicates(nil) // → {2: "a", 4: "b"}
func (c *Collection) Duplicates(retriever any) *Collection {
	return c.duplicates(retriever, false)
}

// DuplicatesStrict is Duplicates under strict equality.
func (c *Collection) DuplicatesStrict(retriever any) *Collection {
	return c.duplicates(retriever, true)
}

func (c *Collection) duplicates(retriever any, strict bool) *Collection {
	resolved := c.Map(valueRetriever(retriever))
	survivors := resolved.unique(nil, strict).Items()
	eq := LooseEqual
	if strict {
		eq = StrictEqual
	}
	out := c.derive()
	for _, k := range resolved.keys {
		v := resolved.items[k]
		if len(survivors) > 0 && eq(v, survivors[0]) {
			survivors = survivors[1:]
			continue
		}
		out.set(k, v)
	}
	return out
}
