package collections

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// bounds resolves an offset and an optional length against n items. A
// negative offset counts from the end; a negative length stops that many
// items before the end.
func bounds(n, offset int, length []int) (start, end int) {
	start = offset
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)
	end = n
	if len(length) > 0 {
		l := length[0]
		if l < 0 {
			end = n + l
		} else if l < n-start {
			end = start + l
		}
	}
	return start, max(end, start)
}

// Slice returns the items from offset on, at most length[0] of them. Keys
// are preserved.
//
//	Of(1, 2, 3, 4, 5).Slice(1, 2)  // → {1: 2, 2: 3}
//	Of(1, 2, 3, 4, 5).Slice(-2)    // → {3: 4, 4: 5}
func (c *Collection) Slice(offset int, length ...int) *Collection {
	start, end := bounds(len(c.keys), offset, length)
	return c.withEntries(c.entries()[start:end])
}

// Splice removes length items starting at offset, inserts replacement in
// their place and returns the removed items. It modifies c: integer keys
// are renumbered, string keys are kept. A length beyond the end removes
// everything from offset on.
func (c *Collection) Splice(offset, length int, replacement ...any) *Collection {
	entries := c.entries()
	start, end := bounds(len(entries), offset, []int{length})

	removed := c.derive()
	for _, e := range entries[start:end] {
		removed.push(e.Value)
	}

	c.keys = c.keys[:0]
	c.items = make(map[Key]any, len(entries)-(end-start)+len(replacement))
	c.next = 0
	mergeInto(c, entries[:start])
	for _, v := range replacement {
		c.push(v)
	}
	mergeInto(c, entries[end:])
	return removed
}

// Take returns the first n items, or the last -n items for a negative n.
// Keys are preserved.
func (c *Collection) Take(n int) *Collection {
	if n < 0 {
		return c.Slice(n, -n)
	}
	return c.Slice(0, n)
}

// TakeUntil returns the items before the first one matching value (a
// predicate, or a value compared strictly). The result is renumbered.
func (c *Collection) TakeUntil(value any) *Collection {
	return c.TakeWhile(negate(predicateOrEquality(value)))
}

// TakeWhile returns the leading items for which fn holds. The result is
// renumbered.
func (c *Collection) TakeWhile(fn Predicate) *Collection {
	out := c.derive()
	for _, k := range c.keys {
		v := c.items[k]
		if !fn(v, k) {
			break
		}
		out.push(v)
	}
	return out
}

// Skip drops the first n items, or keeps only the last -n for a negative
// n. Integer keys are renumbered.
func (c *Collection) Skip(n int) *Collection {
	start, end := bounds(len(c.keys), n, nil)
	out := c.derive()
	mergeInto(out, c.entries()[start:end])
	return out
}

// SkipUntil drops the items before the first one matching value (a
// predicate, or a value compared strictly). Keys are preserved.
func (c *Collection) SkipUntil(value any) *Collection {
	return c.SkipWhile(negate(predicateOrEquality(value)))
}

// SkipWhile drops the leading items for which fn holds. Keys are
// preserved.
func (c *Collection) SkipWhile(fn Predicate) *Collection {
	skipping := true
	return c.Filter(func(v any, k Key) bool {
		if skipping && fn(v, k) {
			return false
		}
		skipping = false
		return true
	})
}

// ForPage returns page number page (from 1) of perPage items.
func (c *Collection) ForPage(page, perPage int) *Collection {
	page = max(page, 1)
	if perPage > 0 && page-1 > len(c.keys)/perPage {
		return c.derive()
	}
	return c.Slice((page-1)*perPage, perPage)
}

// Nth returns every step-th item, starting at offset[0]. The result is
// renumbered.
func (c *Collection) Nth(step int, offset ...int) *Collection {
	out := c.derive()
	if step <= 0 {
		return out
	}
	from := 0
	if len(offset) > 0 {
		from = offset[0]
	}
	for i, v := range c.Slice(from).Items() {
		if i%step == 0 {
			out.push(v)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Chunking
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits the items into collections of size items; the last one may
// be shorter. Every chunk is renumbered. A size below 1 gives an empty
// collection.
//
//	Of("a", "b", "c", "d", "e").Chunk(2) // → [[a b] [c d] [e]]
func (c *Collection) Chunk(size int) *Collection {
	out := c.derive()
	if size <= 0 {
		return out
	}
	values := c.Items()
	for start := 0; start < len(values); start += size {
		out.push(c.withValues(values[start:min(start+size, len(values))]))
	}
	return out
}

// ChunkWhile starts a new chunk whenever fn returns false for an item.
// fn receives the item, its key and the chunk built so far. Chunks keep
// the original keys.
//
//	Of(1, 2, 4, 5, 7).ChunkWhile(func(v any, _ Key, chunk *Collection) bool {
//	    return v.(int) == chunk.Last(nil).(int)+1
//	}) // → [[1 2] [4 5] [7]]
func (c *Collection) ChunkWhile(fn func(value any, key Key, chunk *Collection) bool) *Collection {
	out := c.derive()
	if c.IsEmpty() {
		return out
	}
	chunk := c.derive()
	for i, k := range c.keys {
		v := c.items[k]
		if i == 0 || fn(v, k, chunk) {
			chunk.set(k, v)
			continue
		}
		out.push(chunk)
		chunk = c.derive()
		chunk.set(k, v)
	}
	out.push(chunk)
	return out
}

// Sliding returns the windows of size items obtained by moving step items
// at a time. Every window is renumbered.
//
//	Of(1, 2, 3, 4, 5, 6).Sliding(2, 1) // → [[1 2] [2 3] [3 4] [4 5] [5 6]]
func (c *Collection) Sliding(size, step int) *Collection {
	out := c.derive()
	if size <= 0 || step <= 0 || len(c.keys) < size {
		return out
	}
	windows := (len(c.keys)-size)/step + 1
	for n := 0; n < windows; n++ {
		out.push(c.Slice(n*step, size).Values())
	}
	return out
}

// Split divides the items into n groups as evenly as possible; the first
// Count()%n groups get one extra item. Empty groups are omitted.
func (c *Collection) Split(n int) *Collection {
	out := c.derive()
	if n <= 0 || c.IsEmpty() {
		return out
	}
	entries := c.entries()
	size, remain := len(entries)/n, len(entries)%n
	start := 0
	for i := 0; i < n; i++ {
		group := size
		if i < remain {
			group++
		}
		if group == 0 {
			continue
		}
		chunk := c.derive()
		mergeInto(chunk, entries[start:start+group])
		out.push(chunk)
		start += group
	}
	return out
}

// SplitIn divides the items into at most n groups of equal size, the last
// one possibly shorter.
func (c *Collection) SplitIn(n int) *Collection {
	if n <= 0 {
		return c.derive()
	}
	return c.Chunk((len(c.keys) + n - 1) / n)
}
