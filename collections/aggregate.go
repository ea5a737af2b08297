package collections

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Numeric aggregates
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds up the retriever results. Numeric strings count as numbers and
// other values as 0. The result is an int when every addend is an integer
// and a float64 otherwise.
//
//	Of(1, 2, 3).Sum(nil)          // → 6
//	orders.Sum("total")
func (c *Collection) Sum(retriever any) any {
	get := valueRetriever(retriever)
	total := number{isInt: true}
	for _, k := range c.keys {
		total = addNumbers(total, numberOf(get(c.items[k], k)))
	}
	if total.isInt {
		return int(total.i)
	}
	return total.f
}

func numberOf(v any) number {
	sv := scalarOf(v)
	if sv.kind == KindStructured || sv.kind == KindObject {
		return number{isInt: true}
	}
	n, ok := sv.toNumber()
	if !ok {
		return number{isInt: true}
	}
	return n
}

// addNumbers adds two numbers, falling back to float64 when the integer
// sum overflows.
func addNumbers(a, b number) number {
	if a.isInt && b.isInt {
		sum := a.i + b.i
		if (b.i > 0 && sum < a.i) || (b.i < 0 && sum > a.i) {
			return number{f: a.float() + b.float()}
		}
		return number{isInt: true, i: sum}
	}
	return number{f: a.float() + b.float()}
}

// Avg returns the mean of the non-null retriever results. It returns
// false when there are none.
func (c *Collection) Avg(retriever any) (float64, bool) {
	values := c.Map(valueRetriever(retriever)).WhereNotNull()
	if values.IsEmpty() {
		return 0, false
	}
	return numberOf(values.Sum(nil)).float() / float64(values.Count()), true
}

// Average is an alias for [Collection.Avg].
func (c *Collection) Average(retriever any) (float64, bool) { return c.Avg(retriever) }

// Median returns the middle value of the non-null items (or of the values
// at key path key[0]). With an even count it is the mean of the two middle
// values. It returns false for an empty collection.
//
//	Of(1, 2, 3, 4, 5, 6).Median() // → 3.5
func (c *Collection) Median(key ...any) (any, bool) {
	source := c
	if path := optional(key); path != nil {
		source = c.Pluck(path)
	}
	values := source.WhereNotNull().Sort(nil).Items()
	n := len(values)
	if n == 0 {
		return nil, false
	}
	middle := n / 2
	if n%2 == 1 {
		return values[middle], true
	}
	avg, ok := c.withValues(values[middle-1 : middle+1]).Avg(nil)
	return avg, ok
}

// Mode returns the most frequent values (or values at key path key[0]), in
// order of first appearance. Values are counted under strict equality.
//
//	Of(1, 1, 2, 4).Mode() // → [1]
func (c *Collection) Mode(key ...any) []any {
	modes := []any{}
	if c.IsEmpty() {
		return modes
	}
	source := c
	if path := optional(key); path != nil {
		source = c.Pluck(path)
	}

	type tally struct {
		value any
		count int
	}
	var tallies []*tally
	buckets := make(map[uint64][]*tally)
	highest := 0
	for _, k := range source.keys {
		v := source.items[k]
		h := fingerprint(v)
		var t *tally
		for _, seen := range buckets[h] {
			if StrictEqual(seen.value, v) {
				t = seen
				break
			}
		}
		if t == nil {
			t = &tally{value: v}
			buckets[h] = append(buckets[h], t)
			tallies = append(tallies, t)
		}
		t.count++
		highest = max(highest, t.count)
	}
	for _, t := range tallies {
		if t.count == highest {
			modes = append(modes, t.value)
		}
	}
	return modes
}

// Min returns the smallest non-null retriever result, or false when there
// is none.
func (c *Collection) Min(retriever any) (any, bool) {
	return c.extreme(retriever, -1)
}

// Max returns the largest non-null retriever result, or false when there
// is none.
func (c *Collection) Max(retriever any) (any, bool) {
	return c.extreme(retriever, 1)
}

func (c *Collection) extreme(retriever any, sign int) (any, bool) {
	get := valueRetriever(retriever)
	var best any
	found := false
	for _, k := range c.keys {
		v := get(c.items[k], k)
		if KindOf(v) == KindNull {
			continue
		}
		if !found || Compare(v, best)*sign > 0 {
			best, found = v, true
		}
	}
	return best, found
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the items into one value, starting from initial.
//
//	total := c.Reduce(func(carry, v any, _ collections.Key) any {
//	    return carry.(int) + v.(int)
//	}, 0)
func (c *Collection) Reduce(fn func(carry, value any, key Key) any, initial any) any {
	carry := initial
	for _, k := range c.keys {
		carry = fn(carry, c.items[k], k)
	}
	return carry
}

// ReduceSpread folds the items into several values at once. fn receives
// the current values followed by the item and its key, and must return
// the next values as a []any; anything else fails with
// ErrInvalidReducerOutput.
func (c *Collection) ReduceSpread(fn func(args ...any) any, initial ...any) ([]any, error) {
	result := append([]any(nil), initial...)
	for _, k := range c.keys {
		args := append(append([]any(nil), result...), c.items[k], k.Value())
		out := fn(args...)
		next, ok := out.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrInvalidReducerOutput, out)
		}
		result = next
	}
	return result, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Strings
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins the items into a string.
//
// For scalar items value is the glue. For structured or object items value
// is a key path and glue[0] the glue. A callable value maps every item
// first.
//
//	Of("a", "b").Implode(", ")        // → "a, b"
//	users.Implode("name", ", ")        // → "John, Jane"
func (c *Collection) Implode(value any, glue ...string) string {
	sep := ""
	if len(glue) > 0 {
		sep = glue[0]
	}
	if isCallable(value) {
		return joinText(c.Map(valueRetriever(value)).Items(), sep)
	}
	switch KindOf(c.First(nil)) {
	case KindStructured, KindObject:
		return joinText(c.Pluck(value).Items(), sep)
	}
	return joinText(c.Items(), Text(value))
}

// Join joins the items with glue, using finalGlue[0] before the last one.
//
//	Of("a", "b", "c").Join(", ", " and ") // → "a, b and c"
func (c *Collection) Join(glue string, finalGlue ...string) string {
	if len(finalGlue) == 0 || finalGlue[0] == "" {
		return c.Implode(glue)
	}
	switch len(c.keys) {
	case 0:
		return ""
	case 1:
		return Text(c.Last(nil))
	}
	values := c.Items()
	head := c.withValues(values[:len(values)-1])
	return head.Implode(glue) + finalGlue[0] + Text(values[len(values)-1])
}

func joinText(values []any, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Text(v)
	}
	return strings.Join(parts, sep)
}
