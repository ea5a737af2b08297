package collections

import (
	"sort"
	"strings"

	"github.com/facette/natsort"

	"github.com/hasbyte1/go-collect/arr"
)

// SortFlag selects how values are compared by SortBy, SortDesc and
// SortKeys. Flags combine with |, as in SortString|SortFlagCase.
type SortFlag int

const (
	// SortRegular compares with [Compare].
	SortRegular SortFlag = 0
	// SortNumeric compares numeric values; other values count as 0.
	SortNumeric SortFlag = 1
	// SortString compares the string forms bytewise.
	SortString SortFlag = 2
	// SortNatural compares the string forms in natural order ("img2" before
	// "img10").
	SortNatural SortFlag = 6
	// SortFlagCase makes SortString and SortNatural case-insensitive.
	SortFlagCase SortFlag = 8
)

func sortEntriesByKey(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return compareKeys(entries[i].Key, entries[j].Key) < 0
	})
}

// comparatorFor returns the three-way comparison selected by flags.
func comparatorFor(flags []SortFlag) func(a, b any) int {
	var f SortFlag
	for _, flag := range flags {
		f |= flag
	}
	fold := f&SortFlagCase != 0
	str := func(v any) string {
		s := Text(v)
		if fold {
			return strings.ToLower(s)
		}
		return s
	}

	switch f &^ SortFlagCase {
	case SortNumeric:
		return func(a, b any) int {
			na, _ := scalarOf(a).toNumber()
			nb, _ := scalarOf(b).toNumber()
			return cmpNumber(na, nb)
		}
	case SortString:
		return func(a, b any) int { return strings.Compare(str(a), str(b)) }
	case SortNatural:
		return func(a, b any) int { return naturalCompare(str(a), str(b)) }
	}
	return Compare
}

func naturalCompare(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	}
	return strings.Compare(a, b)
}

// sortEntries stable-sorts the pairs of c by cmp applied to the values
// returned by get.
func (c *Collection) sortEntries(get Retriever, cmp func(a, b any) int, desc bool) []Entry {
	entries := c.entries()
	resolved := make([]any, len(entries))
	for i, e := range entries {
		resolved[i] = get(e.Value, e.Key)
	}
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		r := cmp(resolved[idx[i]], resolved[idx[j]])
		if desc {
			return r > 0
		}
		return r < 0
	})
	out := make([]Entry, len(entries))
	for i, n := range idx {
		out[i] = entries[n]
	}
	return out
}

// Sort orders the items by cmp, or by [Compare] when cmp is nil. Keys are
// preserved and equal items keep their relative order.
func (c *Collection) Sort(cmp func(a, b any) int) *Collection {
	if cmp == nil {
		cmp = Compare
	}
	return c.withEntries(c.sortEntries(valueRetriever(nil), cmp, false))
}

// SortDesc orders the items in descending order. Keys are preserved.
func (c *Collection) SortDesc(flags ...SortFlag) *Collection {
	return c.withEntries(c.sortEntries(valueRetriever(nil), comparatorFor(flags), true))
}

// SortBy orders the items by the retriever result. Keys are preserved.
//
//	users.SortBy("age")
//	users.SortBy("name", collections.SortNatural|collections.SortFlagCase)
//
// A list of selectors sorts by several criteria, see
// [Collection.SortByMany]:
//
//	users.SortBy([]any{[]any{"age", "desc"}, "name"})
func (c *Collection) SortBy(selector any, flags ...SortFlag) *Collection {
	if orderings, ok := orderingsOf(selector); ok {
		return c.SortByMany(orderings...)
	}
	return c.withEntries(c.sortEntries(valueRetriever(selector), comparatorFor(flags), false))
}

// SortByDesc is SortBy in descending order.
func (c *Collection) SortByDesc(selector any, flags ...SortFlag) *Collection {
	if orderings, ok := orderingsOf(selector); ok {
		for i := range orderings {
			if orderings[i].ascending() {
				orderings[i].Direction = "desc"
			} else {
				orderings[i].Direction = "asc"
			}
		}
		return c.SortByMany(orderings...)
	}
	return c.withEntries(c.sortEntries(valueRetriever(selector), comparatorFor(flags), true))
}

// Ordering is one criterion of [Collection.SortByMany].
//
// By is a key path, a retriever func, or a func(a, b any) int comparator
// that receives the two items. A retriever func receives each item with
// its key. Direction is ascending for nil, true or exactly "asc"; any
// other value sorts descending.
type Ordering struct {
	By        any
	Direction any
}

func (o Ordering) ascending() bool {
	switch d := o.Direction.(type) {
	case nil:
		return true
	case bool:
		return d
	case string:
		return d == "asc"
	}
	return false
}

func (o Ordering) compare(a, b Entry) int {
	if cmp, ok := o.By.(func(a, b any) int); ok {
		return cmp(a.Value, b.Value)
	}
	var va, vb any
	if isCallable(o.By) {
		get := valueRetriever(o.By)
		va, vb = get(a.Value, a.Key), get(b.Value, b.Key)
	} else {
		va, vb = arr.DataGet(a.Value, o.By), arr.DataGet(b.Value, o.By)
	}
	if !o.ascending() {
		va, vb = vb, va
	}
	return Compare(va, vb)
}

// orderingsOf recognises the multi-criteria selector forms.
func orderingsOf(selector any) ([]Ordering, bool) {
	switch s := selector.(type) {
	case []Ordering:
		return append([]Ordering(nil), s...), true
	case []string:
		out := make([]Ordering, len(s))
		for i, by := range s {
			out[i] = Ordering{By: by}
		}
		return out, true
	case []any:
		out := make([]Ordering, 0, len(s))
		for _, item := range s {
			switch o := item.(type) {
			case Ordering:
				out = append(out, o)
			case []any:
				if len(o) == 0 {
					continue
				}
				ord := Ordering{By: o[0]}
				if len(o) > 1 {
					ord.Direction = o[1]
				}
				out = append(out, ord)
			case []string:
				if len(o) == 0 {
					continue
				}
				ord := Ordering{By: o[0]}
				if len(o) > 1 {
					ord.Direction = o[1]
				}
				out = append(out, ord)
			default:
				out = append(out, Ordering{By: item})
			}
		}
		return out, true
	}
	return nil, false
}

// SortByMany orders the items by each criterion in turn, falling through
// to the next one on ties. The result is renumbered.
//
//	people.SortByMany(
//	    collections.Ordering{By: "age", Direction: "desc"},
//	    collections.Ordering{By: "name"},
//	)
func (c *Collection) SortByMany(orderings ...Ordering) *Collection {
	entries := c.entries()
	sort.SliceStable(entries, func(i, j int) bool {
		for _, o := range orderings {
			if r := o.compare(entries[i], entries[j]); r != 0 {
				return r < 0
			}
		}
		return false
	})
	values := make([]any, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	return c.withValues(values)
}

// SortKeys orders the items by key.
func (c *Collection) SortKeys(flags ...SortFlag) *Collection {
	return c.sortKeys(comparatorFor(flags), false)
}

// SortKeysDesc orders the items by key, descending.
func (c *Collection) SortKeysDesc(flags ...SortFlag) *Collection {
	return c.sortKeys(comparatorFor(flags), true)
}

// SortKeysUsing orders the items by key with cmp.
func (c *Collection) SortKeysUsing(cmp func(a, b Key) int) *Collection {
	entries := c.entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return cmp(entries[i].Key, entries[j].Key) < 0
	})
	return c.withEntries(entries)
}

func (c *Collection) sortKeys(cmp func(a, b any) int, desc bool) *Collection {
	entries := c.entries()
	sort.SliceStable(entries, func(i, j int) bool {
		r := cmp(entries[i].Key.Value(), entries[j].Key.Value())
		if desc {
			return r > 0
		}
		return r < 0
	})
	return c.withEntries(entries)
}
