package collections

// GroupBy groups the items by the retriever result:
//
//	users.GroupBy("gender")                       // {"male": [...], "female": [...]}
//	users.GroupBy([]any{"country", "city"})       // nested groups
//	users.GroupBy("gender", true)                 // keep the original keys
//
// Boolean group keys become 0 and 1. A structured group key puts the item
// into every group it names. Each group is a *Collection; with
// preserveKeys[0] the items keep their keys, otherwise they are appended.
// A []any of selectors groups by the first one and applies the rest to
// every subgroup.
func (c *Collection) GroupBy(groupBy any, preserveKeys ...bool) *Collection {
	preserve := len(preserveKeys) > 0 && preserveKeys[0]

	var rest []any
	switch selectors := groupBy.(type) {
	case []any:
		if len(selectors) == 0 {
			return c.Collect()
		}
		groupBy, rest = selectors[0], selectors[1:]
	case []string:
		if len(selectors) == 0 {
			return c.Collect()
		}
		groupBy = selectors[0]
		for _, s := range selectors[1:] {
			rest = append(rest, s)
		}
	}

	get := valueRetriever(groupBy)
	out := c.derive()
	for _, k := range c.keys {
		v := c.items[k]
		resolved := get(v, k)
		groupKeys := []any{resolved}
		if KindOf(resolved) == KindStructured {
			groupKeys = Make(resolved).Items()
		}
		for _, gk := range groupKeys {
			key := KeyOf(gk)
			group, ok := out.items[key].(*Collection)
			if !ok {
				group = c.derive()
				out.set(key, group)
			}
			if preserve {
				group.set(k, v)
			} else {
				group.push(v)
			}
		}
	}

	if len(rest) > 0 {
		if nested, err := out.HigherOrder("map").Call("groupBy", rest, preserve); err == nil {
			if grouped, ok := nested.(*Collection); ok {
				return grouped
			}
		}
	}
	return out
}

// CountBy counts the items per retriever result, in order of first
// appearance.
//
//	Of("a", "b", "a").CountBy(nil) // → {"a": 2, "b": 1}
func (c *Collection) CountBy(countBy any) *Collection {
	get := valueRetriever(countBy)
	out := c.derive()
	for _, k := range c.keys {
		key := KeyOf(get(c.items[k], k))
		n, _ := out.items[key].(int)
		out.set(key, n+1)
	}
	return out
}

// MapToDictionary groups the values returned by fn under the keys it
// returns. Every group is a []any.
func (c *Collection) MapToDictionary(fn func(value any, key Key) (any, any)) *Collection {
	out := c.derive()
	for _, k := range c.keys {
		gk, gv := fn(c.items[k], k)
		key := KeyOf(gk)
		group, _ := out.items[key].([]any)
		out.set(key, append(group, gv))
	}
	return out
}

// MapToGroups is MapToDictionary with every group as a *Collection.
func (c *Collection) MapToGroups(fn func(value any, key Key) (any, any)) *Collection {
	return c.MapToDictionary(fn).Map(func(group any, _ Key) any {
		return c.make(group)
	})
}
