package collections

// Branch is the callback of the conditional methods. It receives the
// collection and the condition value and returns the collection to carry
// on with.
type Branch func(c *Collection, value any) *Collection

// conditionValue resolves cond: funcs of the collection are called, other
// values are used as they are.
func (c *Collection) conditionValue(cond any) any {
	switch fn := cond.(type) {
	case func(*Collection) bool:
		return fn(c)
	case func(*Collection) any:
		return fn(c)
	case func() bool:
		return fn()
	}
	return cond
}

func (c *Collection) branch(value any, hit bool, fn Branch, def []Branch) *Collection {
	switch {
	case hit && fn != nil:
		return fn(c, value)
	case !hit && len(def) > 0 && def[0] != nil:
		return def[0](c, value)
	}
	return c
}

// When calls fn when cond is truthy and def[0] otherwise. Without a
// matching callback c is returned unchanged. cond may be a
// func(*Collection) bool evaluated against c.
//
//	c.When(onlyActive, func(c *collections.Collection, _ any) *collections.Collection {
//	    return c.Where("active")
//	})
func (c *Collection) When(cond any, fn Branch, def ...Branch) *Collection {
	value := c.conditionValue(cond)
	return c.branch(value, Truthy(value), fn, def)
}

// Unless calls fn when cond is falsy and def[0] otherwise.
func (c *Collection) Unless(cond any, fn Branch, def ...Branch) *Collection {
	value := c.conditionValue(cond)
	return c.branch(value, !Truthy(value), fn, def)
}

// WhenEmpty calls fn when the collection is empty and def[0] otherwise.
func (c *Collection) WhenEmpty(fn Branch, def ...Branch) *Collection {
	return c.branch(c, c.IsEmpty(), fn, def)
}

// WhenNotEmpty calls fn when the collection holds items and def[0]
// otherwise.
func (c *Collection) WhenNotEmpty(fn Branch, def ...Branch) *Collection {
	return c.branch(c, c.IsNotEmpty(), fn, def)
}

// UnlessEmpty is an alias for [Collection.WhenNotEmpty].
func (c *Collection) UnlessEmpty(fn Branch, def ...Branch) *Collection {
	return c.WhenNotEmpty(fn, def...)
}

// UnlessNotEmpty is an alias for [Collection.WhenEmpty].
func (c *Collection) UnlessNotEmpty(fn Branch, def ...Branch) *Collection {
	return c.WhenEmpty(fn, def...)
}

// Pipe passes the collection to fn and returns the result.
func (c *Collection) Pipe(fn func(c *Collection) any) any { return fn(c) }

// PipeInto passes the collection to ctor, typically a constructor of a
// domain type wrapping it.
func PipeInto[T any](c *Collection, ctor func(c *Collection) T) T { return ctor(c) }

// PipeThrough passes the collection through every pipe in turn; each pipe
// receives the previous result.
func (c *Collection) PipeThrough(pipes ...func(carry any) any) any {
	var carry any = c
	for _, pipe := range pipes {
		carry = pipe(carry)
	}
	return carry
}

// Tap calls fn with a copy of the collection and returns c.
func (c *Collection) Tap(fn func(c *Collection)) *Collection {
	fn(c.Collect())
	return c
}

// Clone is an alias for [Collection.Collect].
func (c *Collection) Clone() *Collection { return c.Collect() }
