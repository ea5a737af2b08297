package collections

import (
	"fmt"

	"github.com/hasbyte1/go-collect/arr"
)

// Deferred is an operation recorded now and applied to a collection
// later.
type Deferred interface {
	ApplyTo(c *Collection) (any, error)
}

// Invoker is implemented by values that accept calls by method name.
// *Collection is an Invoker; element types can implement it to take part
// in higher-order calls.
type Invoker interface {
	Invoke(method string, args ...any) (any, error)
}

var (
	_ Invoker  = (*Collection)(nil)
	_ Deferred = DeferredWhen{}
	_ Deferred = DeferredMapElements{}
	_ Deferred = DeferredElementPath{}
)

// DeferredWhen invokes Method with Args when Condition is truthy, and
// otherwise returns the collection unchanged.
type DeferredWhen struct {
	Condition any
	Method    string
	Args      []any
}

// ApplyTo implements [Deferred].
func (d DeferredWhen) ApplyTo(c *Collection) (any, error) {
	if !Truthy(c.conditionValue(d.Condition)) {
		return c, nil
	}
	return c.Invoke(d.Method, d.Args...)
}

// DeferredMapElements runs the Outer operation (map, filter, sum, ...)
// with a callback that invokes Method with Args on every element.
//
//	DeferredMapElements{Outer: "sum", Method: "count"} // total items of nested collections
type DeferredMapElements struct {
	Outer  string
	Method string
	Args   []any
}

// ApplyTo implements [Deferred]. Elements that cannot receive calls fail
// with ErrMethodNotFound.
func (d DeferredMapElements) ApplyTo(c *Collection) (any, error) {
	var failed error
	fn := func(v any, _ Key) any {
		if failed != nil {
			return nil
		}
		out, err := invokeOn(v, d.Method, d.Args)
		if err != nil {
			failed = err
			return nil
		}
		return out
	}
	out, err := c.applyOuter(d.Outer, fn)
	if err != nil {
		return nil, err
	}
	if failed != nil {
		return nil, failed
	}
	return out, nil
}

// DeferredElementPath runs the Outer operation with a callback resolving
// Path on every element.
//
//	DeferredElementPath{Outer: "sortBy", Path: "age"}
type DeferredElementPath struct {
	Outer string
	Path  any
}

// ApplyTo implements [Deferred].
func (d DeferredElementPath) ApplyTo(c *Collection) (any, error) {
	return c.applyOuter(d.Outer, func(v any, _ Key) any { return arr.DataGet(v, d.Path) })
}

func invokeOn(target any, method string, args []any) (any, error) {
	switch t := target.(type) {
	case *Collection:
		if t != nil {
			return t.Invoke(method, args...)
		}
	case Invoker:
		return t.Invoke(method, args...)
	}
	return nil, fmt.Errorf("%w: %q on %T", ErrMethodNotFound, method, target)
}

// outerOperations lists the operations usable as the Outer of a deferred
// element call.
var outerOperations = []string{
	"average", "avg", "contains", "countBy", "doesntContain", "each", "every",
	"filter", "first", "flatMap", "groupBy", "keyBy", "last", "map", "max",
	"min", "partition", "reject", "skipUntil", "skipWhile", "some", "sortBy",
	"sortByDesc", "sum", "takeUntil", "takeWhile", "unique",
}

// applyOuter runs the operation outer with fn as its callback.
func (c *Collection) applyOuter(outer string, fn Retriever) (any, error) {
	truthy := func(v any, k Key) bool { return Truthy(fn(v, k)) }

	switch outer {
	case "map":
		return c.Map(fn), nil
	case "flatMap":
		return c.FlatMap(fn), nil
	case "filter":
		return c.Filter(truthy), nil
	case "reject":
		return c.Filter(negate(truthy)), nil
	case "each":
		return c.Each(func(v any, k Key) bool {
			b, ok := fn(v, k).(bool)
			return !ok || b
		}), nil
	case "every":
		return c.Every(Predicate(truthy)), nil
	case "contains", "some":
		return c.Contains(Predicate(truthy)), nil
	case "doesntContain":
		return c.DoesntContain(Predicate(truthy)), nil
	case "first":
		return c.First(truthy), nil
	case "last":
		return c.Last(truthy), nil
	case "partition":
		pass, fail := c.Partition(Predicate(truthy))
		return c.withValues([]any{pass, fail}), nil
	case "skipUntil":
		return c.SkipUntil(Predicate(truthy)), nil
	case "skipWhile":
		return c.SkipWhile(truthy), nil
	case "takeUntil":
		return c.TakeUntil(Predicate(truthy)), nil
	case "takeWhile":
		return c.TakeWhile(truthy), nil
	case "sum":
		return c.Sum(fn), nil
	case "avg", "average":
		avg, ok := c.Avg(fn)
		if !ok {
			return nil, nil
		}
		return avg, nil
	case "max":
		v, _ := c.Max(fn)
		return v, nil
	case "min":
		v, _ := c.Min(fn)
		return v, nil
	case "groupBy":
		return c.GroupBy(fn), nil
	case "keyBy":
		return c.KeyBy(fn), nil
	case "countBy":
		return c.CountBy(fn), nil
	case "sortBy":
		return c.SortBy(fn), nil
	case "sortByDesc":
		return c.SortByDesc(fn), nil
	case "unique":
		return c.Unique(fn), nil
	}
	return nil, fmt.Errorf("%w: %q cannot take an element callback", ErrMethodNotFound, outer)
}

// HigherOrderProxy applies an operation to every element of a collection
// through an outer operation. It is built by [Collection.HigherOrder].
type HigherOrderProxy struct {
	c     *Collection
	outer string
}

// HigherOrder returns a proxy for the outer operation:
//
//	groups.HigherOrder("map").Call("count")    // count of every group
//	users.HigherOrder("sum").Get("age")        // sum of every age
//	users.HigherOrder("filter").Get("active")  // users whose active is truthy
func (c *Collection) HigherOrder(outer string) *HigherOrderProxy {
	return &HigherOrderProxy{c: c, outer: outer}
}

// Call invokes method with args on every element through the outer
// operation.
func (p *HigherOrderProxy) Call(method string, args ...any) (any, error) {
	return DeferredMapElements{Outer: p.outer, Method: method, Args: args}.ApplyTo(p.c)
}

// Get resolves path on every element through the outer operation.
func (p *HigherOrderProxy) Get(path any) (any, error) {
	return DeferredElementPath{Outer: p.outer, Path: path}.ApplyTo(p.c)
}

// WhenProxy invokes an operation only when a condition holds. It is built
// by [Collection.If].
type WhenProxy struct {
	c    *Collection
	cond any
}

// If returns a proxy whose calls run only when cond is truthy:
//
//	c.If(onlyVisible).Call("where", "visible")
func (c *Collection) If(cond any) *WhenProxy {
	return &WhenProxy{c: c, cond: cond}
}

// Call invokes method with args when the condition holds and returns the
// collection unchanged otherwise.
func (p *WhenProxy) Call(method string, args ...any) (any, error) {
	return DeferredWhen{Condition: p.cond, Method: method, Args: args}.ApplyTo(p.c)
}
