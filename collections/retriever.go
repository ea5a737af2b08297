package collections

import "github.com/hasbyte1/go-collect/arr"

// Retriever extracts the value an operation groups, sorts, compares or
// aggregates by.
type Retriever func(value any, key Key) any

// Predicate reports whether an item matches.
type Predicate func(value any, key Key) bool

// valueRetriever normalizes the retriever arguments accepted across the
// package: nil is the identity, funcs are used as they are, and anything
// else (strings included) is a key path.
func valueRetriever(r any) Retriever {
	switch fn := r.(type) {
	case nil:
		return func(v any, _ Key) any { return v }
	case Retriever:
		return fn
	case func(any, Key) any:
		return fn
	case func(any) any:
		return func(v any, _ Key) any { return fn(v) }
	case Predicate:
		return func(v any, k Key) any { return fn(v, k) }
	case func(any, Key) bool:
		return func(v any, k Key) any { return fn(v, k) }
	case func(any) bool:
		return func(v any, _ Key) any { return fn(v) }
	}
	return func(v any, _ Key) any { return arr.DataGet(v, r) }
}

// asPredicate reports whether v is usable as a predicate callback.
func asPredicate(v any) (Predicate, bool) {
	switch fn := v.(type) {
	case Predicate:
		return fn, fn != nil
	case func(any, Key) bool:
		return fn, fn != nil
	case func(any) bool:
		if fn == nil {
			return nil, false
		}
		return func(v any, _ Key) bool { return fn(v) }, true
	}
	return nil, false
}

// isCallable reports whether v is one of the callback shapes accepted by
// retrievers.
func isCallable(v any) bool {
	switch v.(type) {
	case Retriever, func(any, Key) any, func(any) any, Predicate, func(any, Key) bool, func(any) bool:
		return true
	}
	return false
}

// equality matches items strictly equal to value.
func equality(value any) Predicate {
	return func(v any, _ Key) bool { return StrictEqual(v, value) }
}

// negate inverts fn.
func negate(fn Predicate) Predicate {
	return func(v any, k Key) bool { return !fn(v, k) }
}

// predicateOrEquality uses value as a predicate when it is callable, else
// matches items strictly equal to it.
func predicateOrEquality(value any) Predicate {
	if fn, ok := asPredicate(value); ok {
		return fn
	}
	if isCallable(value) {
		r := valueRetriever(value)
		return func(v any, k Key) bool { return Truthy(r(v, k)) }
	}
	return equality(value)
}

// retrieverPredicate turns a retriever argument into a truthiness test.
func retrieverPredicate(r any) Predicate {
	if fn, ok := asPredicate(r); ok {
		return fn
	}
	get := valueRetriever(r)
	return func(v any, k Key) bool { return Truthy(get(v, k)) }
}

// operatorForWhere builds the predicate behind Where, Contains, Every,
// Partition and friends:
//
//	operatorForWhere("active")              // active == true
//	operatorForWhere("role", "admin")       // role == "admin"
//	operatorForWhere("age", ">=", 18)       // age >= 18
//
// Operators: = == != <> < > <= >= === !==. Anything else, including a
// non-string operator, means loose equality.
func operatorForWhere(key any, args ...any) Predicate {
	op, value := "=", any(true)
	switch len(args) {
	case 0:
	case 1:
		value = args[0]
	default:
		if s, ok := args[0].(string); ok {
			op = s
		}
		value = args[1]
	}
	return func(item any, _ Key) bool {
		return compareWith(arr.DataGet(item, key), op, value)
	}
}

// compareWith applies op to retrieved and value. When fewer than two sides
// are stringable and exactly one side is an object, only the inequality
// operators hold. Collections are objects with a string form; Arrayable
// and Jsonable values are objects.
func compareWith(retrieved any, op string, value any) bool {
	strs, objs := 0, 0
	for _, side := range [2]any{retrieved, value} {
		if stringable(side) || isCollection(side) {
			strs++
		}
		if isObject(side) {
			objs++
		}
	}
	if strs < 2 && objs == 1 {
		return op == "!=" || op == "<>" || op == "!=="
	}

	switch op {
	case "!=", "<>":
		return !LooseEqual(retrieved, value)
	case "<":
		return Compare(retrieved, value) < 0
	case ">":
		return Compare(retrieved, value) > 0
	case "<=":
		return Compare(retrieved, value) <= 0
	case ">=":
		return Compare(retrieved, value) >= 0
	case "===":
		return StrictEqual(retrieved, value)
	case "!==":
		return !StrictEqual(retrieved, value)
	}
	return LooseEqual(retrieved, value)
}

func isCollection(v any) bool {
	c, ok := v.(*Collection)
	return ok && c != nil
}

func isObject(v any) bool {
	switch KindOf(v) {
	case KindNull:
		return false
	case KindObject:
		return true
	}
	switch v.(type) {
	case Arrayable, Jsonable:
		return true
	}
	return false
}

// wherePredicate is operatorForWhere with a callable shortcut: a single
// callable argument is used directly.
func wherePredicate(key any, args ...any) Predicate {
	if len(args) == 0 {
		if fn, ok := asPredicate(key); ok {
			return fn
		}
	}
	return operatorForWhere(key, args...)
}
