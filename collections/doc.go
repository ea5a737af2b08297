// Package collections provides an ordered, keyed Collection type with a
// fluent API for filtering, transforming, grouping, sorting and
// aggregating heterogeneous data, inspired by Laravel's
// Illuminate/Collections.
//
// # Overview
//
// A [Collection] maps [Key]s (integers or strings) to values of any type
// and keeps insertion order. It is built from slices, maps, ordered maps,
// JSON documents or iterators:
//
//	users := collections.Make([]any{
//	    map[string]any{"name": "John", "age": 30, "gender": "male"},
//	    map[string]any{"name": "Jane", "age": 25, "gender": "female"},
//	    map[string]any{"name": "Bob", "age": 35, "gender": "male"},
//	})
//
//	names := users.
//	    Where("age", ">", 26).
//	    SortByDesc("age").
//	    Pluck("name").
//	    Join(", ", " and ") // → "Bob and John"
//
// # Keys and values
//
// Integer keys are positions; appending uses the next position after the
// largest integer key. String keys holding canonical integers ("3") are
// integer keys. Values are compared with [LooseEqual], [StrictEqual] and
// [Compare], which understand the closed set of value kinds reported by
// [KindOf].
//
// # Derivation and mutation
//
// Most methods return a new Collection and leave the receiver unchanged.
// Nested values are shared, not copied. The mutators (Put, Push, Prepend,
// Forget, Pull, Pop, Shift, Splice, Transform and the Offset* methods)
// change the receiver.
//
// # Key paths and retrievers
//
// Operations that group, sort, pluck or compare "by" something accept a
// retriever: nil for the item itself, a dotted key path ("address.city",
// resolved by [arr.DataGet]) or a callback. Where-style methods take
// (key), (key, value) or (key, operator, value).
//
// # Macros and dynamic calls
//
// A [Registry] holds named [Macro]s. Collections created with
// [WithRegistry] or [Registry.Make], and everything derived from them,
// can call them through [Collection.Macro] and [Collection.Invoke].
// Invoke also dispatches the built-in operations by name, which is what
// [Collection.HigherOrder] and [Collection.If] build on:
//
//	groups.HigherOrder("map").Call("count")
//	users.HigherOrder("sum").Get("age")
//
// # Serialization
//
// [Collection.ToArray] returns the plain structure ([]any for lists,
// *orderedmap.OrderedMap[string, any] otherwise) and [Collection.ToJSON]
// the JSON text. [FromJSON] keeps object key order.
package collections
