package collections

import (
	"fmt"
	"iter"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hasbyte1/go-collect/arr"
)

// Collection is an ordered mapping from [Key] to arbitrary values.
//
// Keys are unique and keep their insertion order. Values can be anything,
// including nested collections, which are shared by reference when a
// collection is derived from another one.
//
// Most methods derive a *new* Collection and leave the receiver untouched.
// The mutators (Put, Append, Push, Prepend, Forget, Pull, Pop, Shift,
// Splice, Transform and the Offset* methods) change the receiver in place.
//
// # Creating a collection
//
//	c := collections.Make([]any{1, 2, 3})
//	c := collections.Make(map[string]any{"a": 1, "b": 2})
//	c := collections.Of("x", "y")
//	c := registry.Make(rows) // macros from registry are callable on c
//
// # Callbacks
//
// Callbacks receive (value, key). Operations that accept a "retriever"
// take nil (the value itself), a dotted key path such as "address.city",
// or a func(any) any / func(any, Key) any.
//
// The zero value is an empty collection ready to use. A Collection is not
// safe for concurrent mutation.
type Collection struct {
	keys     []Key
	items    map[Key]any
	next     int
	registry *Registry
	escape   bool
}

// Option configures a Collection at construction time.
type Option func(*Collection)

// WithRegistry binds r to the collection. Collections derived from it
// inherit the binding, so macros registered on r can be invoked anywhere
// down a pipeline.
func WithRegistry(r *Registry) Option {
	return func(c *Collection) { c.registry = r }
}

// EscapeWhenCastingToString makes String HTML-escape the JSON text.
func EscapeWhenCastingToString(on bool) Option {
	return func(c *Collection) { c.escape = on }
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Make creates a Collection from items:
//   - nil gives an empty collection;
//   - another *Collection is copied;
//   - slices and arrays are stored under positional keys;
//   - map[string]any and other Go maps are stored by key, sorted by key;
//   - *orderedmap.OrderedMap[string, any] keeps its order;
//   - []Entry, iter.Seq[any] and iter.Seq2[Key, any] are drained;
//   - [Arrayable] and [Jsonable] values are converted first;
//   - any other value becomes a one-element collection.
func Make(items any, opts ...Option) *Collection {
	c := &Collection{items: make(map[Key]any)}
	for _, opt := range opts {
		opt(c)
	}
	c.fill(items)
	return c
}

// Empty creates an empty Collection.
func Empty(opts ...Option) *Collection { return Make(nil, opts...) }

// Wrap returns value as a collection: structures are converted with Make,
// nil gives an empty collection, anything else a one-element collection.
func Wrap(value any, opts ...Option) *Collection {
	if KindOf(value) == KindStructured {
		return Make(value, opts...)
	}
	return Make(arr.Wrap(value), opts...)
}

// Unwrap returns the pairs of a collection, or value unchanged.
func Unwrap(value any) any {
	if c, ok := value.(*Collection); ok && c != nil {
		return c.All()
	}
	return value
}

// Range returns the integers from..to inclusive, counting down when from
// is greater than to.
//
//	Range(1, 3) // → [1 2 3]
//	Range(3, 1) // → [3 2 1]
func Range(from, to int, opts ...Option) *Collection {
	c := Make(nil, opts...)
	step := 1
	if from > to {
		step = -1
	}
	for n := from; ; n += step {
		c.push(n)
		if n == to {
			break
		}
	}
	return c
}

// Times calls fn with 1..n and collects the results. A nil fn collects the
// numbers themselves; n < 1 gives an empty collection.
func Times(n int, fn func(number int) any, opts ...Option) *Collection {
	c := Make(nil, opts...)
	for i := 1; i <= n; i++ {
		if fn == nil {
			c.push(i)
			continue
		}
		c.push(fn(i))
	}
	return c
}

func (c *Collection) fill(items any) {
	switch v := items.(type) {
	case nil:
		return
	case *Collection:
		if v == nil {
			return
		}
		for _, k := range v.keys {
			c.set(k, v.items[k])
		}
	case Arrayable:
		c.fill(v.ToArray())
	case Jsonable:
		data, err := v.ToJSON()
		if err != nil {
			c.push(v)
			return
		}
		decoded, err := decodeJSON(data)
		if err != nil {
			c.push(v)
			return
		}
		c.fill(decoded)
	case []Entry:
		for _, e := range v {
			c.set(e.Key, e.Value)
		}
	case []any:
		for _, item := range v {
			c.push(item)
		}
	case *orderedmap.OrderedMap[string, any]:
		if v == nil {
			return
		}
		for p := v.Oldest(); p != nil; p = p.Next() {
			c.set(KeyOf(p.Key), p.Value)
		}
	case iter.Seq2[Key, any]:
		for k, item := range v {
			c.set(k, item)
		}
	case func(func(Key, any) bool):
		for k, item := range v {
			c.set(k, item)
		}
	case iter.Seq[any]:
		for item := range v {
			c.push(item)
		}
	case func(func(any) bool):
		for item := range v {
			c.push(item)
		}
	default:
		if pairs, ok := pairsOf(items); ok {
			for _, e := range pairs {
				c.set(e.Key, e.Value)
			}
			return
		}
		if KindOf(items) == KindNull {
			return
		}
		c.push(items)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal storage
// ─────────────────────────────────────────────────────────────────────────────

// derive returns an empty collection sharing c's configuration.
func (c *Collection) derive() *Collection {
	return &Collection{items: make(map[Key]any), registry: c.registry, escape: c.escape}
}

func (c *Collection) set(k Key, v any) {
	if c.items == nil {
		c.items = make(map[Key]any)
	}
	if _, ok := c.items[k]; !ok {
		c.keys = append(c.keys, k)
	}
	c.items[k] = v
	if k.IsInt() && k.num >= c.next {
		c.next = k.num + 1
	}
}

func (c *Collection) push(v any) { c.set(IntKey(c.next), v) }

func (c *Collection) remove(k Key) bool {
	if _, ok := c.items[k]; !ok {
		return false
	}
	delete(c.items, k)
	if i := slices.Index(c.keys, k); i >= 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
	}
	return true
}

// renumber rewrites the integer keys as 0, 1, 2... in order, leaving string
// keys in place.
func (c *Collection) renumber() {
	entries := c.entries()
	c.keys = c.keys[:0]
	c.items = make(map[Key]any, len(entries))
	c.next = 0
	for _, e := range entries {
		if e.Key.IsInt() {
			c.push(e.Value)
			continue
		}
		c.set(e.Key, e.Value)
	}
}

func (c *Collection) entries() []Entry {
	out := make([]Entry, len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry{Key: k, Value: c.items[k]}
	}
	return out
}

func (c *Collection) withEntries(entries []Entry) *Collection {
	out := c.derive()
	for _, e := range entries {
		out.set(e.Key, e.Value)
	}
	return out
}

func (c *Collection) withValues(values []any) *Collection {
	out := c.derive()
	for _, v := range values {
		out.push(v)
	}
	return out
}

// make builds a collection from items with c's configuration.
func (c *Collection) make(items any) *Collection {
	out := c.derive()
	out.fill(items)
	return out
}

// isList reports whether the keys are exactly 0..n-1 in order.
func (c *Collection) isList() bool {
	for i, k := range c.keys {
		if k.isStr || k.num != i {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a snapshot of the key/value pairs in order.
func (c *Collection) All() []Entry { return c.entries() }

// Items returns the values in order, without their keys.
func (c *Collection) Items() []any {
	out := make([]any, len(c.keys))
	for i, k := range c.keys {
		out[i] = c.items[k]
	}
	return out
}

// KeyList returns the keys in order.
func (c *Collection) KeyList() []Key { return slices.Clone(c.keys) }

// Count returns the number of items.
func (c *Collection) Count() int { return len(c.keys) }

// IsEmpty reports whether the collection holds no items.
func (c *Collection) IsEmpty() bool { return len(c.keys) == 0 }

// IsNotEmpty reports whether the collection holds at least one item.
func (c *Collection) IsNotEmpty() bool { return len(c.keys) > 0 }

// ContainsOneItem reports whether the collection holds exactly one item.
func (c *Collection) ContainsOneItem() bool { return len(c.keys) == 1 }

// Registry returns the registry bound to c, or nil.
func (c *Collection) Registry() *Registry { return c.registry }

// WithRegistry returns a copy of c bound to r.
func (c *Collection) WithRegistry(r *Registry) *Collection {
	out := c.Collect()
	out.registry = r
	return out
}

// Get returns the value stored under key, or def[0] when key is absent.
// A func() any default is called to produce the value.
func (c *Collection) Get(key any, def ...any) any {
	if v, ok := c.items[KeyOf(key)]; ok {
		return v
	}
	if len(def) > 0 {
		return arr.Value(def[0])
	}
	return nil
}

// Access implements [arr.Accessor], enabling key paths through nested
// collections.
func (c *Collection) Access(segment string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.items[KeyOf(segment)]
	return v, ok
}

// Has reports whether every key is present.
func (c *Collection) Has(keys ...any) bool {
	for _, k := range keys {
		if _, ok := c.items[KeyOf(k)]; !ok {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the keys is present.
func (c *Collection) HasAny(keys ...any) bool {
	for _, k := range keys {
		if _, ok := c.items[KeyOf(k)]; ok {
			return true
		}
	}
	return false
}

// Keys returns the keys as a positional collection.
func (c *Collection) Keys() *Collection {
	out := c.derive()
	for _, k := range c.keys {
		out.push(k.Value())
	}
	return out
}

// Values returns the values under sequential integer keys.
func (c *Collection) Values() *Collection { return c.withValues(c.Items()) }

// Collect returns a shallow copy of c.
func (c *Collection) Collect() *Collection { return c.withEntries(c.entries()) }

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Put stores value under key, in place.
func (c *Collection) Put(key, value any) *Collection {
	c.set(KeyOf(key), value)
	return c
}

// Append adds value at the next positional key, in place.
func (c *Collection) Append(value any) *Collection {
	c.push(value)
	return c
}

// Push appends every value at the next positional keys, in place.
func (c *Collection) Push(values ...any) *Collection {
	for _, v := range values {
		c.push(v)
	}
	return c
}

// Prepend inserts value at the front, in place. Without a key the integer
// keys are renumbered from 0 with value at 0. With a key the association
// moves to the front, replacing any previous value under that key, and no
// other key changes.
func (c *Collection) Prepend(value any, key ...any) *Collection {
	if len(key) > 0 {
		k := KeyOf(key[0])
		c.remove(k)
		c.keys = append([]Key{k}, c.keys...)
		if c.items == nil {
			c.items = make(map[Key]any)
		}
		c.items[k] = value
		if k.IsInt() && k.num >= c.next {
			c.next = k.num + 1
		}
		return c
	}
	entries := c.entries()
	c.keys = c.keys[:0]
	c.items = make(map[Key]any, len(entries)+1)
	c.next = 0
	c.push(value)
	for _, e := range entries {
		if e.Key.IsInt() {
			c.push(e.Value)
			continue
		}
		c.set(e.Key, e.Value)
	}
	return c
}

// Forget removes the keys, in place.
func (c *Collection) Forget(keys ...any) *Collection {
	for _, k := range keys {
		c.remove(KeyOf(k))
	}
	return c
}

// Pull removes key and returns its value, or def[0] when absent.
func (c *Collection) Pull(key any, def ...any) any {
	v := c.Get(key, def...)
	c.remove(KeyOf(key))
	return v
}

// Pop removes and returns the last item. It returns false when empty.
func (c *Collection) Pop() (any, bool) {
	if len(c.keys) == 0 {
		return nil, false
	}
	k := c.keys[len(c.keys)-1]
	v := c.items[k]
	c.remove(k)
	c.resetNext()
	return v, true
}

// PopN removes up to n items from the end and returns them, last first.
func (c *Collection) PopN(n int) *Collection {
	out := c.derive()
	for i := 0; i < n; i++ {
		v, ok := c.Pop()
		if !ok {
			break
		}
		out.push(v)
	}
	return out
}

// Shift removes and returns the first item, renumbering the remaining
// integer keys from 0. It returns false when empty.
func (c *Collection) Shift() (any, bool) {
	if len(c.keys) == 0 {
		return nil, false
	}
	k := c.keys[0]
	v := c.items[k]
	c.remove(k)
	c.renumber()
	return v, true
}

// ShiftN removes up to n items from the front and returns them in order.
func (c *Collection) ShiftN(n int) *Collection {
	out := c.derive()
	for i := 0; i < n; i++ {
		v, ok := c.Shift()
		if !ok {
			break
		}
		out.push(v)
	}
	return out
}

func (c *Collection) resetNext() {
	c.next = 0
	for _, k := range c.keys {
		if k.IsInt() && k.num >= c.next {
			c.next = k.num + 1
		}
	}
}

// Transform replaces every value with fn(value, key), in place.
func (c *Collection) Transform(fn func(value any, key Key) any) *Collection {
	for _, k := range c.keys {
		c.items[k] = fn(c.items[k], k)
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexed access
// ─────────────────────────────────────────────────────────────────────────────

// OffsetExists reports whether key is present.
func (c *Collection) OffsetExists(key any) bool {
	_, ok := c.items[KeyOf(key)]
	return ok
}

// OffsetGet returns the value under key, or ErrKeyNotFound.
func (c *Collection) OffsetGet(key any) (any, error) {
	k := KeyOf(key)
	v, ok := c.items[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, k.String())
	}
	return v, nil
}

// OffsetSet stores value under key; a nil key appends.
func (c *Collection) OffsetSet(key, value any) {
	if key == nil {
		c.push(value)
		return
	}
	c.set(KeyOf(key), value)
}

// OffsetUnset removes key.
func (c *Collection) OffsetUnset(key any) { c.remove(KeyOf(key)) }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Iter returns a restartable iterator over a snapshot of the pairs taken
// when iteration starts.
//
//	for k, v := range c.Iter() { ... }
func (c *Collection) Iter() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for _, e := range c.entries() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Each calls fn for every pair until fn returns false.
func (c *Collection) Each(fn func(value any, key Key) bool) *Collection {
	for _, e := range c.entries() {
		if !fn(e.Value, e.Key) {
			break
		}
	}
	return c
}

// EachSpread calls fn with the members of every nested structure followed
// by the key, until fn returns false.
func (c *Collection) EachSpread(fn func(args ...any) bool) *Collection {
	return c.Each(func(v any, k Key) bool {
		return fn(spreadArgs(v, k)...)
	})
}

func spreadArgs(v any, k Key) []any {
	var args []any
	if pairs, ok := pairsOf(v); ok {
		for _, e := range pairs {
			args = append(args, e.Value)
		}
	} else {
		args = append(args, v)
	}
	return append(args, k.Value())
}
