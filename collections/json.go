package collections

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// JSONFlag adjusts the output of [Collection.ToJSON].
type JSONFlag int

const (
	// JSONPrettyPrint indents nested values by four spaces.
	JSONPrettyPrint JSONFlag = 1 << iota
	// JSONEscapeHTML escapes <, > and & inside strings.
	JSONEscapeHTML
	// JSONForceObject writes lists as objects keyed "0", "1", ...
	JSONForceObject
)

var (
	jsonCompact     = jsoniter.Config{}.Froze()
	jsonPretty      = jsoniter.Config{IndentionStep: 4}.Froze()
	jsonCompactHTML = jsoniter.Config{EscapeHTML: true}.Froze()
	jsonPrettyHTML  = jsoniter.Config{IndentionStep: 4, EscapeHTML: true}.Froze()
)

// ─────────────────────────────────────────────────────────────────────────────
// Plain structures
// ─────────────────────────────────────────────────────────────────────────────

// ToArray returns the plain structure of c: a []any when the keys are
// exactly 0..n-1 in order, else an *orderedmap.OrderedMap[string, any].
// Nested collections, [Arrayable] and [Jsonable] values are converted too.
func (c *Collection) ToArray() any {
	return c.shape(plain)
}

// JSONSerialize returns the structure that ToJSON encodes: the top level
// shaped like ToArray, with [Arrayable] and [Jsonable] items converted
// one level deep.
func (c *Collection) JSONSerialize() any {
	return c.shape(func(v any) any {
		switch x := v.(type) {
		case *Collection:
			return x
		case Jsonable:
			if decoded, ok := decodeJsonable(x); ok {
				return decoded
			}
		case Arrayable:
			return x.ToArray()
		}
		return v
	})
}

// ToSlice returns the plain values of c without their keys.
func (c *Collection) ToSlice() []any {
	out := make([]any, len(c.keys))
	for i, k := range c.keys {
		out[i] = plain(c.items[k])
	}
	return out
}

func (c *Collection) shape(convert func(any) any) any {
	if c.isList() {
		out := make([]any, len(c.keys))
		for i, k := range c.keys {
			out[i] = convert(c.items[k])
		}
		return out
	}
	out := orderedmap.New[string, any](len(c.keys))
	for _, k := range c.keys {
		out.Set(k.String(), convert(c.items[k]))
	}
	return out
}

func plain(v any) any {
	switch x := v.(type) {
	case *Collection:
		if x == nil {
			return nil
		}
		return x.ToArray()
	case Jsonable:
		if decoded, ok := decodeJsonable(x); ok {
			return decoded
		}
	case Arrayable:
		return plain(x.ToArray())
	}
	return v
}

func decodeJsonable(v Jsonable) (any, bool) {
	data, err := v.ToJSON()
	if err != nil {
		return nil, false
	}
	decoded, err := decodeJSON(data)
	if err != nil {
		return nil, false
	}
	return decoded, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON encodes the collection. Lists become JSON arrays and keyed
// collections JSON objects in key order.
//
//	Of(1, 2).ToJSON()                          // [1,2]
//	Of(1, 2).ToJSON(collections.JSONForceObject) // {"0":1,"1":2}
func (c *Collection) ToJSON(flags ...JSONFlag) ([]byte, error) {
	var f JSONFlag
	for _, flag := range flags {
		f |= flag
	}
	api := jsonCompact
	switch {
	case f&JSONPrettyPrint != 0 && f&JSONEscapeHTML != 0:
		api = jsonPrettyHTML
	case f&JSONPrettyPrint != 0:
		api = jsonPretty
	case f&JSONEscapeHTML != 0:
		api = jsonCompactHTML
	}

	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	w := jsonWriter{stream: stream, html: f&JSONEscapeHTML != 0, forceObject: f&JSONForceObject != 0}
	w.collection(c)
	if stream.Error != nil {
		return nil, fmt.Errorf("collections: encode json: %w", stream.Error)
	}
	if w.err != nil {
		return nil, w.err
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// MarshalJSON implements [json.Marshaler].
func (c *Collection) MarshalJSON() ([]byte, error) {
	return c.ToJSON()
}

// String returns the JSON text of the collection, HTML-escaped when the
// collection was built with EscapeWhenCastingToString(true).
func (c *Collection) String() string {
	data, err := c.ToJSON()
	if err != nil {
		return ""
	}
	if c.escape {
		return html.EscapeString(string(data))
	}
	return string(data)
}

type jsonWriter struct {
	stream      *jsoniter.Stream
	html        bool
	forceObject bool
	err         error
}

func (w *jsonWriter) collection(c *Collection) {
	if c.isList() && !w.forceObject {
		w.array(c.Items())
		return
	}
	w.object(c.entries())
}

func (w *jsonWriter) array(values []any) {
	if w.forceObject {
		entries := make([]Entry, len(values))
		for i, v := range values {
			entries[i] = Entry{Key: IntKey(i), Value: v}
		}
		w.object(entries)
		return
	}
	if len(values) == 0 {
		w.stream.WriteEmptyArray()
		return
	}
	w.stream.WriteArrayStart()
	for i, v := range values {
		if i > 0 {
			w.stream.WriteMore()
		}
		w.value(v)
	}
	w.stream.WriteArrayEnd()
}

func (w *jsonWriter) object(entries []Entry) {
	if len(entries) == 0 {
		w.stream.WriteEmptyObject()
		return
	}
	w.stream.WriteObjectStart()
	for i, e := range entries {
		if i > 0 {
			w.stream.WriteMore()
		}
		w.stream.WriteObjectField(e.Key.String())
		w.value(e.Value)
	}
	w.stream.WriteObjectEnd()
}

func (w *jsonWriter) value(v any) {
	switch x := v.(type) {
	case nil:
		w.stream.WriteNil()
		return
	case *Collection:
		if x == nil {
			w.stream.WriteNil()
			return
		}
		w.collection(x)
		return
	case Jsonable:
		decoded, ok := decodeJsonable(x)
		if !ok {
			w.stream.WriteNil()
			return
		}
		w.value(decoded)
		return
	case Arrayable:
		w.value(x.ToArray())
		return
	case *orderedmap.OrderedMap[string, any]:
		if x == nil {
			w.stream.WriteNil()
			return
		}
		entries, _ := pairsOf(x)
		w.object(entries)
		return
	case []any:
		w.array(x)
		return
	case map[string]any:
		entries, _ := pairsOf(x)
		w.object(entries)
		return
	case string:
		w.string(x)
		return
	case json.Marshaler:
		data, err := x.MarshalJSON()
		if err != nil && w.err == nil {
			w.err = fmt.Errorf("collections: encode %T: %w", v, err)
		}
		w.stream.WriteRaw(string(data))
		return
	}

	sv := scalarOf(v)
	switch sv.kind {
	case KindNull:
		w.stream.WriteNil()
	case KindBool:
		w.stream.WriteBool(sv.b)
	case KindInt:
		w.stream.WriteInt64(sv.i)
	case KindFloat:
		if math.IsNaN(sv.f) || math.IsInf(sv.f, 0) {
			if w.err == nil {
				w.err = fmt.Errorf("collections: encode json: unsupported value %v", sv.f)
			}
			w.stream.WriteNil()
			return
		}
		w.stream.WriteRaw(jsonFloat(sv.f))
	case KindString:
		w.string(sv.s)
	case KindStructured:
		entries, _ := pairsOf(v)
		if isSequence(entries) {
			values := make([]any, len(entries))
			for i, e := range entries {
				values[i] = e.Value
			}
			w.array(values)
			return
		}
		w.object(entries)
	default:
		w.stream.WriteVal(v)
	}
}

func (w *jsonWriter) string(s string) {
	if w.html {
		w.stream.WriteStringWithHTMLEscaped(s)
		return
	}
	w.stream.WriteString(s)
}

func isSequence(entries []Entry) bool {
	for i, e := range entries {
		if e.Key.IsString() || e.Key.num != i {
			return false
		}
	}
	return true
}

// jsonFloat formats f the shortest way that reads back as a float,
// keeping a fraction on integral values ("3.0").
func jsonFloat(f float64) string {
	if a := math.Abs(f); a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Decoding
// ─────────────────────────────────────────────────────────────────────────────

// FromJSON builds a collection from JSON text. Object key order is kept;
// integers decode as int and other numbers as float64.
func FromJSON(data []byte, opts ...Option) (*Collection, error) {
	decoded, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Make(decoded, opts...), nil
}

// UnmarshalJSON implements [json.Unmarshaler], replacing the contents of
// c.
func (c *Collection) UnmarshalJSON(data []byte) error {
	decoded, err := decodeJSON(data)
	if err != nil {
		return err
	}
	c.keys = nil
	c.items = make(map[Key]any)
	c.next = 0
	c.fill(decoded)
	return nil
}

// decodeJSON parses data into nested *orderedmap.OrderedMap[string, any],
// []any and scalar values. Blank input decodes to nil.
func decodeJSON(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	// jsoniter reports truncated input as io.EOF, which is also how a
	// trailing top-level number ends, so the document is checked first.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("collections: decode json: %w", err)
	}
	it := jsoniter.ParseBytes(jsonCompact, data)
	v := readJSON(it)
	if it.Error != nil && !errors.Is(it.Error, io.EOF) {
		return nil, fmt.Errorf("collections: decode json: %w", it.Error)
	}
	return v, nil
}

func readJSON(it *jsoniter.Iterator) any {
	switch it.WhatIsNext() {
	case jsoniter.ObjectValue:
		m := orderedmap.New[string, any]()
		it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			m.Set(field, readJSON(it))
			return it.Error == nil
		})
		return m
	case jsoniter.ArrayValue:
		list := []any{}
		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			list = append(list, readJSON(it))
			return it.Error == nil
		})
		return list
	case jsoniter.StringValue:
		return it.ReadString()
	case jsoniter.NumberValue:
		n := it.ReadNumber()
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return int(i)
		}
		f, err := n.Float64()
		if err != nil {
			it.ReportError("readJSON", err.Error())
		}
		return f
	case jsoniter.BoolValue:
		return it.ReadBool()
	case jsoniter.NilValue:
		it.ReadNil()
		return nil
	}
	it.ReportError("readJSON", "unexpected value")
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Debugging
// ─────────────────────────────────────────────────────────────────────────────

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpEntry is one key/value pair in the output of [Collection.Dump].
type DumpEntry struct {
	Key   any
	Value any
}

// Dump returns a debug rendering of the collection: lists as []any and
// keyed collections as []DumpEntry, recursively.
func (c *Collection) Dump() string {
	return dumper.Sdump(dumpable(c))
}

func dumpable(v any) any {
	switch x := v.(type) {
	case *Collection:
		if x == nil {
			return nil
		}
		if x.isList() {
			out := make([]any, len(x.keys))
			for i, k := range x.keys {
				out[i] = dumpable(x.items[k])
			}
			return out
		}
		out := make([]DumpEntry, len(x.keys))
		for i, k := range x.keys {
			out[i] = DumpEntry{Key: k.Value(), Value: dumpable(x.items[k])}
		}
		return out
	case *orderedmap.OrderedMap[string, any]:
		if x == nil {
			return nil
		}
		return dumpable(Make(x))
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = dumpable(item)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]DumpEntry, len(keys))
		for i, k := range keys {
			out[i] = DumpEntry{Key: k, Value: dumpable(x[k])}
		}
		return out
	}
	return v
}
