package arr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ─────────────────────────────────────────────────────────────────────────────
// Key-path resolution
//
// A key path is a dot-separated list of segments. Resolution walks the
// target one segment at a time and gives up (returning the default) on the
// first segment that cannot be looked up:
//
//	user := map[string]any{
//	    "name": "Alice",
//	    "address": map[string]any{"city": "London"},
//	    "tags": []any{"admin", "ops"},
//	}
//
//	DataGet(user, "address.city")       → "London"
//	DataGet(user, "tags.1")             → "ops"
//	DataGet(user, "address.zip", "n/a") → "n/a"
// ─────────────────────────────────────────────────────────────────────────────

// Accessor is implemented by containers that support keyed lookup by a
// path segment.
type Accessor interface {
	Access(segment string) (any, bool)
}

// DataGet resolves path against target. A nil path returns target as is.
// When a segment is missing, def[0] is returned (called first when it is a
// func() any), or nil without a default. A present key holding nil resolves
// to nil.
func DataGet(target any, path any, def ...any) any {
	segments, ok := Segments(path)
	if !ok {
		return target
	}
	current := target
	for _, seg := range segments {
		next, found := Access(current, seg)
		if !found {
			if len(def) > 0 {
				return Value(def[0])
			}
			return nil
		}
		current = next
	}
	return current
}

// DataHas reports whether every segment of path resolves against target.
func DataHas(target any, path any) bool {
	segments, ok := Segments(path)
	if !ok {
		return target != nil
	}
	current := target
	for _, seg := range segments {
		next, found := Access(current, seg)
		if !found {
			return false
		}
		current = next
	}
	return true
}

// Segments splits path into lookup segments. It returns false for a nil
// path.
//
//	Segments("a.b.c")              // → ["a" "b" "c"], true
//	Segments(2)                    // → ["2"], true
//	Segments([]string{"a.b", "c"}) // → ["a.b" "c"], true
func Segments(path any) ([]string, bool) {
	switch p := path.(type) {
	case nil:
		return nil, false
	case string:
		return strings.Split(p, "."), true
	case []string:
		return p, true
	case []any:
		out := make([]string, len(p))
		for i, seg := range p {
			out[i] = fmt.Sprint(seg)
		}
		return out, true
	case int:
		return []string{strconv.Itoa(p)}, true
	case int64:
		return []string{strconv.FormatInt(p, 10)}, true
	case fmt.Stringer:
		return strings.Split(p.String(), "."), true
	}
	return []string{fmt.Sprint(path)}, true
}

// Access looks up one segment in target.
func Access(target any, segment string) (any, bool) {
	switch t := target.(type) {
	case nil:
		return nil, false
	case Accessor:
		return t.Access(segment)
	case map[string]any:
		v, ok := t[segment]
		return v, ok
	case *orderedmap.OrderedMap[string, any]:
		if t == nil {
			return nil, false
		}
		return t.Get(segment)
	case []any:
		i, ok := index(segment, len(t))
		if !ok {
			return nil, false
		}
		return t[i], true
	}
	return reflectAccess(reflect.ValueOf(target), segment)
}

func reflectAccess(rv reflect.Value, segment string) (any, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		key, ok := mapKey(rv.Type().Key(), segment)
		if !ok {
			return nil, false
		}
		v := rv.MapIndex(key)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := index(segment, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		return structField(rv, segment)
	}
	return nil, false
}

func mapKey(t reflect.Type, segment string) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(segment).Convert(t), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(segment, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		k := reflect.New(t).Elem()
		k.SetInt(n)
		return k, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(segment, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		k := reflect.New(t).Elem()
		k.SetUint(n)
		return k, true
	}
	return reflect.Value{}, false
}

// structField matches exported fields by name, then by json tag name.
func structField(rv reflect.Value, segment string) (any, bool) {
	t := rv.Type()
	if f, ok := t.FieldByName(segment); ok && f.IsExported() {
		v, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, false
		}
		return v.Interface(), true
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == segment && name != "" && name != "-" {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

func index(segment string, n int) (int, bool) {
	i, err := strconv.Atoi(segment)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
