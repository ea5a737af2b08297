package collections

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Key identifies an item inside a Collection. A Key is either an integer
// position or a string label. Strings holding a canonical decimal integer
// are always stored as integer keys, so "3" and 3 address the same item.
//
// The zero Key is the integer key 0.
type Key struct {
	str   string
	num   int
	isStr bool
}

// IntKey returns the integer key n.
func IntKey(n int) Key { return Key{num: n} }

// StringKey returns the key for label s. Canonical integers ("0", "42",
// "-7") become integer keys; "007", "+1" and "1.5" stay strings.
func StringKey(s string) Key {
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		return Key{num: n}
	}
	return Key{str: s, isStr: true}
}

// KeyOf normalizes v into a Key:
//
//	KeyOf(3)      // int key 3
//	KeyOf("3")    // int key 3
//	KeyOf("a")    // string key "a"
//	KeyOf(true)   // int key 1
//	KeyOf(2.9)    // int key 2
//	KeyOf(nil)    // string key ""
func KeyOf(v any) Key {
	switch k := v.(type) {
	case Key:
		return k
	case nil:
		return Key{isStr: true}
	case string:
		return StringKey(k)
	case bool:
		if k {
			return IntKey(1)
		}
		return IntKey(0)
	case fmt.Stringer:
		return StringKey(k.String())
	}
	sv := scalarOf(v)
	switch sv.kind {
	case KindInt:
		return IntKey(int(sv.i))
	case KindFloat:
		return IntKey(int(sv.f))
	case KindString:
		return StringKey(sv.s)
	case KindBool:
		return KeyOf(sv.b)
	}
	return StringKey(fmt.Sprint(v))
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return !k.isStr }

// IsString reports whether k is a string label.
func (k Key) IsString() bool { return k.isStr }

// Int returns the integer value of k, or 0 for string keys.
func (k Key) Int() int { return k.num }

// String returns the text form of k.
func (k Key) String() string {
	if k.isStr {
		return k.str
	}
	return strconv.Itoa(k.num)
}

// Value returns k as an int or a string.
func (k Key) Value() any {
	if k.isStr {
		return k.str
	}
	return k.num
}

// MarshalJSON encodes integer keys as JSON numbers and string keys as
// JSON strings.
func (k Key) MarshalJSON() ([]byte, error) {
	if k.isStr {
		return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(k.str)
	}
	return strconv.AppendInt(nil, int64(k.num), 10), nil
}

// UnmarshalJSON accepts a JSON integer or string.
func (k *Key) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &s); err == nil {
		*k = StringKey(s)
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("collections: decode key: %s is not an integer or a string", data)
	}
	*k = IntKey(n)
	return nil
}

// compareKeys orders integer keys numerically, string keys bytewise, and
// integer keys before string keys.
func compareKeys(a, b Key) int {
	switch {
	case !a.isStr && !b.isStr:
		return cmpInt(a.num, b.num)
	case a.isStr && b.isStr:
		return strings.Compare(a.str, b.str)
	case !a.isStr:
		return -1
	}
	return 1
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Entry is one key/value pair of a Collection.
type Entry struct {
	Key   Key
	Value any
}

// String returns "key: value".
func (e Entry) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}
