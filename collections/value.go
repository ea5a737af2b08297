package collections

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind is the closed set of value variants the comparison functions
// understand.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	// KindStructured covers collections, slices, arrays, maps and ordered
	// maps: anything with keyed members.
	KindStructured
	// KindObject is every other value (structs, pointers, funcs, ...).
	KindObject
)

var kindNames = [...]string{"null", "bool", "int", "float", "string", "structured", "object"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// KindOf classifies v. Named types are classified by their underlying
// kind, and nil pointers are KindNull.
func KindOf(v any) Kind { return scalarOf(v).kind }

// scalar is the normalized view of a value used by the comparisons.
type scalar struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

func scalarOf(v any) scalar {
	switch x := v.(type) {
	case nil:
		return scalar{kind: KindNull}
	case bool:
		return scalar{kind: KindBool, b: x}
	case int:
		return scalar{kind: KindInt, i: int64(x)}
	case int64:
		return scalar{kind: KindInt, i: x}
	case float64:
		return scalar{kind: KindFloat, f: x}
	case string:
		return scalar{kind: KindString, s: x}
	case *Collection:
		if x == nil {
			return scalar{kind: KindNull}
		}
		return scalar{kind: KindStructured}
	case *orderedmap.OrderedMap[string, any]:
		if x == nil {
			return scalar{kind: KindNull}
		}
		return scalar{kind: KindStructured}
	case []any, map[string]any, []Entry:
		return scalar{kind: KindStructured}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return scalar{kind: KindBool, b: rv.Bool()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalar{kind: KindInt, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return scalar{kind: KindFloat, f: float64(u)}
		}
		return scalar{kind: KindInt, i: int64(u)}
	case reflect.Float32, reflect.Float64:
		return scalar{kind: KindFloat, f: rv.Float()}
	case reflect.String:
		return scalar{kind: KindString, s: rv.String()}
	case reflect.Slice, reflect.Array, reflect.Map:
		return scalar{kind: KindStructured}
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return scalar{kind: KindNull}
		}
	}
	return scalar{kind: KindObject}
}

// ─────────────────────────────────────────────────────────────────────────────
// Numbers and text
// ─────────────────────────────────────────────────────────────────────────────

type number struct {
	isInt bool
	i     int64
	f     float64
}

func (n number) float() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

func cmpNumber(a, b number) int {
	if a.isInt && b.isInt {
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		}
		return 0
	}
	x, y := a.float(), b.float()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// numericString parses s the way a numeric string is recognised: optional
// surrounding whitespace, a sign, digits, a fraction and an exponent.
func numericString(s string) (number, bool) {
	t := strings.TrimSpace(s)
	if !numericPattern.MatchString(t) {
		return number{}, false
	}
	if !strings.ContainsAny(t, ".eE") {
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return number{isInt: true, i: i}, true
		}
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return number{}, false
	}
	return number{f: f}, true
}

// toNumber converts numbers, numeric strings, bools and null.
func (sv scalar) toNumber() (number, bool) {
	switch sv.kind {
	case KindInt:
		return number{isInt: true, i: sv.i}, true
	case KindFloat:
		return number{f: sv.f}, true
	case KindString:
		return numericString(sv.s)
	case KindBool:
		if sv.b {
			return number{isInt: true, i: 1}, true
		}
		return number{isInt: true}, true
	case KindNull:
		return number{isInt: true}, true
	}
	return number{}, false
}

func (sv scalar) isNumber() bool { return sv.kind == KindInt || sv.kind == KindFloat }

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	if a := math.Abs(f); a == 0 || (a >= 1e-4 && a < 1e15) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'E', -1, 64)
}

// text converts v to its string form. The boolean is false for values
// without a natural string form (structures, plain objects); the returned
// text is then only a debugging rendering.
func text(v any) (string, bool) {
	sv := scalarOf(v)
	switch sv.kind {
	case KindNull:
		return "", true
	case KindBool:
		if sv.b {
			return "1", true
		}
		return "", true
	case KindInt:
		return strconv.FormatInt(sv.i, 10), true
	case KindFloat:
		return formatFloat(sv.f), true
	case KindString:
		return sv.s, true
	}
	switch x := v.(type) {
	case fmt.Stringer:
		return x.String(), true
	case error:
		return x.Error(), true
	}
	return fmt.Sprint(v), false
}

// Text returns the string form of v: "" for null, "1"/"" for booleans,
// decimal numbers, String() for stringers.
func Text(v any) string {
	s, _ := text(v)
	return s
}

func stringable(v any) bool {
	switch KindOf(v) {
	case KindString:
		return true
	case KindObject:
		_, ok := v.(fmt.Stringer)
		return ok
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Structured values
// ─────────────────────────────────────────────────────────────────────────────

// pairsOf returns the ordered members of a structured value. Go maps are
// sorted by key.
func pairsOf(v any) ([]Entry, bool) {
	switch x := v.(type) {
	case *Collection:
		if x == nil {
			return nil, false
		}
		return x.All(), true
	case []Entry:
		return x, true
	case []any:
		out := make([]Entry, len(x))
		for i, item := range x {
			out[i] = Entry{Key: IntKey(i), Value: item}
		}
		return out, true
	case *orderedmap.OrderedMap[string, any]:
		if x == nil {
			return nil, false
		}
		out := make([]Entry, 0, x.Len())
		for p := x.Oldest(); p != nil; p = p.Next() {
			out = append(out, Entry{Key: KeyOf(p.Key), Value: p.Value})
		}
		return out, true
	case map[string]any:
		out := make([]Entry, 0, len(x))
		for k, item := range x {
			out = append(out, Entry{Key: KeyOf(k), Value: item})
		}
		sortEntriesByKey(out)
		return out, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]Entry, rv.Len())
		for i := range out {
			out[i] = Entry{Key: IntKey(i), Value: rv.Index(i).Interface()}
		}
		return out, true
	case reflect.Map:
		out := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, Entry{Key: KeyOf(iter.Key().Interface()), Value: iter.Value().Interface()})
		}
		sortEntriesByKey(out)
		return out, true
	}
	return nil, false
}

func pairIndex(entries []Entry) map[Key]any {
	m := make(map[Key]any, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Truthy reports whether v counts as true: null, false, 0, 0.0, "", "0"
// and empty structures are false; everything else is true.
func Truthy(v any) bool {
	sv := scalarOf(v)
	switch sv.kind {
	case KindNull:
		return false
	case KindBool:
		return sv.b
	case KindInt:
		return sv.i != 0
	case KindFloat:
		return sv.f != 0
	case KindString:
		return sv.s != "" && sv.s != "0"
	case KindStructured:
		pairs, _ := pairsOf(v)
		return len(pairs) > 0
	}
	return true
}

// LooseEqual compares a and b with type coercion:
//   - null and booleans compare by truthiness (null against a string
//     compares with "");
//   - numbers, and numbers against numeric strings, compare numerically;
//   - a number against a non-numeric string compares as text;
//   - two numeric strings compare numerically ("1e1" == "10");
//   - structures are equal when they hold the same keys with loosely equal
//     values, in any order;
//   - objects are deeply equal, or a [fmt.Stringer] matches a string.
func LooseEqual(a, b any) bool {
	sa, sb := scalarOf(a), scalarOf(b)

	if sa.kind == KindNull && sb.kind == KindNull {
		return true
	}
	if sa.kind == KindNull && sb.kind == KindString {
		return sb.s == ""
	}
	if sb.kind == KindNull && sa.kind == KindString {
		return sa.s == ""
	}
	if sa.kind == KindBool || sb.kind == KindBool || sa.kind == KindNull || sb.kind == KindNull {
		return Truthy(a) == Truthy(b)
	}

	switch {
	case sa.isNumber() && sb.isNumber():
		na, _ := sa.toNumber()
		nb, _ := sb.toNumber()
		return cmpNumber(na, nb) == 0
	case sa.isNumber() && sb.kind == KindString:
		return looseNumberString(a, sa, sb.s)
	case sb.isNumber() && sa.kind == KindString:
		return looseNumberString(b, sb, sa.s)
	case sa.kind == KindString && sb.kind == KindString:
		na, okA := numericString(sa.s)
		nb, okB := numericString(sb.s)
		if okA && okB {
			return cmpNumber(na, nb) == 0
		}
		return sa.s == sb.s
	case sa.kind == KindStructured && sb.kind == KindStructured:
		pa, _ := pairsOf(a)
		pb, _ := pairsOf(b)
		if len(pa) != len(pb) {
			return false
		}
		other := pairIndex(pb)
		for _, e := range pa {
			v, ok := other[e.Key]
			if !ok || !LooseEqual(e.Value, v) {
				return false
			}
		}
		return true
	case sa.kind == KindObject && sb.kind == KindObject:
		if reflect.TypeOf(a) != reflect.TypeOf(b) {
			return false
		}
		return identical(a, b) || reflect.DeepEqual(a, b)
	case sa.kind == KindObject && sb.kind == KindString:
		s, ok := a.(fmt.Stringer)
		return ok && s.String() == sb.s
	case sb.kind == KindObject && sa.kind == KindString:
		s, ok := b.(fmt.Stringer)
		return ok && s.String() == sa.s
	}
	return false
}

func looseNumberString(num any, sn scalar, s string) bool {
	if ns, ok := numericString(s); ok {
		n, _ := sn.toNumber()
		return cmpNumber(n, ns) == 0
	}
	t, _ := text(num)
	return t == s
}

// StrictEqual reports identity: same kind and same value. All integer
// widths share one kind; an int never equals a float. Structures must hold
// identical keys in identical order with strictly equal values; pointers
// compare by address.
func StrictEqual(a, b any) bool {
	sa, sb := scalarOf(a), scalarOf(b)
	if sa.kind != sb.kind {
		return false
	}
	switch sa.kind {
	case KindNull:
		return true
	case KindBool:
		return sa.b == sb.b
	case KindInt:
		return sa.i == sb.i
	case KindFloat:
		return sa.f == sb.f
	case KindString:
		return sa.s == sb.s
	case KindStructured:
		pa, _ := pairsOf(a)
		pb, _ := pairsOf(b)
		if len(pa) != len(pb) {
			return false
		}
		for i := range pa {
			if pa[i].Key != pb[i].Key || !StrictEqual(pa[i].Value, pb[i].Value) {
				return false
			}
		}
		return true
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return identical(a, b)
}

// identical is a == b, falling back to deep equality for values whose
// dynamic type cannot be compared with ==.
func identical(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}

// Compare returns -1, 0 or 1 ordering a against b:
//   - with a null or bool side both sides compare as booleans (null
//     against a string compares "" with the string);
//   - numbers and numeric strings compare numerically;
//   - other strings, and numbers against non-numeric strings, compare as
//     text;
//   - structures compare by size, then member by member;
//   - a structure sorts after any scalar, an object after any
//     non-stringable scalar.
func Compare(a, b any) int {
	sa, sb := scalarOf(a), scalarOf(b)

	if sa.kind == KindNull && sb.kind == KindNull {
		return 0
	}
	if sa.kind == KindNull && sb.kind == KindString {
		return strings.Compare("", sb.s)
	}
	if sb.kind == KindNull && sa.kind == KindString {
		return strings.Compare(sa.s, "")
	}
	if sa.kind == KindBool || sb.kind == KindBool || sa.kind == KindNull || sb.kind == KindNull {
		return cmpBool(Truthy(a), Truthy(b))
	}

	switch {
	case sa.isNumber() && sb.isNumber():
		na, _ := sa.toNumber()
		nb, _ := sb.toNumber()
		return cmpNumber(na, nb)
	case sa.isNumber() && sb.kind == KindString:
		if nb, ok := numericString(sb.s); ok {
			na, _ := sa.toNumber()
			return cmpNumber(na, nb)
		}
		ta, _ := text(a)
		return strings.Compare(ta, sb.s)
	case sb.isNumber() && sa.kind == KindString:
		return -Compare(b, a)
	case sa.kind == KindString && sb.kind == KindString:
		na, okA := numericString(sa.s)
		nb, okB := numericString(sb.s)
		if okA && okB {
			return cmpNumber(na, nb)
		}
		return strings.Compare(sa.s, sb.s)
	case sa.kind == KindStructured && sb.kind == KindStructured:
		pa, _ := pairsOf(a)
		pb, _ := pairsOf(b)
		if c := cmpInt(len(pa), len(pb)); c != 0 {
			return c
		}
		other := pairIndex(pb)
		for _, e := range pa {
			v, ok := other[e.Key]
			if !ok {
				return 1
			}
			if c := Compare(e.Value, v); c != 0 {
				return c
			}
		}
		return 0
	case sa.kind == KindStructured:
		return 1
	case sb.kind == KindStructured:
		return -1
	}

	// At least one side is an object.
	ta, okA := text(a)
	tb, okB := text(b)
	switch {
	case okA && okB:
		return strings.Compare(ta, tb)
	case sa.kind == KindObject && sb.kind == KindObject:
		if LooseEqual(a, b) {
			return 0
		}
		return strings.Compare(ta, tb)
	case sa.kind == KindObject:
		return 1
	}
	return -1
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
