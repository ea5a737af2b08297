package collections_test

import (
	"math"
	"testing"

	"github.com/hasbyte1/go-collect/collections"
)

type point struct{ X, Y int }

type label string

func (l label) String() string { return string(l) }

func TestKindOf(t *testing.T) {
	var nilPtr *point
	tests := []struct {
		in   any
		want collections.Kind
	}{
		{nil, collections.KindNull},
		{nilPtr, collections.KindNull},
		{true, collections.KindBool},
		{int8(3), collections.KindInt},
		{uint64(math.MaxUint64), collections.KindFloat},
		{1.5, collections.KindFloat},
		{"s", collections.KindString},
		{label("l"), collections.KindString},
		{[]int{1}, collections.KindStructured},
		{map[string]any{}, collections.KindStructured},
		{collections.Empty(), collections.KindStructured},
		{point{}, collections.KindObject},
		{&point{}, collections.KindObject},
	}
	for _, tt := range tests {
		if got := collections.KindOf(tt.in); got != tt.want {
			t.Errorf("KindOf(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{false, false},
		{0, false},
		{0.0, false},
		{"", false},
		{"0", false},
		{[]any{}, false},
		{collections.Empty(), false},
		{true, true},
		{-1, true},
		{"a", true},
		{"0.0", true},
		{[]any{0}, true},
		{point{}, true},
	}
	for _, tt := range tests {
		if got := collections.Truthy(tt.in); got != tt.want {
			t.Errorf("Truthy(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{1, "1", true},
		{1, "01", true},
		{1, 1.0, true},
		{"1e1", "10", true},
		{"abc", 0, false},
		{"abc", "ABC", false},
		{nil, false, true},
		{nil, "", true},
		{nil, 0, true},
		{nil, "a", false},
		{true, "x", true},
		{"0", false, true},
		{[]any{1, 2}, []any{1, 2}, true},
		{[]any{1, 2}, []any{2, 1}, false},
		{map[string]any{"a": 1, "b": 2}, map[string]any{"b": "2", "a": 1}, true},
		{point{1, 2}, point{1, 2}, true},
		{point{1, 2}, point{2, 1}, false},
		{label("x"), "x", true},
	}
	for _, tt := range tests {
		if got := collections.LooseEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("LooseEqual(%#v, %#v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := collections.LooseEqual(tt.b, tt.a); got != tt.want {
			t.Errorf("LooseEqual(%#v, %#v) = %v, want %v (reversed)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestStrictEqual(t *testing.T) {
	p := &point{1, 2}
	tests := []struct {
		a, b any
		want bool
	}{
		{1, 1, true},
		{int8(1), 1, true},
		{1, 1.0, false},
		{1, "1", false},
		{nil, nil, true},
		{"a", "a", true},
		{[]any{1}, []any{1}, true},
		{[]any{1}, []any{"1"}, false},
		{p, p, true},
		{p, &point{1, 2}, false},
	}
	for _, tt := range tests {
		if got := collections.StrictEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("StrictEqual(%#v, %#v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b any
		want int
	}{
		{1, 2, -1},
		{2.5, 2, 1},
		{"10", "9", 1},
		{"abc", "abd", -1},
		{"a", 1, 1},
		{nil, "", 0},
		{true, false, 1},
		{nil, 1, -1},
		{[]any{1}, 5, 1},
		{5, []any{1}, -1},
		{[]any{1}, []any{1, 2}, -1},
		{[]any{1, 3}, []any{1, 2}, 1},
	}
	for _, tt := range tests {
		if got := collections.Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%#v, %#v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{true, "1"},
		{false, ""},
		{42, "42"},
		{1.5, "1.5"},
		{3.0, "3"},
		{"s", "s"},
		{label("l"), "l"},
	}
	for _, tt := range tests {
		if got := collections.Text(tt.in); got != tt.want {
			t.Errorf("Text(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
