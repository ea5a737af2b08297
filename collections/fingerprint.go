package collections

import (
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// fingerprint hashes the kind and scalar value of v. Strictly equal
// values always share a fingerprint; structures and objects of the same
// kind and size collide on purpose and are told apart by StrictEqual.
func fingerprint(v any) uint64 {
	sv := scalarOf(v)
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(sv.kind)})
	switch sv.kind {
	case KindBool:
		if sv.b {
			_, _ = d.WriteString("1")
		}
	case KindInt:
		_, _ = d.WriteString(strconv.FormatInt(sv.i, 10))
	case KindFloat:
		f := sv.f
		if f == 0 {
			f = 0 // fold -0 into +0
		}
		_, _ = d.WriteString(strconv.FormatUint(math.Float64bits(f), 16))
	case KindString:
		_, _ = d.WriteString(sv.s)
	case KindStructured:
		pairs, _ := pairsOf(v)
		_, _ = d.WriteString(strconv.Itoa(len(pairs)))
	}
	return d.Sum64()
}

// strictSet is a set of values under StrictEqual.
type strictSet struct {
	buckets map[uint64][]any
}

func newStrictSet() *strictSet {
	return &strictSet{buckets: make(map[uint64][]any)}
}

func (s *strictSet) has(v any) bool {
	for _, seen := range s.buckets[fingerprint(v)] {
		if StrictEqual(seen, v) {
			return true
		}
	}
	return false
}

// add inserts v and reports whether it was absent.
func (s *strictSet) add(v any) bool {
	h := fingerprint(v)
	for _, seen := range s.buckets[h] {
		if StrictEqual(seen, v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v)
	return true
}

// looseList is the loose-equality counterpart of strictSet. Loose equality
// is not transitive, so it cannot be hashed.
type looseList struct {
	items []any
}

func (l *looseList) has(v any) bool {
	for _, seen := range l.items {
		if LooseEqual(seen, v) {
			return true
		}
	}
	return false
}

func (l *looseList) add(v any) bool {
	if l.has(v) {
		return false
	}
	l.items = append(l.items, v)
	return true
}

// valueSet is implemented by strictSet and looseList.
type valueSet interface {
	has(v any) bool
	add(v any) bool
}

func newValueSet(strict bool) valueSet {
	if strict {
		return newStrictSet()
	}
	return &looseList{}
}
