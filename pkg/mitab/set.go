package mitab

import (
	"slices"
	"strings"
)

// Set is an unordered collection without duplicates. The MITAB list
// columns go into these, since neither order nor repeats mean anything.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, x := range items {
		s[x] = struct{}{}
	}
	return s
}

func (s Set[T]) Add(x T)  { s[x] = struct{}{} }
func (s Set[T]) Len() int { return len(s) }

func (s Set[T]) Has(x T) bool {
	_, ok := s[x]
	return ok
}

// Items returns the members in no particular order.
func (s Set[T]) Items() []T {
	r := make([]T, 0, len(s))
	for x := range s {
		r = append(r, x)
	}
	return r
}

// Equal is true if both sets have the same members.
func (s Set[T]) Equal(t Set[T]) bool {
	if len(s) != len(t) {
		return false
	}
	for x := range s {
		if !t.Has(x) {
			return false
		}
	}
	return true
}

// Sorted returns the members ordered by cmp. It is for printing and
// testing, where we want the same answer every time.
func Sorted[T comparable](s Set[T], cmp func(a, b T) int) []T {
	r := s.Items()
	slices.SortFunc(r, cmp)
	return r
}

// SortedStrings is Sorted for the plain string columns.
func SortedStrings(s Set[string]) []string { return Sorted(s, strings.Compare) }
