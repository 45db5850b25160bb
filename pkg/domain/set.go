package domain

import (
	"cmp"
	"maps"
	"slices"
)

// Set is an unordered collection of distinct comparable values.
// The zero value is an empty, read-only set; use NewSet to get one that
// can be added to.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the given items. Duplicates are collapsed.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}

	return s
}

// Add inserts item into the set.
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// Contains reports whether item is a member of the set.
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]

	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// Sorted returns the members of s in ascending order. It never returns nil
// so that encoded reports show an empty list rather than null.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	out := slices.Sorted(maps.Keys(s))
	if out == nil {
		return []T{}
	}

	return out
}
