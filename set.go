package magplot

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Set is a set of ordered values.
type Set[T cmp.Ordered] map[T]struct{}

// FloatSet is a set of float64 values, e.g. the levels of a column.
type FloatSet = Set[float64]

// StringSet is a set of strings, e.g. column or device names.
type StringSet = Set[string]

func NewFloatSet() FloatSet { return make(FloatSet) }

func NewStringSet() StringSet { return make(StringSet) }

func (s Set[T]) String() string {
	parts := make([]string, 0, len(s))
	for _, x := range s.Elements() {
		parts = append(parts, fmt.Sprint(x))
	}
	return "[ " + strings.Join(parts, " ") + " ]"
}

// Add adds x to s.
func (s Set[T]) Add(x T) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s Set[T]) Contains(x T) bool {
	_, ok := s[x]
	return ok
}

// Elements returns the sorted elements of s.
func (s Set[T]) Elements() []T {
	elems := make([]T, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	slices.Sort(elems)
	return elems
}
