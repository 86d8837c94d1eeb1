package set

import "slices"

// Set is a map[T]struct{} that remembers the insertion order of its values.
type Set[T comparable] struct {
	index  map[T]struct{}
	values []T
}

// Insert adds value to the set and reports whether it was not yet present.
func (s *Set[T]) Insert(value T) bool {
	if s.index == nil {
		s.index = make(map[T]struct{})
	}

	// check if the value exists
	if _, exists := s.index[value]; exists {
		return false
	}

	s.index[value] = struct{}{}
	s.values = append(s.values, value)
	return true
}

// ToSlice returns a copy of the values in insertion order.
func (s *Set[T]) ToSlice() []T {
	return slices.Clone(s.values)
}
