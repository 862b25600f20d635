// Package setutil provides generic set utilities for common ID collection patterns.
package setutil

// StringSet is a set of string values.
// It uses map[string]struct{} internally for memory efficiency.
type StringSet struct {
	items map[string]struct{}
}

// NewStringSet creates a new empty StringSet.
func NewStringSet() *StringSet {
	return &StringSet{
		items: make(map[string]struct{}),
	}
}

// NewStringSetWithCap creates a new StringSet with initial capacity.
func NewStringSetWithCap(cap int) *StringSet {
	return &StringSet{
		items: make(map[string]struct{}, cap),
	}
}

// Add adds an id to the set.
func (s *StringSet) Add(id string) {
	s.items[id] = struct{}{}
}

// AddAll adds all ids to the set.
func (s *StringSet) AddAll(ids []string) {
	for _, id := range ids {
		s.items[id] = struct{}{}
	}
}

// Has returns true if the id exists in the set.
func (s *StringSet) Has(id string) bool {
	_, ok := s.items[id]
	return ok
}

// ToSlice returns all ids as a slice.
// The order is not guaranteed.
func (s *StringSet) ToSlice() []string {
	result := make([]string, 0, len(s.items))
	for id := range s.items {
		result = append(result, id)
	}
	return result
}

// Len returns the number of elements in the set.
func (s *StringSet) Len() int {
	return len(s.items)
}
