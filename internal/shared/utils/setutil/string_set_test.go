package setutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet(t *testing.T) {
	s := NewStringSet()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has("a"))

	s.Add("a")
	s.Add("a")
	s.Add("b")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("c"))
}

func TestStringSet_AddAll(t *testing.T) {
	s := NewStringSetWithCap(4)
	s.AddAll([]string{"x", "y", "x"})

	assert.Equal(t, 2, s.Len())

	got := s.ToSlice()
	sort.Strings(got)
	assert.Equal(t, []string{"x", "y"}, got)
}
