package oset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kisaragi-hiu/oset"
	"github.com/kisaragi-hiu/oset/seq"
)

func TestOrderedSet_Add(t *testing.T) {
	t.Run("chained adds keep insertion order", func(t *testing.T) {
		s := oset.New[string]()
		s.Add("foo").Add("bar").Add("baz").Add("123")

		assert.Equal(t, []string{"foo", "bar", "baz", "123"}, s.Items())
		assert.Equal(t, 4, s.Len())
	})

	t.Run("re-adding an existing item changes nothing", func(t *testing.T) {
		s := oset.New[int]()
		s.Add(3).Add(1).Add(2)

		s.Add(1)
		s.Add(3)

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []int{3, 1, 2}, s.Items())
	})

	t.Run("insert reports whether the set was modified", func(t *testing.T) {
		s := oset.New[string]()

		assert.True(t, s.Insert("foo"))
		assert.False(t, s.Insert("foo"))
		assert.True(t, s.Insert("bar"))
	})

	t.Run("struct items compare by value", func(t *testing.T) {
		type point struct{ x, y int }

		s := oset.New[point]()
		s.Add(point{1, 2}).Add(point{3, 4}).Add(point{1, 2})

		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Has(point{1, 2}))
		assert.False(t, s.Has(point{2, 1}))
	})
}

func TestOrderedSet_From(t *testing.T) {
	t.Run("duplicates collapse to first occurrence", func(t *testing.T) {
		s := oset.From[int](seq.Of[int]{3, 1, 2, 1, 3})

		assert.Equal(t, []int{3, 1, 2}, s.Items())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("empty source gives empty set", func(t *testing.T) {
		s := oset.From[string](seq.Of[string]{})

		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Items())
	})

	t.Run("items round-trip through a slice", func(t *testing.T) {
		s := oset.FromItems("foo", "bar", "baz")

		again := oset.From[string](seq.Of[string](s.Items()))

		assert.Equal(t, s.Items(), again.Items())
	})
}

func TestOrderedSet_Delete(t *testing.T) {
	t.Run("delete existing item from the middle", func(t *testing.T) {
		s := oset.New[string]()
		s.Add("foo").Add("bar").Add("baz").Add("123")

		assert.True(t, s.Delete("bar"))

		assert.Equal(t, []string{"foo", "baz", "123"}, s.Items())
	})

	t.Run("delete existing item from the beginning", func(t *testing.T) {
		s := oset.New[string]()
		s.Add("foo").Add("bar").Add("baz").Add("123")

		assert.True(t, s.Delete("foo"))

		assert.Equal(t, []string{"bar", "baz", "123"}, s.Items())
		assert.False(t, s.Has("foo"))
		assert.True(t, s.Has("123"))
		assert.True(t, s.Has("bar"))
		assert.True(t, s.Has("baz"))
	})

	t.Run("delete existing item from the end", func(t *testing.T) {
		s := oset.New[string]()
		s.Add("foo").Add("bar").Add("baz").Add("123")

		assert.True(t, s.Delete("123"))

		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
		assert.False(t, s.Has("123"))
	})

	t.Run("deleting an absent item is a no-op", func(t *testing.T) {
		s := oset.New[string]()
		s.Add("foo").Add("bar")

		assert.False(t, s.Delete("baz"))

		assert.Equal(t, []string{"foo", "bar"}, s.Items())
	})

	t.Run("add then delete restores the original contents", func(t *testing.T) {
		s := oset.FromItems(1, 2, 3)
		before := s.Items()

		s.Add(99)
		assert.True(t, s.Delete(99))

		assert.Equal(t, before, s.Items())
	})
}

func TestOrderedSet_Clear(t *testing.T) {
	t.Run("clear empties both views", func(t *testing.T) {
		s := oset.FromItems("foo", "bar", "baz")

		s.Clear()

		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Items())
		assert.False(t, s.Has("foo"))
	})

	t.Run("clear on an empty set stays empty", func(t *testing.T) {
		s := oset.New[int]()

		s.Clear()

		assert.Equal(t, 0, s.Len())
	})

	t.Run("set remains usable after clear", func(t *testing.T) {
		s := oset.FromItems(1, 2)
		s.Clear()

		s.Add(9)

		assert.Equal(t, []int{9}, s.Items())
	})
}

func TestOrderedSet_InsertSlice(t *testing.T) {
	t.Run("reports modification only for new items", func(t *testing.T) {
		s := oset.New[int]()
		s.Add(3)

		assert.True(t, s.InsertSlice([]int{9, 3}))
		assert.False(t, s.InsertSlice([]int{3, 9}))

		assert.Equal(t, []int{3, 9}, s.Items())
		assert.Equal(t, 2, s.Len())
	})
}

func TestOrderedSet_InsertSeq(t *testing.T) {
	t.Run("inserts another set preserving both orders", func(t *testing.T) {
		s1 := oset.New[int]()
		s1.Add(3)

		s2 := oset.New[int]()
		s2.Add(9)

		assert.True(t, s1.InsertSeq(s2))
		assert.Equal(t, 2, s1.Len())
		assert.Equal(t, 1, s2.Len())
		assert.Equal(t, []int{3, 9}, s1.Items())
	})

	t.Run("inserts from a slice sequence with duplicates", func(t *testing.T) {
		s := oset.FromItems("a")

		assert.True(t, s.InsertSeq(seq.Of[string]{"b", "a", "b"}))

		assert.Equal(t, []string{"a", "b"}, s.Items())
	})
}
