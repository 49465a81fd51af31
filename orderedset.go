package oset

import (
	"github.com/denismitr/dll"

	"github.com/kisaragi-hiu/oset/seq"
)

// OrderedSet is a duplicate free collection that remembers the order in
// which its items were first inserted. Membership goes through a map
// index, iteration through a doubly linked list; every mutation updates
// both views, and neither view is ever exposed directly.
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ seq.Sequence[int] = (*OrderedSet[int])(nil)

func New[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}
}

// From builds a set by inserting the source elements left to right, so
// duplicates collapse to their first occurrence.
func From[T comparable](source seq.Sequence[T]) *OrderedSet[T] {
	s := New[T]()
	s.InsertSeq(source)
	return s
}

func FromItems[T comparable](items ...T) *OrderedSet[T] {
	s := New[T]()
	s.InsertSlice(items)
	return s
}

// Add inserts item unless it is already present and returns the set for
// chaining. Re-adding an item never changes its position.
func (s *OrderedSet[T]) Add(item T) *OrderedSet[T] {
	s.Insert(item)
	return s
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) InsertSeq(source seq.Sequence[T]) (modified bool) {
	source.ForEach(func(item T, _ int) {
		if s.Insert(item) {
			modified = true
		}
	})

	return modified
}

// Delete removes item from both views. An absent item is a normal
// outcome reported as false, not an error.
func (s *OrderedSet[T]) Delete(item T) bool {
	if el, found := s.m[item]; found {
		delete(s.m, item)
		s.list.Remove(el)
		return true
	}

	return false
}

func (s *OrderedSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]*dll.Element[T])
	s.list = nil
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.m)
}

// Items returns the set contents in insertion order as a fresh slice.
func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}
