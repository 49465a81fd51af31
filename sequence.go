package oset

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/kisaragi-hiu/oset/seq"
)

type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)

// At returns the item at the zero based position i of the insertion
// order. Walking the order list is linear in i.
func (s *OrderedSet[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.m) {
		return getZero[T](), errors.Wrapf(seq.ErrOutOfRange, "index %d with length %d", i, len(s.m))
	}

	curr := s.list.Head()
	for n := 0; n < i; n++ {
		curr = curr.Next()
	}
	return curr.Value(), nil
}

func (s *OrderedSet[T]) ForEach(fn func(item T, order int)) {
	curr := s.list.Head()
	order := 0
	for curr != nil {
		fn(curr.Value(), order)
		curr = curr.Next()
		order++
	}
}

// Each traverses the set in insertion order through a channel until it
// is exhausted or ctx is done.
func (s *OrderedSet[T]) Each(ctx context.Context) <-chan T {
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)

		curr := s.list.Head()
		for curr != nil {
			select {
			case <-ctx.Done():
				return
			case resultCh <- curr.Value():
			}
			curr = curr.Next()
		}
	}()

	return resultCh
}

// Copy returns a set with the same items behind an independent index and
// order list. Items themselves are not copied.
func (s *OrderedSet[T]) Copy() *OrderedSet[T] {
	result := New[T]()
	s.ForEach(func(item T, _ int) {
		result.Insert(item)
	})
	return result
}

// Subseq extracts the half open range [start, end) of the insertion
// order as a new set.
func (s *OrderedSet[T]) Subseq(start, end int) (*OrderedSet[T], error) {
	if err := seq.Bounds(start, end, len(s.m)); err != nil {
		return nil, err
	}

	result := New[T]()
	s.ForEach(func(item T, order int) {
		if order >= start && order < end {
			result.Insert(item)
		}
	})
	return result, nil
}

// Sort returns a new set whose order list is sorted by less. Membership
// is identical and the receiver is untouched.
func (s *OrderedSet[T]) Sort(less seq.LessFn[T]) *OrderedSet[T] {
	return FromItems(seq.Sort[T](s, less)...)
}

// Reverse returns a new set with the insertion order reversed; the
// receiver is untouched.
func (s *OrderedSet[T]) Reverse() *OrderedSet[T] {
	return FromItems(seq.Reverse[T](s)...)
}

// Uniq returns the order list as is. A set holds no duplicates, so there
// is nothing to collapse without a custom comparison.
func (s *OrderedSet[T]) Uniq() []T {
	return s.Items()
}

// UniqFunc deduplicates under eq, which may diverge from the item type's
// own equality. The index is bypassed entirely and every comparison is a
// linear scan over the order list.
func (s *OrderedSet[T]) UniqFunc(eq seq.EqualFn[T]) []T {
	return seq.Uniq[T](s, eq)
}

func (s *OrderedSet[T]) Contains(item T) bool {
	return s.Has(item)
}

// ContainsFunc checks membership under eq by scanning the order list
// instead of consulting the index.
func (s *OrderedSet[T]) ContainsFunc(item T, eq seq.EqualFn[T]) bool {
	return seq.Contains[T](s, item, eq)
}

// Map applies fn to every item in insertion order. Mapped results may
// repeat, so they come back as a plain slice rather than a set.
func Map[T comparable, R any](s *OrderedSet[T], fn func(item T, order int) R) []R {
	return seq.Map[T, R](s, fn)
}

// Concat flattens the given sequences into one set, deduplicating across
// operands in argument order.
func Concat[T comparable](sequences ...seq.Sequence[T]) *OrderedSet[T] {
	result := New[T]()
	for _, source := range sequences {
		result.InsertSeq(source)
	}
	return result
}

// SortOrdered sorts naturally ordered item types without an explicit
// comparator.
func SortOrdered[T constraints.Ordered](s *OrderedSet[T], order Order) *OrderedSet[T] {
	if order == AscOrder {
		return s.Sort(func(a, b T) bool { return a < b })
	}

	return s.Sort(func(a, b T) bool { return b < a })
}

func getZero[T any]() T {
	var result T
	return result
}
