package oset

import (
	"github.com/kisaragi-hiu/oset/seq"
)

// Union returns a new set with a's elements first, in a's order, followed
// by b's elements not already included. Operands are never mutated.
func Union[T comparable](a, b seq.Sequence[T]) *OrderedSet[T] {
	result := New[T]()
	result.InsertSeq(a)
	result.InsertSeq(b)
	return result
}

// Intersection returns a new set of the elements present in both
// operands, in a's order.
func Intersection[T comparable](a, b seq.Sequence[T]) *OrderedSet[T] {
	inB := From(b)
	result := New[T]()
	a.ForEach(func(item T, _ int) {
		if inB.Has(item) {
			result.Insert(item)
		}
	})
	return result
}

// Difference returns a new set of a's elements that do not appear in b.
func Difference[T comparable](a, b seq.Sequence[T]) *OrderedSet[T] {
	inB := From(b)
	result := New[T]()
	a.ForEach(func(item T, _ int) {
		if !inB.Has(item) {
			result.Insert(item)
		}
	})
	return result
}

// SymmetricDifference returns the elements present in exactly one of the
// two operands.
func SymmetricDifference[T comparable](a, b seq.Sequence[T]) *OrderedSet[T] {
	return Difference[T](Union[T](a, b), Intersection[T](a, b))
}

// IsSubset reports whether every element of sub appears in super.
func IsSubset[T comparable](sub, super seq.Sequence[T]) bool {
	return Difference[T](sub, super).Len() == 0
}

func IsSuperset[T comparable](super, sub seq.Sequence[T]) bool {
	return IsSubset[T](sub, super)
}

// IsDisjoint reports whether the operands share no elements.
func IsDisjoint[T comparable](a, b seq.Sequence[T]) bool {
	return Intersection[T](a, b).Len() == 0
}
