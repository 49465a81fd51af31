package seq

import (
	"sort"
)

// Map applies fn to every element in order and collects the results into
// a plain slice.
func Map[T, R any](s Sequence[T], fn func(item T, order int) R) []R {
	result := make([]R, 0, s.Len())
	s.ForEach(func(item T, order int) {
		result = append(result, fn(item, order))
	})
	return result
}

// Concat flattens the given sequences into a single slice in argument
// order.
func Concat[T any](sequences ...Sequence[T]) []T {
	total := 0
	for _, s := range sequences {
		total += s.Len()
	}

	result := make([]T, 0, total)
	for _, s := range sequences {
		result = append(result, s.Items()...)
	}
	return result
}

// Uniq removes duplicates under eq, keeping first occurrences. Every
// comparison is a linear scan; no index a sequence may carry internally
// is consulted.
func Uniq[T any](s Sequence[T], eq EqualFn[T]) []T {
	result := make([]T, 0, s.Len())
	s.ForEach(func(item T, _ int) {
		for i := range result {
			if eq(result[i], item) {
				return
			}
		}
		result = append(result, item)
	})
	return result
}

// Contains reports whether s holds item under eq.
func Contains[T any](s Sequence[T], item T, eq EqualFn[T]) bool {
	found := false
	s.ForEach(func(candidate T, _ int) {
		if !found && eq(candidate, item) {
			found = true
		}
	})
	return found
}

// Reverse returns the elements of s in reverse order.
func Reverse[T any](s Sequence[T]) []T {
	items := s.Items()
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// Sort returns the elements of s ordered by less.
func Sort[T any](s Sequence[T], less LessFn[T]) []T {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
	return items
}

// Into feeds every element of s into add, in order. It is the bridge for
// converting a sequence into any other container type.
func Into[T any](s Sequence[T], add func(item T)) {
	s.ForEach(func(item T, _ int) {
		add(item)
	})
}
