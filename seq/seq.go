package seq

import (
	"github.com/pkg/errors"
)

var ErrOutOfRange = errors.New("sequence index out of range")

type (
	// Sequence is the protocol shared by every ordered container in this
	// module. Generic utilities dispatch on it instead of on concrete
	// types, so slices, sets and anything else implementing it can be
	// mixed freely.
	Sequence[T any] interface {
		Len() int
		At(i int) (T, error)
		ForEach(fn func(item T, order int))
		Items() []T
	}

	EqualFn[T any] func(a, b T) bool
	LessFn[T any]  func(a, b T) (less bool)
)

// Of adapts a plain slice to the Sequence protocol.
type Of[T any] []T

var _ Sequence[int] = (Of[int])(nil)

func (s Of[T]) Len() int {
	return len(s)
}

func (s Of[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s) {
		return getZero[T](), errors.Wrapf(ErrOutOfRange, "index %d with length %d", i, len(s))
	}

	return s[i], nil
}

func (s Of[T]) ForEach(fn func(item T, order int)) {
	for i := range s {
		fn(s[i], i)
	}
}

func (s Of[T]) Items() []T {
	items := make([]T, len(s))
	copy(items, s)
	return items
}

// Bounds validates a half open [start, end) range against a sequence
// length. Malformed bounds are an error, never clamped.
func Bounds(start, end, length int) error {
	if start < 0 || start > length {
		return errors.Wrapf(ErrOutOfRange, "start %d with length %d", start, length)
	}

	if end < start || end > length {
		return errors.Wrapf(ErrOutOfRange, "end %d with start %d and length %d", end, start, length)
	}

	return nil
}

func getZero[T any]() T {
	var result T
	return result
}
