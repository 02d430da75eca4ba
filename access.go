package vector

import (
	"fmt"
	"iter"
)

// Index returns the address of element i without a range check against
// Len(). Indexing a raw slot is undefined; debug builds panic instead.
func (v *Vector[T]) Index(i int) *T {
	if debugAssertions && (i < 0 || i >= v.size) {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, v.size))
	}
	return v.data.Slot(i)
}

// At returns the address of element i, or ErrOutOfRange if i is not a valid
// element index.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size)
	}
	return v.data.Slot(i), nil
}

// Front returns the address of the first element. v must not be empty.
func (v *Vector[T]) Front() *T {
	return v.Index(0)
}

// Back returns the address of the last element. v must not be empty.
func (v *Vector[T]) Back() *T {
	return v.Index(v.size - 1)
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int { return 0 }

// End returns the position one past the last element.
func (v *Vector[T]) End() int { return v.size }

// Slice returns the live elements as a slice sharing v's block. It is
// invalidated by any operation that reallocates.
func (v *Vector[T]) Slice() []T {
	return v.data.Span(0, v.size)
}

// All iterates over positions and elements from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.buf[i]) {
				return
			}
		}
	}
}

// Values iterates over elements from front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.buf[i]) {
				return
			}
		}
	}
}

// Backward iterates over positions and elements from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data.buf[i]) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := range a.size {
		if !eq(a.data.buf[i], b.data.buf[i]) {
			return false
		}
	}
	return true
}
