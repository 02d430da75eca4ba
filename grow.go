package vector

import (
	"fmt"
	"math"
)

// growth returns the capacity to allocate when at least required slots are
// needed: double the current capacity (1 when empty) or required, whichever
// is larger.
func (v *Vector[T]) growth(required int) int {
	next := 1
	if c := v.Cap(); c > math.MaxInt/2 {
		next = math.MaxInt
	} else if c > 0 {
		next = 2 * c
	}
	return max(required, next)
}

// reallocate hands the live elements over to a fresh block of n slots.
// If the hand-over fails the fresh block is released and v keeps its block.
func (v *Vector[T]) reallocate(n int) error {
	var fresh Storage[T]
	if err := fresh.Allocate(v.alloc, n); err != nil {
		return err
	}
	old := v.data.Span(0, v.size)
	consumed, err := v.ops.transfer(fresh.Span(0, v.size), old)
	if err != nil {
		fresh.Release()
		return err
	}
	v.ops.retire(old, consumed)
	v.data.Swap(&fresh)
	fresh.Release()
	v.stats.noteTransfer(v.size, v.ops.relocate)
	return nil
}

// Reserve makes room for at least n elements. It never shrinks the block.
// When elements are copied into the new block, a failure leaves v unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	return v.reallocate(n)
}

// Resize changes the number of elements to n, destroying trailing elements
// or default-constructing new ones. If a construction fails the elements
// built by this call are destroyed and Len() is unchanged, though the block
// may already have grown.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	if n <= v.size {
		v.ops.destroyN(v.data.Span(n, v.size))
		v.size = n
		return nil
	}
	if n > v.Cap() {
		if err := v.reallocate(v.growth(n)); err != nil {
			return err
		}
	}
	tail := v.data.Span(v.size, n)
	for i := range tail {
		if err := v.ops.construct(&tail[i]); err != nil {
			v.ops.destroyN(tail[:i])
			zeroSlot(&tail[i])
			return err
		}
	}
	v.size = n
	return nil
}

// EmplaceBack constructs a new element at the end and returns its address,
// which stays valid until the next reallocation. When the block is full the
// element is built in the new block before any existing element is touched.
func (v *Vector[T]) EmplaceBack(ctor Ctor[T]) (*T, error) {
	pos, err := v.Emplace(v.size, ctor)
	if err != nil {
		return nil, err
	}
	return v.data.Slot(pos), nil
}

// PushBack appends x.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.Emplace(v.size, Value(x))
	return err
}

// ShrinkToFit reallocates the block to exactly Len() slots. An empty vector
// releases its block.
func (v *Vector[T]) ShrinkToFit() error {
	if v.Cap() == v.size {
		return nil
	}
	if v.size == 0 {
		v.data.Release()
		return nil
	}
	return v.reallocate(v.size)
}

// Clear destroys every element and keeps the block.
func (v *Vector[T]) Clear() {
	v.ops.destroyN(v.data.Span(0, v.size))
	v.size = 0
}
