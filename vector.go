package vector

// Vector is a growable contiguous container built on a Storage block. Slots
// [0, Len()) hold live elements; slots [Len(), Cap()) are raw.
//
// Vector is not safe for concurrent use. A Vector must not be copied by
// value; use Clone, Take or Swap.
type Vector[T any] struct {
	_     noCopy
	data  Storage[T]
	size  int
	alloc Allocator
	ops   ops[T]
	stats counters
}

// Option configures a Vector at construction.
type Option[T any] func(*Vector[T])

// WithAllocator makes the vector take its blocks from a. Allocators other than
// *HeapAllocator can only hold element types without Go pointers.
func WithAllocator[T any](a Allocator) Option[T] {
	return func(v *Vector[T]) {
		if a != nil {
			v.alloc = a
		}
	}
}

// WithTraits installs element lifecycle hooks.
func WithTraits[T any](t Traits[T]) Option[T] {
	return func(v *Vector[T]) {
		v.ops = resolve(t)
	}
}

// New returns an empty vector. No memory is allocated.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{
		alloc: DefaultAllocator,
		ops:   resolve(Traits[T]{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewSize returns a vector of n default-constructed elements and capacity n.
// If constructing any element fails, the elements built so far are destroyed,
// the block is released and the error is returned.
func NewSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.data.Allocate(v.alloc, n); err != nil {
		return nil, err
	}
	slots := v.data.Span(0, n)
	for i := range slots {
		if err := v.ops.construct(&slots[i]); err != nil {
			v.ops.destroyN(slots[:i])
			v.data.Release()
			return nil, err
		}
	}
	v.size = n
	return v, nil
}

// sibling returns an empty vector sharing v's allocator and traits.
func (v *Vector[T]) sibling() *Vector[T] {
	return &Vector[T]{alloc: v.alloc, ops: v.ops}
}

// Clone returns a copy of v with capacity Len(). On failure every element
// copied so far is destroyed and v is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if !v.ops.copyable {
		return nil, ErrNotCopyable
	}
	c := v.sibling()
	if err := c.data.Allocate(c.alloc, v.size); err != nil {
		return nil, err
	}
	if err := c.ops.copyN(c.data.Span(0, v.size), v.data.Span(0, v.size)); err != nil {
		c.data.Release()
		return nil, err
	}
	c.size = v.size
	return c, nil
}

// Take moves v's contents and metrics into a new vector in constant time. v
// is left empty with zero capacity.
func (v *Vector[T]) Take() *Vector[T] {
	t := v.sibling()
	t.data.TakeFrom(&v.data)
	t.size, v.size = v.size, 0
	t.stats, v.stats = v.stats, counters{}
	return t
}

// Release destroys every element and frees the block. The vector is left
// empty and may be reused.
func (v *Vector[T]) Release() {
	v.ops.destroyN(v.data.Span(0, v.size))
	v.size = 0
	v.data.Release()
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the current block.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Swap exchanges the contents of v and o in constant time.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.data.Swap(&o.data)
	v.size, o.size = o.size, v.size
	v.alloc, o.alloc = o.alloc, v.alloc
	v.ops, o.ops = o.ops, v.ops
	v.stats, o.stats = o.stats, v.stats
}

// Assign replaces the contents of v with copies of rhs's elements.
//
// When v lacks room, a full copy is built first and swapped in, so a failure
// leaves v unchanged. Otherwise elements are copied over in place and a
// failure leaves v valid but partially assigned.
func (v *Vector[T]) Assign(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if !v.ops.copyable {
		return ErrNotCopyable
	}
	src := rhs.data.Span(0, rhs.size)

	if v.Cap() < rhs.size {
		var fresh Storage[T]
		if err := fresh.Allocate(v.alloc, rhs.size); err != nil {
			return err
		}
		if err := v.ops.copyN(fresh.Span(0, rhs.size), src); err != nil {
			fresh.Release()
			return err
		}
		v.ops.destroyN(v.data.Span(0, v.size))
		v.data.Swap(&fresh)
		fresh.Release()
		v.size = rhs.size
		v.stats.reallocations++
		v.stats.copied += rhs.size
		return nil
	}

	common := min(v.size, rhs.size)
	dst := v.data.Span(0, common)
	for i := range dst {
		var tmp T
		if err := v.ops.copy(&tmp, &src[i]); err != nil {
			return err
		}
		v.ops.destroy(&dst[i])
		dst[i] = tmp
	}
	v.stats.copied += common

	if rhs.size < v.size {
		v.ops.destroyN(v.data.Span(rhs.size, v.size))
	} else if rhs.size > v.size {
		if err := v.ops.copyN(v.data.Span(v.size, rhs.size), src[v.size:]); err != nil {
			return err
		}
		v.stats.copied += rhs.size - v.size
	}
	v.size = rhs.size
	return nil
}

// MoveFrom destroys v's elements, releases its block and takes over rhs's
// contents and metrics, leaving rhs empty.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.ops.destroyN(v.data.Span(0, v.size))
	v.data.TakeFrom(&rhs.data)
	v.size, rhs.size = rhs.size, 0
	v.alloc, v.ops = rhs.alloc, rhs.ops
	v.stats, rhs.stats = rhs.stats, counters{}
}
