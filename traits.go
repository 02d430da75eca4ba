package vector

// Traits describes how a vector constructs, copies, relocates and destroys
// its elements. The zero value describes plain Go values: default
// construction stores the zero value, copies are assignments, relocation is a
// bitwise transfer that cannot fail, and destruction zeroes the slot.
//
// Every hook receives a raw dst slot. On error a hook must leave dst raw and
// src unchanged.
type Traits[T any] struct {
	// Construct default-constructs an element into dst.
	Construct func(dst *T) error

	// Copy copy-constructs src into dst.
	Copy func(dst, src *T) error

	// Move move-constructs src into dst when a block is reallocated or
	// elements shift inside it. src is left live in a moved-from state and
	// destroyed afterwards.
	Move func(dst, src *T) error

	// Destroy ends the lifetime of the element at p.
	Destroy func(p *T)

	// MoveCannotFail declares that Move never returns an error.
	MoveCannotFail bool

	// NoCopy declares that elements cannot be copied. Copy is ignored.
	NoCopy bool
}

// ops are the resolved traits of one vector.
type ops[T any] struct {
	construct func(dst *T) error
	copy      func(dst, src *T) error
	move      func(dst, src *T) error // nil means bitwise relocation
	destroy   func(p *T)
	copyable  bool
	// relocate is true when reallocation moves elements and false when it
	// copies them so the old block stays intact until the new one is complete.
	relocate bool
}

func resolve[T any](t Traits[T]) ops[T] {
	o := ops[T]{
		construct: t.Construct,
		copy:      t.Copy,
		move:      t.Move,
		destroy:   t.Destroy,
		copyable:  !t.NoCopy,
	}
	if o.construct == nil {
		o.construct = constructZero[T]
	}
	if o.copy == nil {
		o.copy = assign[T]
	}
	if o.destroy == nil {
		o.destroy = zeroSlot[T]
	}
	o.relocate = t.Move == nil || t.MoveCannotFail || t.NoCopy
	return o
}

func constructZero[T any](dst *T) error {
	var zero T
	*dst = zero
	return nil
}

func assign[T any](dst, src *T) error {
	*dst = *src
	return nil
}

func zeroSlot[T any](p *T) {
	var zero T
	*p = zero
}

// destroyN destroys the live elements in s.
func (o *ops[T]) destroyN(s []T) {
	for i := range s {
		o.destroy(&s[i])
	}
}

// copyN copy-constructs src into the raw slots dst. On failure the elements
// already built in dst are destroyed and dst is raw again.
func (o *ops[T]) copyN(dst, src []T) error {
	for i := range src {
		if err := o.copy(&dst[i], &src[i]); err != nil {
			o.destroyN(dst[:i])
			return err
		}
	}
	return nil
}

// transfer moves or copies the live elements src into the raw slots dst,
// following the move-or-copy policy. It reports whether the sources were
// consumed by a bitwise relocation, in which case they must be forgotten
// rather than destroyed. On failure dst is raw again and src is live.
func (o *ops[T]) transfer(dst, src []T) (consumed bool, err error) {
	switch {
	case o.relocate && o.move == nil:
		copy(dst, src)
		return true, nil
	case o.relocate:
		for i := range src {
			if err := o.move(&dst[i], &src[i]); err != nil {
				o.destroyN(dst[:i])
				return false, err
			}
		}
		return false, nil
	default:
		return false, o.copyN(dst, src)
	}
}

// retire ends the old copies of elements handed over by transfer.
func (o *ops[T]) retire(src []T, consumed bool) {
	if consumed {
		clear(src)
		return
	}
	o.destroyN(src)
}

// Ctor constructs one element into a raw slot.
type Ctor[T any] func(dst *T) error

// Value returns a Ctor that stores v.
func Value[T any](v T) Ctor[T] {
	return func(dst *T) error {
		*dst = v
		return nil
	}
}
