package vector

import "fmt"

// Emplace constructs a new element at pos, shifting [pos, Len()) one slot to
// the right, and returns pos. pos must be within [0, Len()].
//
// The new element is always built before any existing element moves, so a
// failing ctor leaves v unchanged and ctor may read elements of v.
func (v *Vector[T]) Emplace(pos int, ctor Ctor[T]) (int, error) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: emplace position %d out of range [0, %d]", pos, v.size))
	}
	if v.size == v.Cap() {
		if err := v.emplaceRealloc(pos, ctor); err != nil {
			return pos, err
		}
		v.size++
		return pos, nil
	}

	if pos == v.size {
		slot := v.data.Slot(pos)
		if err := ctor(slot); err != nil {
			zeroSlot(slot)
			return pos, err
		}
		v.size++
		return pos, nil
	}

	var tmp T
	if err := ctor(&tmp); err != nil {
		return pos, err
	}
	live := v.data.Span(0, v.size+1)
	if v.ops.move == nil {
		copy(live[pos+1:], live[pos:v.size])
		live[pos] = tmp
	} else if err := v.shiftRight(live, pos, &tmp); err != nil {
		return pos, err
	}
	v.stats.shifted += v.size - pos
	v.size++
	return pos, nil
}

// shiftRight opens a gap at pos by moving [pos, size) one slot right with the
// Move hook, back to front, then moves tmp into the gap. tmp is destroyed in
// every case. If the first move fails v is unchanged; a later failure
// truncates v just before the slot that could not be filled.
func (v *Vector[T]) shiftRight(live []T, pos int, tmp *T) error {
	o := &v.ops
	if err := o.move(&live[v.size], &live[v.size-1]); err != nil {
		o.destroy(tmp)
		return err
	}
	for i := v.size - 1; i >= pos; i-- {
		src := tmp
		if i > pos {
			src = &live[i-1]
		}
		o.destroy(&live[i])
		if err := o.move(&live[i], src); err != nil {
			o.destroyN(live[i+1 : v.size+1])
			clear(live[i:])
			o.destroy(tmp)
			v.size = i
			return err
		}
	}
	o.destroy(tmp)
	return nil
}

// emplaceRealloc builds the new element at pos in a fresh block, then hands
// the prefix and suffix over around it. size is left to the caller.
func (v *Vector[T]) emplaceRealloc(pos int, ctor Ctor[T]) error {
	var fresh Storage[T]
	if err := fresh.Allocate(v.alloc, v.growth(v.size+1)); err != nil {
		return err
	}
	slot := fresh.Slot(pos)
	if err := ctor(slot); err != nil {
		fresh.Release()
		return err
	}

	old := v.data.Span(0, v.size)
	consumed, err := v.ops.transfer(fresh.Span(0, pos), old[:pos])
	if err != nil {
		v.ops.destroy(slot)
		fresh.Release()
		return err
	}
	if _, err := v.ops.transfer(fresh.Span(pos+1, v.size+1), old[pos:]); err != nil {
		v.ops.destroyN(fresh.Span(0, pos+1))
		fresh.Release()
		return err
	}

	v.ops.retire(old, consumed)
	v.data.Swap(&fresh)
	fresh.Release()
	v.stats.noteTransfer(v.size, v.ops.relocate)
	return nil
}

// Insert places x at pos and returns pos.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	return v.Emplace(pos, Value(x))
}

// Erase destroys the element at pos and closes the gap, returning pos, which
// now addresses the element that followed. pos must be less than Len().
// Capacity is unchanged.
//
// With a Move hook the following elements are moved front to back. If a move
// fails, v is truncated just before the slot that could not be filled and the
// hook's error is returned.
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0, %d)", pos, v.size))
	}
	live := v.data.Span(0, v.size)
	o := &v.ops
	o.destroy(&live[pos])
	if o.move == nil {
		copy(live[pos:], live[pos+1:])
	} else {
		for i := pos; i < v.size-1; i++ {
			if err := o.move(&live[i], &live[i+1]); err != nil {
				o.destroyN(live[i+1:])
				clear(live[i:])
				v.size = i
				return pos, err
			}
			o.destroy(&live[i+1])
		}
	}
	clear(live[v.size-1:])
	v.size--
	v.stats.shifted += v.size - pos
	return pos, nil
}

// PopBack destroys the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.size--
	v.ops.destroy(v.data.Slot(v.size))
}

// CopyOf returns a Ctor that copy-constructs *src with v's copy trait.
func (v *Vector[T]) CopyOf(src *T) Ctor[T] {
	return func(dst *T) error {
		return v.ops.copy(dst, src)
	}
}

// Default returns a Ctor that default-constructs with v's construct trait.
func (v *Vector[T]) Default() Ctor[T] {
	return func(dst *T) error {
		return v.ops.construct(dst)
	}
}
