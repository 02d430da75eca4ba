package vector

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies of values that contain it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Storage owns one contiguous block of slots for elements of type T without
// implying that any slot holds a live element. Which slots are live is the
// owner's business; Storage only acquires and releases the block.
//
// Storage is move-only: use TakeFrom or Swap to hand a block over.
type Storage[T any] struct {
	_     noCopy
	buf   []T // len(buf) == capacity, nil when empty
	alloc Allocator
}

// Allocate acquires a block for exactly n slots from a. The storage must be
// empty. n == 0 leaves it empty without calling the allocator.
func (s *Storage[T]) Allocate(a Allocator, n int) error {
	if s.buf != nil {
		panic("vector: Allocate on non-empty storage")
	}
	if n < 0 {
		return fmt.Errorf("%w: negative slot count %d", ErrOutOfMemory, n)
	}
	if n == 0 {
		return nil
	}
	if a == nil {
		a = DefaultAllocator
	}

	var zero T
	elem := unsafe.Sizeof(zero)
	if elem == 0 {
		s.buf = make([]T, n)
		s.alloc = a
		return nil
	}
	if uintptr(n) > uintptr(math.MaxInt)/elem {
		return fmt.Errorf("%w: %d slots of %d bytes overflow", ErrOutOfMemory, n, elem)
	}
	size := uintptr(n) * elem

	if h, ok := a.(*HeapAllocator); ok {
		if err := h.charge(size); err != nil {
			return err
		}
		s.buf = make([]T, n)
		s.alloc = a
		return nil
	}

	if !pointerFree(reflect.TypeFor[T]()) {
		return fmt.Errorf("%w: %T", ErrPointerElems, zero)
	}
	p, err := a.Allocate(size, unsafe.Alignof(zero))
	if err != nil {
		return fmt.Errorf("%w: %d slots: %w", ErrOutOfMemory, n, err)
	}
	if p == nil {
		return fmt.Errorf("%w: allocator returned nil for %d bytes", ErrOutOfMemory, size)
	}
	s.buf = unsafe.Slice((*T)(p), n)
	s.alloc = a
	return nil
}

// Release frees the block unconditionally. It does not destroy elements; the
// owner must have done so already. Releasing empty storage is a no-op.
func (s *Storage[T]) Release() {
	if s.buf == nil {
		return
	}
	var zero T
	size := uintptr(len(s.buf)) * unsafe.Sizeof(zero)
	switch a := s.alloc.(type) {
	case *HeapAllocator:
		if size > 0 {
			a.credit(size)
		}
	default:
		if size > 0 {
			a.Deallocate(unsafe.Pointer(unsafe.SliceData(s.buf)), size)
		}
	}
	s.buf = nil
	s.alloc = nil
}

// Cap returns the number of slots in the block.
func (s *Storage[T]) Cap() int {
	return len(s.buf)
}

// Slot returns the address of slot i, which must be less than Cap().
func (s *Storage[T]) Slot(i int) *T {
	if debugAssertions && (i < 0 || i >= len(s.buf)) {
		panic(fmt.Sprintf("vector: slot %d out of capacity %d", i, len(s.buf)))
	}
	return &s.buf[i]
}

// Span returns slots [from, to). to may equal Cap().
func (s *Storage[T]) Span(from, to int) []T {
	if debugAssertions && (from < 0 || from > to || to > len(s.buf)) {
		panic(fmt.Sprintf("vector: span [%d, %d) out of capacity %d", from, to, len(s.buf)))
	}
	return s.buf[from:to:to]
}

// Swap exchanges the blocks of s and o. No element is touched.
func (s *Storage[T]) Swap(o *Storage[T]) {
	s.buf, o.buf = o.buf, s.buf
	s.alloc, o.alloc = o.alloc, s.alloc
}

// TakeFrom releases the block held by s and takes ownership of o's block,
// leaving o empty.
func (s *Storage[T]) TakeFrom(o *Storage[T]) {
	if s == o {
		return
	}
	s.Release()
	s.buf, o.buf = o.buf, nil
	s.alloc, o.alloc = o.alloc, nil
}

// pointerFree reports whether values of t contain no Go pointers, which is
// required for memory the garbage collector does not scan.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
