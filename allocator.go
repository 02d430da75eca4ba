package vector

import (
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"
)

// Allocator is the platform memory boundary consumed by Storage. Allocate
// returns a block of at least size bytes aligned to align, or an error when
// no memory is available. Deallocate returns a block obtained from Allocate;
// a nil pointer is a no-op.
type Allocator interface {
	Allocate(size, align uintptr) (unsafe.Pointer, error)
	Deallocate(p unsafe.Pointer, size uintptr)
}

// DefaultAllocator is the shared, unlimited Go heap allocator used by vectors
// constructed without WithAllocator.
var DefaultAllocator = NewHeapAllocator(0)

// HeapAllocator hands out Go heap memory. Storage recognises it and allocates
// typed slots, so it is the only allocator that can hold element types with
// pointers. An optional byte limit turns exhaustion into ErrOutOfMemory.
// Safe for concurrent use.
type HeapAllocator struct {
	limit         int64
	inUse         atomic.Int64
	allocations   atomic.Int64
	deallocations atomic.Int64
}

// NewHeapAllocator creates a HeapAllocator that refuses to keep more than
// limit bytes outstanding. If limit <= 0 the allocator is unlimited.
func NewHeapAllocator(limit int) *HeapAllocator {
	if limit < 0 {
		limit = 0
	}
	return &HeapAllocator{limit: int64(limit)}
}

// Allocate returns size bytes of untyped heap memory aligned to align.
// The memory is not scanned for pointers.
func (h *HeapAllocator) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, nil
	}
	if align == 0 {
		align = 1
	}
	if size > math.MaxInt-align {
		return nil, fmt.Errorf("%w: %d bytes", ErrOutOfMemory, size)
	}
	if err := h.charge(size); err != nil {
		return nil, err
	}
	buf := make([]byte, size+align-1)
	p := unsafe.Pointer(unsafe.SliceData(buf))
	off := (align - uintptr(p)%align) % align
	return unsafe.Add(p, off), nil
}

// Deallocate credits size bytes back to the allocator. The block itself is
// reclaimed by the garbage collector.
func (h *HeapAllocator) Deallocate(p unsafe.Pointer, size uintptr) {
	if p == nil {
		return
	}
	h.credit(size)
}

// charge accounts for size new bytes, failing if the limit would be exceeded.
func (h *HeapAllocator) charge(size uintptr) error {
	if size > math.MaxInt64 {
		return fmt.Errorf("%w: %d bytes", ErrOutOfMemory, size)
	}
	n := int64(size)
	if h.limit <= 0 {
		h.inUse.Add(n)
		h.allocations.Add(1)
		return nil
	}
	for {
		cur := h.inUse.Load()
		if n > h.limit-cur {
			return fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrOutOfMemory, n, cur, h.limit)
		}
		if h.inUse.CompareAndSwap(cur, cur+n) {
			break
		}
	}
	h.allocations.Add(1)
	return nil
}

func (h *HeapAllocator) credit(size uintptr) {
	h.inUse.Add(-int64(size))
	h.deallocations.Add(1)
}

// Limit returns the configured byte limit, or 0 when unlimited.
func (h *HeapAllocator) Limit() int {
	return int(h.limit)
}

// InUse returns the number of bytes currently outstanding.
func (h *HeapAllocator) InUse() int {
	return int(h.inUse.Load())
}

// Allocations returns the number of successful Allocate calls, including the
// typed allocations made on behalf of Storage.
func (h *HeapAllocator) Allocations() int {
	return int(h.allocations.Load())
}

// Deallocations returns the number of blocks returned to the allocator.
func (h *HeapAllocator) Deallocations() int {
	return int(h.deallocations.Load())
}
