// Package arena implements a chunked bump allocator that serves blocks to
// vector storage. Blocks are carved sequentially out of large chunks and are
// only reclaimed in bulk by Reset or Release, which suits vectors that live
// for one request or one batch.
//
// Arena memory is not scanned by the garbage collector, so it can only back
// element types that hold no Go pointers.
package arena

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

var (
	// ErrReleased is returned by Allocate once the arena has been released.
	ErrReleased = errors.New("arena: use after Release()")

	// ErrBadAlign is returned for an alignment that is not a power of two.
	ErrBadAlign = errors.New("arena: alignment must be a power of two")
)

// minAlign is the alignment every block gets at minimum.
const minAlign = unsafe.Sizeof(uintptr(0))

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Arena is a chunked bump allocator. Not goroutine-safe; use SafeArena to
// share one arena between vectors on different goroutines.
type Arena struct {
	chunks      []chunk
	chunkSize   int
	current     int // index of the chunk being bumped
	allocations int
	deallocated int
}

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Allocate returns size bytes aligned to align (at least pointer alignment).
// A zero size returns nil without consuming space.
func (a *Arena) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	if a.chunks == nil {
		return nil, ErrReleased
	}
	if size == 0 {
		return nil, nil
	}
	if align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadAlign, align)
	}
	align = max(align, minAlign)

	// Fast path: bump within the current chunk
	if p, ok := a.chunks[a.current].bump(size, align); ok {
		a.allocations++
		return p, nil
	}

	// Slow path: move on to a chunk kept by Reset, or add a fresh one
	for a.current+1 < len(a.chunks) {
		a.current++
		if p, ok := a.chunks[a.current].bump(size, align); ok {
			a.allocations++
			return p, nil
		}
	}
	if size > math.MaxInt-align {
		return nil, fmt.Errorf("arena: block of %d bytes too large", size)
	}
	a.grow(int(size + align))
	c := &a.chunks[a.current]
	p, ok := c.bump(size, align)
	if !ok {
		return nil, fmt.Errorf("arena: chunk of %d bytes cannot fit %d", len(c.buf), size)
	}
	a.allocations++
	return p, nil
}

// Deallocate records that a block is no longer used. Its space is only
// reclaimed by Reset or Release.
func (a *Arena) Deallocate(p unsafe.Pointer, size uintptr) {
	if p == nil {
		return
	}
	a.deallocated += int(size)
}

// bump carves size bytes aligned to align from the chunk, reporting false if
// they do not fit. Alignment is computed on the absolute address.
func (c *chunk) bump(size, align uintptr) (unsafe.Pointer, bool) {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	off := alignUp(base+c.offset, align) - base
	if off > uintptr(len(c.buf)) || size > uintptr(len(c.buf))-off {
		return nil, false
	}
	c.offset = off + size
	return unsafe.Pointer(&c.buf[off]), true
}

// Reset resets allocation offsets to zero but keeps allocated chunks for reuse.
// Every vector backed by the arena must have been released first.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = 0
	a.deallocated = 0
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent Allocate returns ErrReleased. Releasing twice is safe.
func (a *Arena) Release() {
	a.chunks = nil
	a.current = 0
}

// grow appends a new chunk of at least min bytes.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.current = len(a.chunks) - 1
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("arena: use after Release()")
	}
}

// alignUp rounds off up to a multiple of align, a power of two.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}
