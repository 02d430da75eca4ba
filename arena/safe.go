package arena

import (
	"sync"
	"unsafe"
)

// SafeArena is a mutex-protected wrapper around Arena. Vectors themselves are
// never goroutine-safe, but vectors owned by different goroutines may share
// one SafeArena as their allocator.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena(chunkSize int) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize)}
}

// Allocate thread-safely carves a block of size bytes aligned to align.
func (s *SafeArena) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(size, align)
}

// Deallocate thread-safely records that a block is no longer used.
func (s *SafeArena) Deallocate(p unsafe.Pointer, size uintptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Deallocate(p, size)
}

// Reset thread-safely resets allocation offsets to zero for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
