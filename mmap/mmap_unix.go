//go:build linux || darwin || freebsd || netbsd || openbsd

package mmap

import (
	"fmt"
	"math"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Allocator maps every block as its own anonymous private region, so a
// released block goes straight back to the operating system. Safe for
// concurrent use.
type Allocator struct {
	mu      sync.Mutex
	regions map[uintptr][]byte
	mapped  int
	maps    int
	unmaps  int
}

// New returns an Allocator.
func New() *Allocator {
	return &Allocator{regions: make(map[uintptr][]byte)}
}

// Allocate maps size bytes rounded up to the page size. Mappings are page
// aligned, which satisfies every align up to the page size.
func (m *Allocator) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, nil
	}
	page := uintptr(unix.Getpagesize())
	if align > page {
		return nil, fmt.Errorf("%w: %d exceeds page size %d", ErrAlign, align, page)
	}
	if size > math.MaxInt-page {
		return nil, fmt.Errorf("mmap: %d bytes too large", size)
	}
	length := int((size + page - 1) &^ (page - 1))

	b, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap: map %d bytes: %w", length, err)
	}
	p := unsafe.Pointer(unsafe.SliceData(b))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.regions[uintptr(p)] = b
	m.mapped += length
	m.maps++
	return p, nil
}

// Deallocate unmaps the region that starts at p. Unknown pointers are
// ignored.
func (m *Allocator) Deallocate(p unsafe.Pointer, _ uintptr) {
	if p == nil {
		return
	}
	m.mu.Lock()
	b, ok := m.regions[uintptr(p)]
	if ok {
		delete(m.regions, uintptr(p))
		m.mapped -= len(b)
		m.unmaps++
	}
	m.mu.Unlock()
	if !ok {
		return
	}
	// Munmap only fails for ranges that were never mapped.
	_ = unix.Munmap(b)
}

// Close unmaps every region still outstanding.
func (m *Allocator) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var firstErr error
	for k, b := range m.regions {
		if err := unix.Munmap(b); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.regions, k)
		m.mapped -= len(b)
		m.unmaps++
	}
	return firstErr
}

// Stats returns a snapshot of mapping activity.
func (m *Allocator) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{
		Regions: len(m.regions),
		Mapped:  m.mapped,
		Maps:    m.maps,
		Unmaps:  m.unmaps,
	}
}
