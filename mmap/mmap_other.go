//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package mmap

import "unsafe"

// Allocator is unavailable on this platform; Allocate always fails.
type Allocator struct{}

// New returns an Allocator.
func New() *Allocator {
	return &Allocator{}
}

// Allocate returns ErrUnsupported for any non-zero size.
func (m *Allocator) Allocate(size, _ uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, nil
	}
	return nil, ErrUnsupported
}

// Deallocate is a no-op.
func (m *Allocator) Deallocate(unsafe.Pointer, uintptr) {}

// Close is a no-op.
func (m *Allocator) Close() error { return nil }

// Stats returns zero stats.
func (m *Allocator) Stats() Stats { return Stats{} }
