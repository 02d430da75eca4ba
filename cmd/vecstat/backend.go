package main

import (
	"fmt"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/arena"
	"github.com/pavanmanishd/vector/mmap"
)

// backend is an allocator selected on the command line.
type backend struct {
	name  string
	alloc vector.Allocator
	stats func() any
	close func() error
}

// HeapStats reports the usage of a heap allocator.
type HeapStats struct {
	InUse         int `json:"in_use"`
	Allocations   int `json:"allocations"`
	Deallocations int `json:"deallocations"`
}

// openBackend returns the allocator named by name: heap, arena or mmap.
func openBackend(name string) (*backend, error) {
	switch name {
	case "heap", "":
		h := vector.NewHeapAllocator(0)
		return &backend{
			name:  "heap",
			alloc: h,
			stats: func() any {
				return HeapStats{
					InUse:         h.InUse(),
					Allocations:   h.Allocations(),
					Deallocations: h.Deallocations(),
				}
			},
			close: func() error { return nil },
		}, nil
	case "arena":
		a := arena.NewArena(0)
		return &backend{
			name:  "arena",
			alloc: a,
			stats: func() any { return a.Metrics() },
			close: func() error {
				a.Release()
				return nil
			},
		}, nil
	case "mmap":
		m := mmap.New()
		return &backend{
			name:  "mmap",
			alloc: m,
			stats: func() any { return m.Stats() },
			close: m.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown allocator %q (want heap, arena or mmap)", name)
	}
}

// closeBackend releases b's allocator, reporting a failure in verbose mode.
func closeBackend(b *backend) {
	if err := b.close(); err != nil {
		printVerbose("Warning: failed to close %s allocator: %v\n", b.name, err)
	}
}
