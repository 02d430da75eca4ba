// Package mmap provides an allocator that backs vector storage with
// anonymous memory mappings. Mapped memory lives outside the Go heap and is
// not scanned by the garbage collector, so it can only hold element types
// without Go pointers.
package mmap

import "errors"

var (
	// ErrUnsupported is returned on platforms without mmap.
	ErrUnsupported = errors.New("mmap: not supported on this platform")

	// ErrAlign is returned for alignments larger than a page.
	ErrAlign = errors.New("mmap: alignment not supported")
)

// Stats describes the mappings made by an Allocator.
type Stats struct {
	Regions int `json:"regions"` // Mappings currently outstanding
	Mapped  int `json:"mapped"`  // Bytes currently mapped
	Maps    int `json:"maps"`
	Unmaps  int `json:"unmaps"`
}
