package vector

import "errors"

var (
	// ErrOutOfMemory indicates that a block for the requested number of slots
	// could not be obtained from the allocator.
	ErrOutOfMemory = errors.New("vector: out of memory")

	// ErrOutOfRange is returned by the checked accessor when the index is not
	// less than Len().
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNotCopyable indicates a copy of a vector whose element traits declare
	// NoCopy.
	ErrNotCopyable = errors.New("vector: element type is not copyable")

	// ErrPointerElems indicates an element type holding Go pointers was paired
	// with an allocator whose memory the garbage collector does not scan.
	ErrPointerElems = errors.New("vector: allocator cannot hold pointer-bearing elements")
)
