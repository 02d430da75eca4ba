// Package vector implements a growable contiguous container on top of raw,
// owner-managed storage.
//
// # Overview
//
// The package has two layers:
//
//   - Storage owns one block of slots sized for exactly N elements. Owning a
//     block implies nothing about which slots hold live elements.
//   - Vector owns a Storage plus a live-element count. It constructs and
//     destroys elements inside the block, decides when to grow, and performs
//     every element-level mutation.
//
// Every operation that needs more room builds a fresh Storage, hands the live
// elements over, retires the old ones and swaps the blocks. The old block is
// released before the operation returns.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	for i := range 3 {
//	    if err := v.PushBack(i + 1); err != nil {
//	        return err
//	    }
//	}
//	v.Insert(1, 9)    // [1 9 2 3]
//	v.Erase(0)        // [9 2 3]
//	_ = v.Resize(5)   // [9 2 3 0 0]
//
//	p, err := v.At(7) // errors.Is(err, vector.ErrOutOfRange)
//
// # Growth
//
// When full, capacity doubles (1 for an empty vector), or grows to the
// requested size if that is larger. Appending N elements one at a time
// performs O(log N) reallocations and O(N) element transfers in total.
//
// # Element Traits
//
// Plain Go values need no configuration. Types with lifecycle behaviour
// install hooks with WithTraits:
//
//	v := vector.New(vector.WithTraits(vector.Traits[Conn]{
//	    Copy:    dupConn,
//	    Move:    rebindConn,
//	    Destroy: closeConn,
//	}))
//
// During reallocation elements are moved when moving cannot fail or the type
// cannot be copied; otherwise they are copied, so that a failure leaves the
// old block intact and the vector unchanged.
//
// Emplace and Erase shift elements inside the block with Move as well, so a
// hook that records an element's address always sees its current slot. A
// Move failure in the middle of a shift cannot be undone: the vector is
// truncated before the slot that could not be filled and the error returned.
//
// # Allocators
//
// Blocks come from an Allocator. The default HeapAllocator allocates typed
// Go memory and accepts every element type. The arena and mmap packages
// provide allocators whose memory the garbage collector does not scan; they
// accept only element types without pointers and report ErrPointerElems
// otherwise.
//
//	a := arena.NewArena(0)
//	defer a.Release()
//	v := vector.New(vector.WithAllocator[Point](a))
//
// # Error Handling
//
//   - Allocation failure is reported as ErrOutOfMemory.
//   - Hook failures are returned unchanged after rollback.
//   - At reports ErrOutOfRange; Index only checks in builds tagged vectordebug.
//   - Invalid Emplace and Erase positions panic.
//
// # Thread Safety
//
// Vector and Storage are not goroutine-safe. Callers sharing a vector must
// serialise access themselves.
package vector
